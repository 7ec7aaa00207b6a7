package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/textrail/pkg/config"
	"github.com/ib-77/textrail/pkg/rop/chain"
	"github.com/ib-77/textrail/pkg/textop"
)

// Report describes one completed run. Nothing is persisted; the report is
// for the caller's logs only.
type Report struct {
	ID       uuid.UUID
	Steps    int
	Duration time.Duration
	Output   string
}

// Runner folds a configuration's operations over its input text. The zero
// registry means textop.Default.
type Runner struct {
	Registry *textop.Registry
}

// Run executes the whole pipeline in one synchronous pass: each operation
// is resolved and applied in declaration order, and the first failure
// short-circuits the rest. The input text is never mutated; every step
// yields a new string.
func (r Runner) Run(ctx context.Context, app *config.App) (*Report, error) {
	reg := r.Registry
	if reg == nil {
		reg = textop.Default()
	}

	started := time.Now()
	steps := 0

	c := chain.FromValue(ctx, app.InputText)
	for _, spec := range app.Operations {
		c = c.ThenTry(func(ctx context.Context, text string) (string, error) {
			tr, err := reg.Resolve(spec)
			if err != nil {
				return "", err
			}
			out, err := tr(ctx, text)
			if err != nil {
				return "", err
			}
			steps++
			return out, nil
		})
	}

	res := c.Result()
	if res.IsFailure() {
		return nil, res.Err()
	}

	return &Report{
		ID:       res.Id(),
		Steps:    steps,
		Duration: time.Since(started),
		Output:   res.Result(),
	}, nil
}

// Run executes app with the default operation registry.
func Run(ctx context.Context, app *config.App) (*Report, error) {
	return Runner{}.Run(ctx, app)
}
