package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/textrail/pkg/config"
	"github.com/ib-77/textrail/pkg/textop"
)

func TestRun_Example(t *testing.T) {
	t.Parallel()

	app := &config.App{
		InputText: "hello",
		Operations: []textop.Spec{
			{Name: textop.OpUppercase},
			{Name: textop.OpPrefix, Params: textop.Params{textop.ParamValue: ">> "}},
		},
	}

	report, err := Run(context.Background(), app)
	require.NoError(t, err)

	assert.Equal(t, ">> HELLO", report.Output)
	assert.Equal(t, 2, report.Steps)
	assert.NotZero(t, report.ID)
}

func TestRun_EmptyOperationsReturnsInput(t *testing.T) {
	t.Parallel()

	app := &config.App{InputText: "unchanged"}

	report, err := Run(context.Background(), app)
	require.NoError(t, err)

	assert.Equal(t, "unchanged", report.Output)
	assert.Equal(t, 0, report.Steps)
}

func TestRun_OrderSensitive(t *testing.T) {
	t.Parallel()

	app := &config.App{
		InputText: "s",
		Operations: []textop.Spec{
			{Name: textop.OpPrefix, Params: textop.Params{textop.ParamValue: "p1 "}},
			{Name: textop.OpPrefix, Params: textop.Params{textop.ParamValue: "p2 "}},
		},
	}

	report, err := Run(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "p2 p1 s", report.Output)
}

func TestRun_UnknownOperation(t *testing.T) {
	t.Parallel()

	app := &config.App{
		InputText:  "hello",
		Operations: []textop.Spec{{Name: "bogus"}},
	}

	_, err := Run(context.Background(), app)
	require.Error(t, err)

	var unknown *textop.UnknownOperationError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "bogus", unknown.Name)
}

func TestRun_MissingParameter(t *testing.T) {
	t.Parallel()

	app := &config.App{
		InputText:  "hello",
		Operations: []textop.Spec{{Name: textop.OpPrefix}},
	}

	_, err := Run(context.Background(), app)
	require.Error(t, err)

	var missing *textop.MissingParameterError
	require.True(t, errors.As(err, &missing))
}

func TestRun_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	applied := 0
	reg := textop.Default()
	reg.Register("count", func(_ textop.Params) (textop.Transform, error) {
		return func(_ context.Context, text string) (string, error) {
			applied++
			return text, nil
		}, nil
	})

	app := &config.App{
		InputText: "hello",
		Operations: []textop.Spec{
			{Name: "count"},
			{Name: "bogus"},
			{Name: "count"},
		},
	}

	_, err := Runner{Registry: reg}.Run(context.Background(), app)
	require.Error(t, err)
	assert.Equal(t, 1, applied, "operations after the failing one must not run")
}

func TestRun_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := textop.NewRegistry()
	reg.Register("shout", func(_ textop.Params) (textop.Transform, error) {
		return func(_ context.Context, text string) (string, error) {
			return text + "!", nil
		}, nil
	})

	app := &config.App{
		InputText:  "hey",
		Operations: []textop.Spec{{Name: "shout"}},
	}

	report, err := Runner{Registry: reg}.Run(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, "hey!", report.Output)
}
