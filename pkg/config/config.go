package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/textrail/pkg/rop"
	"github.com/ib-77/textrail/pkg/rop/solo"
	"github.com/ib-77/textrail/pkg/textop"
)

// App is a validated application configuration: the initial text and the
// operations to fold over it, in declaration order.
type App struct {
	InputText  string
	Operations []textop.Spec
}

// rawApp mirrors the YAML document before validation. InputText is a
// pointer so an absent key can be told apart from an empty string, and
// Operations stays a node so shape errors produce precise messages.
type rawApp struct {
	InputText  *string   `yaml:"input_text"`
	Operations yaml.Node `yaml:"operations"`
}

// Load reads and parses the configuration file at path.
func Load(ctx context.Context, path string) (*App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("read %s", path), Err: err}
	}
	return Parse(ctx, data)
}

// Parse unmarshals and validates a YAML configuration document.
func Parse(ctx context.Context, data []byte) (*App, error) {
	var raw rawApp
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigurationError{Reason: "invalid YAML", Err: err}
	}

	res := solo.ValidateAll(ctx, solo.Succeed(&raw), true,
		validateInputText,
		validateOperationsShape,
	)
	if res.IsFailure() {
		return nil, res.Err()
	}

	ops, err := decodeOperations(&raw.Operations)
	if err != nil {
		return nil, err
	}

	return &App{
		InputText:  *raw.InputText,
		Operations: ops,
	}, nil
}

func validateInputText(_ context.Context, in rop.Result[*rawApp]) rop.Result[*rawApp] {
	if in.IsFailure() {
		return in
	}
	if in.Result().InputText == nil {
		return rop.Fail[*rawApp](&ConfigurationError{Reason: "missing required key input_text"})
	}
	return in
}

func validateOperationsShape(_ context.Context, in rop.Result[*rawApp]) rop.Result[*rawApp] {
	if in.IsFailure() {
		return in
	}
	node := in.Result().Operations
	if absent(&node) || node.Kind == yaml.SequenceNode {
		return in
	}
	return rop.Fail[*rawApp](&ConfigurationError{Reason: "operations must be a sequence"})
}

// absent reports an operations key that is missing or explicitly null;
// both mean "no operations".
func absent(node *yaml.Node) bool {
	return node.IsZero() || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func decodeOperations(node *yaml.Node) ([]textop.Spec, error) {
	if absent(node) {
		return nil, nil
	}

	specs := make([]textop.Spec, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("operations[%d] must be a mapping", i)}
		}

		var fields map[string]string
		if err := item.Decode(&fields); err != nil {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("operations[%d]", i), Err: err}
		}

		name, ok := fields["name"]
		if !ok || name == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("operations[%d] missing name", i)}
		}
		delete(fields, "name")

		specs = append(specs, textop.Spec{Name: name, Params: textop.Params(fields)})
	}
	return specs, nil
}
