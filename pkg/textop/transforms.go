package textop

import (
	"context"
	"strings"
)

// Built-in operation names.
const (
	OpUppercase = "uppercase"
	OpPrefix    = "prefix"
)

// ParamValue is the parameter key carrying the prefix text.
const ParamValue = "value"

// Uppercase upper-cases the whole text. It takes no parameters.
func Uppercase(_ Params) (Transform, error) {
	return func(_ context.Context, text string) (string, error) {
		return strings.ToUpper(text), nil
	}, nil
}

// Prefix prepends the "value" parameter to the text.
func Prefix(p Params) (Transform, error) {
	v, ok := p[ParamValue]
	if !ok {
		return nil, &MissingParameterError{Op: OpPrefix, Param: ParamValue}
	}
	return func(_ context.Context, text string) (string, error) {
		return v + text, nil
	}, nil
}
