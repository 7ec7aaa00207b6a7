package textop

import "context"

// Params carries the named parameters of a single operation. Only scalar
// string parameters exist; each operation documents the keys it reads.
type Params map[string]string

// Spec names an operation and its parameters, in the order it was declared.
type Spec struct {
	Name   string
	Params Params
}

// Transform applies one operation to the running text and returns the new
// text. The input is never mutated.
type Transform func(ctx context.Context, text string) (string, error)

// Constructor builds a Transform from the operation's parameters. It fails
// with MissingParameterError when a required parameter is absent.
type Constructor func(p Params) (Transform, error)
