package textop

import "fmt"

// UnknownOperationError reports an operation name with no registered
// constructor.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Name)
}

// MissingParameterError reports an operation declared without a parameter
// its constructor requires.
type MissingParameterError struct {
	Op    string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("operation %q requires parameter %q", e.Op, e.Param)
}
