// Package textop defines named, parameterized text transformations and the
// registry that resolves an operation Spec into a runnable Transform.
//
// Built-ins:
// - uppercase: upper-case the whole text, no parameters
// - prefix: prepend the "value" parameter to the text
//
// Additional operations can be added with Registry.Register; resolution of
// an unregistered name fails with UnknownOperationError, and a constructor
// missing a required parameter fails with MissingParameterError.
package textop
