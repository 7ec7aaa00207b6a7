// Package pipeline runs a validated configuration: it folds the declared
// operations over the input text as a synchronous railway chain and
// returns the final string with a per-run Report. A failing operation
// stops the run; later operations never execute.
package pipeline
