// Package config loads and validates the YAML configuration document:
// a top-level input_text string and an ordered operations sequence.
//
// Each operations entry is a mapping whose name key selects the operation;
// every other key becomes an operation parameter, so
//
//	operations:
//	  - name: prefix
//	    value: ">> "
//
// yields Spec{Name: "prefix", Params: {"value": ">> "}}. Shape problems
// (missing input_text, operations that is not a sequence, entries without
// a name) surface as ConfigurationError before anything runs.
package config
