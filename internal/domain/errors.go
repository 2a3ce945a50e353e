package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates invalid caller input, rejected before any
	// state was mutated.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a storage-level uniqueness race (duplicate cart
	// or duplicate line); callers retry the merge operation.
	ErrConflict = errors.New("conflict")
	// ErrCalculation indicates a pricing pipeline stage failed; no partial
	// result is returned.
	ErrCalculation = errors.New("calculation failed")
)
