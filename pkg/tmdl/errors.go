package tmdl

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema indicates the schema could not be decoded or failed validation.
var ErrInvalidSchema = errors.New("invalid schema")

// ErrUnknownReference indicates a schema object references a table or column that is not declared.
var ErrUnknownReference = errors.New("unknown reference")

// ReferenceError represents a dangling reference found while cross-checking a schema.
type ReferenceError struct {
	Object string // e.g. "relationship Start_Date", "measure 'Total Missions'"
	Ref    string // e.g. "DateTable[Date]"
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s references %s which is not declared", e.Object, e.Ref)
}

func (e *ReferenceError) Unwrap() error {
	return ErrUnknownReference
}

// DuplicateError represents a name declared more than once in the same scope.
type DuplicateError struct {
	Kind  string // "table", "column", "measure"
	Name  string
	Scope string
}

func (e *DuplicateError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("duplicate %s %q in %s", e.Kind, e.Name, e.Scope)
	}
	return fmt.Sprintf("duplicate %s %q", e.Kind, e.Name)
}
