package schema

import "errors"

var (
	ErrReadSchema        = errors.New("failed to read schema")
	ErrParseSchema       = errors.New("failed to parse schema")
	ErrInvalidConstraint = errors.New("invalid constraint declaration")
	ErrUnknownPredicate  = errors.New("unknown predicate")
	ErrMissingField      = errors.New("custom validation references no field")
	ErrLoadCancelled     = errors.New("loading schema cancelled")
)
