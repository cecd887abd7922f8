package constraint

import "errors"

var (
	// ErrMissingParameter is returned when a constraint is declared without its parameter.
	ErrMissingParameter = errors.New("missing constraint parameter")

	// ErrInvalidPattern is returned when a regular expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidLength is returned for length constraints without bounds or with negative or inverted bounds.
	ErrInvalidLength = errors.New("invalid length bounds")

	// ErrInvalidInterval is returned for intervals with a missing bound or with min greater than max.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidParameter is returned when a parameter cannot be cast to the field's data type.
	ErrInvalidParameter = errors.New("invalid constraint parameter")
)
