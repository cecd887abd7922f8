package typecast

import "errors"

var (
	// ErrInvalidDataType is returned for data types other than number, string, date and boolean.
	ErrInvalidDataType = errors.New("invalid data type")

	// ErrInvalidDateFormat is returned when a date pattern contains unknown or repeated tokens.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
