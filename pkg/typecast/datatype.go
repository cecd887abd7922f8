package typecast

import (
	"fmt"
	"strings"
)

// DataType is the declared type of a field.
type DataType string

const (
	Number  DataType = "number"
	String  DataType = "string"
	Date    DataType = "date"
	Boolean DataType = "boolean"
)

// Valid reports whether d is one of the supported data types.
func (d DataType) Valid() bool {
	switch d {
	case Number, String, Date, Boolean:
		return true
	}
	return false
}

func (d DataType) String() string {
	return string(d)
}

// ParseDataType parses a declared data type. An empty value defaults to String.
func ParseDataType(s string) (DataType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return String, nil
	}
	dt := DataType(strings.ToLower(s))
	if !dt.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDataType, s)
	}
	return dt, nil
}
