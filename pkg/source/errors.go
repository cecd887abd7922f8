package source

import "errors"

var (
	ErrReadFile        = errors.New("failed to read values file")
	ErrParseFile       = errors.New("failed to parse values file")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrLoadCancelled   = errors.New("loading values cancelled")
)
