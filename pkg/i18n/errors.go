package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrSourceIsNil        = errors.New("translation source is nil")
	ErrMissingLanguage    = errors.New("no language has been given")
	ErrMissingMessages    = errors.New("no messages have been given")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrParsingCancelled   = errors.New("parsing cancelled")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrNoTranslationFiles = errors.New("no translation files found")
)

// ErrLanguageNotSupported indicates that no dictionary matches the requested language.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
