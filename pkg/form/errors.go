package form

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formval/pkg/constraint"
	"github.com/dmitrymomot/formval/pkg/i18n"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

var (
	ErrMissingName       = errors.New("name is required")
	ErrNilField          = errors.New("field is nil")
	ErrNilSource         = errors.New("value source is nil")
	ErrFieldNotFound     = errors.New("field not found")
	ErrDuplicateField    = errors.New("field already registered")
	ErrFieldAttached     = errors.New("field belongs to another form")
	ErrFieldDetached     = errors.New("field is not attached to a form")
	ErrNoBackingValue    = errors.New("field has no backing value")
	ErrUnknownConstraint = errors.New("unknown constraint kind")
	ErrDataTypeMismatch  = errors.New("interval fields have different data types")
	ErrMissingPredicate  = errors.New("custom validation predicate is required")
	ErrMissingTemplate   = errors.New("message template not found")
	ErrInvalidPolicy     = errors.New("invalid interval policy")
)

// FieldError reports a configuration problem with a single field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(name string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: name, Err: err}
}

// configurationErrors are the sentinels that abort form construction or a
// validation pass. They are never recovered by the engine.
var configurationErrors = []error{
	ErrMissingName,
	ErrNilField,
	ErrNilSource,
	ErrFieldNotFound,
	ErrDuplicateField,
	ErrFieldAttached,
	ErrNoBackingValue,
	ErrUnknownConstraint,
	ErrDataTypeMismatch,
	ErrMissingPredicate,
	ErrMissingTemplate,
	ErrInvalidPolicy,
	typecast.ErrInvalidDataType,
	typecast.ErrInvalidDateFormat,
	constraint.ErrMissingParameter,
	constraint.ErrInvalidPattern,
	constraint.ErrInvalidLength,
	constraint.ErrInvalidInterval,
	constraint.ErrInvalidParameter,
	i18n.ErrMissingLanguage,
	i18n.ErrMissingMessages,
}

// IsConfigurationError reports whether err is caused by an invalid
// declaration rather than by the validated input.
func IsConfigurationError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range configurationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsFieldError reports whether err carries a *FieldError.
func IsFieldError(err error) bool {
	var e *FieldError
	return errors.As(err, &e)
}
