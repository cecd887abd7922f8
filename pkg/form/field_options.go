package form

import (
	"fmt"

	"github.com/dmitrymomot/formval/pkg/constraint"
)

// FieldOption declares a constraint or hook on a field.
type FieldOption func(*Field) error

func put(s constraint.Spec, err error) FieldOption {
	return func(f *Field) error {
		if err != nil {
			return err
		}
		f.constraints.Put(s)
		return nil
	}
}

// Min requires value >= v.
func Min(v any) FieldOption { return put(constraint.Min(v)) }

// Max requires value <= v.
func Max(v any) FieldOption { return put(constraint.Max(v)) }

// Eq requires value == v.
func Eq(v any) FieldOption { return put(constraint.Eq(v)) }

// Pattern requires non-empty values to match expr.
func Pattern(expr string) FieldOption { return put(constraint.Pattern(expr)) }

// Required rejects values equal to empty, or to "" when empty is not given.
func Required(empty ...string) FieldOption { return put(constraint.Required(empty...)) }

// Length bounds the value length. At least one bound is required.
func Length(minLen, maxLen *int) FieldOption { return put(constraint.Length(minLen, maxLen)) }

func MinLength(n int) FieldOption { return put(constraint.MinLength(n)) }

func MaxLength(n int) FieldOption { return put(constraint.MaxLength(n)) }

func LengthBetween(minLen, maxLen int) FieldOption {
	return put(constraint.LengthBetween(minLen, maxLen))
}

// Interval requires lower <= value <= upper.
func Interval(lower, upper any) FieldOption { return put(constraint.Interval(lower, upper)) }

// IntervalField records that the field takes part in a cross-field interval.
// It does not validate anything by itself; register the pair with
// Form.AddInterval.
func IntervalField(minField, maxField string) FieldOption {
	return put(constraint.IntervalField(minField, maxField))
}

// WithConstraint adds a prebuilt constraint.
func WithConstraint(s constraint.Spec) FieldOption {
	return func(f *Field) error {
		if _, ok := constraint.ParseKind(string(s.Kind)); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownConstraint, s.Kind)
		}
		if err := s.Validate(); err != nil {
			return err
		}
		f.constraints.Put(s)
		return nil
	}
}

// OnIgnore sets the hook called when the field becomes ignored.
func OnIgnore(h Hook) FieldOption {
	return func(f *Field) error {
		f.onIgnore = h
		return nil
	}
}

// OnWatch sets the hook called when an ignored field is watched again.
func OnWatch(h Hook) FieldOption {
	return func(f *Field) error {
		f.onWatch = h
		return nil
	}
}
