package constraint

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/formval/pkg/typecast"
)

// Kind names a constraint.
type Kind string

const (
	KindMin           Kind = "min"
	KindMax           Kind = "max"
	KindEq            Kind = "eq"
	KindPattern       Kind = "pattern"
	KindRequired      Kind = "isRequired"
	KindLength        Kind = "length"
	KindInterval      Kind = "interval"
	KindIntervalField Kind = "intervalField"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindMin, KindMax, KindEq, KindPattern, KindRequired,
	KindLength, KindInterval, KindIntervalField,
}

// ParseKind resolves a kind by name. "regexp" is accepted as an alias of pattern.
func ParseKind(s string) (Kind, bool) {
	if s == "regexp" {
		return KindPattern, true
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Spec is a single constraint: its kind and the parameters used by that kind.
// Only the fields relevant to Kind are set.
type Spec struct {
	Kind Kind

	// Value is the bound for min and max, and the target for eq.
	Value any

	// Regexp is the compiled expression for pattern.
	Regexp *regexp.Regexp

	// Empty is the sentinel that an isRequired value must differ from.
	Empty string

	// MinLen and MaxLen are the optional length bounds.
	MinLen *int
	MaxLen *int

	// Lower and Upper are the literal interval bounds.
	Lower any
	Upper any

	// MinField and MaxField name the fields of an intervalField declaration.
	MinField string
	MaxField string
}

// Min declares value >= v.
func Min(v any) (Spec, error) {
	if v == nil {
		return Spec{}, fmt.Errorf("%w: min value is not given", ErrMissingParameter)
	}
	return Spec{Kind: KindMin, Value: v}, nil
}

// Max declares value <= v.
func Max(v any) (Spec, error) {
	if v == nil {
		return Spec{}, fmt.Errorf("%w: max value is not given", ErrMissingParameter)
	}
	return Spec{Kind: KindMax, Value: v}, nil
}

// Eq declares value == v after casting.
func Eq(v any) (Spec, error) {
	if v == nil {
		return Spec{}, fmt.Errorf("%w: a value for eq is not given", ErrMissingParameter)
	}
	return Spec{Kind: KindEq, Value: v}, nil
}

// Pattern compiles expr and declares that non-empty values must match it.
func Pattern(expr string) (Spec, error) {
	if expr == "" {
		return Spec{}, fmt.Errorf("%w: regular expression is empty", ErrMissingParameter)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Spec{Kind: KindPattern, Regexp: re}, nil
}

// PatternRegexp declares a pattern from an already compiled expression.
func PatternRegexp(re *regexp.Regexp) (Spec, error) {
	if re == nil {
		return Spec{}, fmt.Errorf("%w: regular expression is nil", ErrMissingParameter)
	}
	return Spec{Kind: KindPattern, Regexp: re}, nil
}

// Required declares that the raw value must differ from the empty sentinel,
// which defaults to the empty string.
func Required(empty ...string) (Spec, error) {
	s := Spec{Kind: KindRequired}
	if len(empty) > 0 {
		s.Empty = empty[0]
	}
	return s, nil
}

// Length declares rune length bounds. At least one bound is required.
func Length(minLen, maxLen *int) (Spec, error) {
	if minLen == nil && maxLen == nil {
		return Spec{}, fmt.Errorf("%w: could not find values for minimum or maximum", ErrInvalidLength)
	}
	if (minLen != nil && *minLen < 0) || (maxLen != nil && *maxLen < 0) {
		return Spec{}, fmt.Errorf("%w: bounds must not be negative", ErrInvalidLength)
	}
	if minLen != nil && maxLen != nil && *minLen > *maxLen {
		return Spec{}, fmt.Errorf("%w: minimum %d is greater than maximum %d", ErrInvalidLength, *minLen, *maxLen)
	}
	s := Spec{Kind: KindLength}
	if minLen != nil {
		n := *minLen
		s.MinLen = &n
	}
	if maxLen != nil {
		n := *maxLen
		s.MaxLen = &n
	}
	return s, nil
}

// MinLength declares length >= n.
func MinLength(n int) (Spec, error) {
	return Length(&n, nil)
}

// MaxLength declares length <= n.
func MaxLength(n int) (Spec, error) {
	return Length(nil, &n)
}

// LengthBetween declares minLen <= length <= maxLen.
func LengthBetween(minLen, maxLen int) (Spec, error) {
	return Length(&minLen, &maxLen)
}

// Interval declares lower <= value <= upper. Missing bounds, including
// zero and false, are rejected here; ordering is checked here when both bounds are numbers or times and
// otherwise by CheckBounds once the field's data type is known.
func Interval(lower, upper any) (Spec, error) {
	if isMissing(lower) {
		return Spec{}, fmt.Errorf("%w: min is required for interval", ErrInvalidInterval)
	}
	if isMissing(upper) {
		return Spec{}, fmt.Errorf("%w: max is required for interval", ErrInvalidInterval)
	}
	if c, ok := compareLiterals(lower, upper); ok && c > 0 {
		return Spec{}, fmt.Errorf("%w: minimum value is greater than maximum", ErrInvalidInterval)
	}
	return Spec{Kind: KindInterval, Lower: lower, Upper: upper}, nil
}

// IntervalField records that the field takes part in a cross-field interval
// between minField and maxField.
func IntervalField(minField, maxField string) (Spec, error) {
	if strings.TrimSpace(minField) == "" {
		return Spec{}, fmt.Errorf("%w: field name for min is required for interval", ErrMissingParameter)
	}
	if strings.TrimSpace(maxField) == "" {
		return Spec{}, fmt.Errorf("%w: field name for max is required for interval", ErrMissingParameter)
	}
	return Spec{Kind: KindIntervalField, MinField: minField, MaxField: maxField}, nil
}

// Must panics if err is not nil.
func Must(s Spec, err error) Spec {
	if err != nil {
		panic(fmt.Sprintf("constraint: %v", err))
	}
	return s
}

// Validate checks a Spec built by hand with the same rules the constructors apply.
func (s Spec) Validate() error {
	var err error
	switch s.Kind {
	case KindMin:
		_, err = Min(s.Value)
	case KindMax:
		_, err = Max(s.Value)
	case KindEq:
		_, err = Eq(s.Value)
	case KindPattern:
		_, err = PatternRegexp(s.Regexp)
	case KindRequired:
	case KindLength:
		_, err = Length(s.MinLen, s.MaxLen)
	case KindInterval:
		_, err = Interval(s.Lower, s.Upper)
	case KindIntervalField:
		_, err = IntervalField(s.MinField, s.MaxField)
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrInvalidParameter, s.Kind)
	}
	return err
}

// CheckBounds validates parameters against the field's data type: bounds of
// min, max and eq must cast to a comparable value and interval bounds must
// be ordered.
func (s Spec) CheckBounds(c *typecast.Caster, dt typecast.DataType) error {
	switch s.Kind {
	case KindMin, KindMax, KindEq:
		if v := c.CastLiteral(s.Value, dt); v.IsNaN() {
			return fmt.Errorf("%w: %s value %v is not a %s", ErrInvalidParameter, s.Kind, s.Value, dt)
		}
	case KindInterval:
		lo := c.CastLiteral(s.Lower, dt)
		hi := c.CastLiteral(s.Upper, dt)
		cmp, ok := typecast.Compare(lo, hi)
		if !ok {
			return fmt.Errorf("%w: bounds %v and %v are not comparable as %s", ErrInvalidInterval, s.Lower, s.Upper, dt)
		}
		if cmp > 0 {
			return fmt.Errorf("%w: minimum value is greater than maximum", ErrInvalidInterval)
		}
	}
	return nil
}

// MessageKey is the template key used to describe a failure of s.
func (s Spec) MessageKey() string {
	if s.Kind != KindLength {
		return string(s.Kind)
	}
	switch {
	case s.MinLen != nil && s.MaxLen != nil:
		return "length.minMax"
	case s.MaxLen != nil:
		return "length.max"
	default:
		return "length.min"
	}
}

// MessageArgs are the positional template arguments describing a failure of
// s. The field alias is always first.
func (s Spec) MessageArgs(alias string) []any {
	switch s.Kind {
	case KindMin, KindMax, KindEq:
		return []any{alias, s.Value}
	case KindInterval:
		return []any{alias, s.Lower, s.Upper}
	case KindIntervalField:
		return []any{alias, s.MinField, s.MaxField}
	case KindPattern:
		return []any{alias, s.Regexp.String()}
	case KindLength:
		switch {
		case s.MinLen != nil && s.MaxLen != nil:
			return []any{alias, *s.MinLen, *s.MaxLen}
		case s.MaxLen != nil:
			return []any{alias, *s.MaxLen}
		default:
			return []any{alias, *s.MinLen}
		}
	default:
		return []any{alias}
	}
}

// isMissing reports whether an interval bound is absent: nil, a blank
// string, false, or a zero number.
func isMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case bool:
		return !x
	}
	if n, ok := number(v); ok {
		return n == 0 || math.IsNaN(n)
	}
	return false
}

// compareLiterals orders two bounds when they are both numbers or both times.
func compareLiterals(a, b any) (int, bool) {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), true
		}
		return 0, false
	}
	fa, ok := number(a)
	if !ok {
		return 0, false
	}
	fb, ok := number(b)
	if !ok {
		return 0, false
	}
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	}
	return 0, true
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
