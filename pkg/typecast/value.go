package typecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a raw input or constraint parameter converted to a DataType.
type Value struct {
	Type DataType
	Num  float64
	Date CalendarDate
	Str  string
}

// IsNaN reports whether v is a number that failed to parse.
func (v Value) IsNaN() bool {
	return v.Type == Number && math.IsNaN(v.Num)
}

func (v Value) String() string {
	switch v.Type {
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case Date:
		return v.Date.String()
	default:
		return v.Str
	}
}

// Compare orders two values of the same type. ok is false when the types
// differ or either number is NaN; such comparisons must be treated as failed.
func Compare(a, b Value) (c int, ok bool) {
	if a.Type != b.Type {
		return 0, false
	}
	switch a.Type {
	case Number:
		if math.IsNaN(a.Num) || math.IsNaN(b.Num) {
			return 0, false
		}
		switch {
		case a.Num < b.Num:
			return -1, true
		case a.Num > b.Num:
			return 1, true
		}
		return 0, true
	case Date:
		return a.Date.Compare(b.Date), true
	default:
		return strings.Compare(a.Str, b.Str), true
	}
}

// Equal reports whether a and b compare equal.
func Equal(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

func numberValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{Type: Number}
	}
	n, err := strconv.ParseFloat(s, 64)
	// ParseFloat also accepts inf, infinity and nan spellings
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return Value{Type: Number, Num: math.NaN()}
	}
	return Value{Type: Number, Num: n}
}

func stringValue(dt DataType, raw string) Value {
	return Value{Type: dt, Str: raw}
}

func unsupported(dt DataType) error {
	return fmt.Errorf("%w: %q", ErrInvalidDataType, dt)
}
