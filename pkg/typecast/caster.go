package typecast

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
)

// Caster converts raw values with a fixed date format.
type Caster struct {
	dates DateFormat
}

// NewCaster builds a Caster for the given date pattern or alias.
func NewCaster(datePattern string) (*Caster, error) {
	f, err := NewDateFormat(datePattern)
	if err != nil {
		return nil, err
	}
	return &Caster{dates: f}, nil
}

// MustNewCaster is like NewCaster but panics on an invalid date pattern.
func MustNewCaster(datePattern string) *Caster {
	c, err := NewCaster(datePattern)
	if err != nil {
		panic(fmt.Sprintf("typecast: %v", err))
	}
	return c
}

// DateFormat returns the configured date format.
func (c *Caster) DateFormat() DateFormat {
	return c.dates
}

// Cast converts a raw input value to dt. Unknown data types are treated as strings.
func (c *Caster) Cast(raw string, dt DataType) Value {
	switch dt {
	case Number:
		return numberValue(raw)
	case Date:
		return Value{Type: Date, Date: c.dates.Parse(raw)}
	case Boolean:
		return stringValue(Boolean, raw)
	default:
		return stringValue(String, raw)
	}
}

// CastLiteral converts a constraint parameter given as a Go value to dt.
// Strings go through Cast; numbers, time.Time and bools are converted directly.
func (c *Caster) CastLiteral(v any, dt DataType) Value {
	if s, ok := v.(string); ok {
		return c.Cast(s, dt)
	}

	switch dt {
	case Number:
		if v == nil {
			return Value{Type: Number, Num: math.NaN()}
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return Value{Type: Number, Num: math.NaN()}
		}
		return Value{Type: Number, Num: n}
	case Date:
		switch t := v.(type) {
		case time.Time:
			return Value{Type: Date, Date: DateOf(t)}
		case CalendarDate:
			return Value{Type: Date, Date: t}
		case nil:
			return Value{Type: Date}
		}
		return Value{Type: Date, Date: c.dates.Parse(cast.ToString(v))}
	case Boolean:
		return stringValue(Boolean, literalString(v))
	default:
		return stringValue(String, literalString(v))
	}
}

// Check reports an error when dt is not a supported data type.
func Check(dt DataType) error {
	if !dt.Valid() {
		return unsupported(dt)
	}
	return nil
}

func literalString(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
