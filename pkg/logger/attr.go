package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Form records the form name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Constraint records a constraint kind under the key "constraint".
func Constraint(kind string) slog.Attr {
	return slog.String("constraint", kind)
}

// Interval records an interval name under the key "interval".
func Interval(name string) slog.Attr {
	return slog.String("interval", name)
}

// Rule records a custom validation name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Language records a language code under the key "lang".
func Language(code string) slog.Attr {
	return slog.String("lang", code)
}

// PassID records a validation pass identifier under the key "pass_id".
// If id is nil, it returns an empty Attr.
func PassID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("pass_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
