package i18n

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formval/pkg/logger"
)

// Section names inside a language map.
const (
	SectionFields   = "fields"
	SectionErrors   = "errors"
	SectionMessages = "messages"
)

// Dictionary is the resolved translation data for one language. It may be
// layered over fallback dictionaries; the first layer holding a key wins.
// A nil *Dictionary behaves as an empty one.
type Dictionary struct {
	lang   string
	layers []map[string]any
	logger *slog.Logger
}

// NewDictionary wraps data for lang. data may be nil.
func NewDictionary(lang string, data map[string]any, l *slog.Logger) *Dictionary {
	if l == nil {
		l = logger.Discard()
	}
	d := &Dictionary{lang: lang, logger: l}
	if data != nil {
		d.layers = append(d.layers, data)
	}
	return d
}

// Language returns the resolved language code.
func (d *Dictionary) Language() string {
	if d == nil {
		return ""
	}
	return d.lang
}

// With returns a dictionary that consults d first and fallback second.
func (d *Dictionary) With(fallback *Dictionary) *Dictionary {
	if d == nil {
		return fallback
	}
	out := &Dictionary{lang: d.lang, logger: d.logger}
	out.layers = append(out.layers, d.layers...)
	if fallback != nil {
		out.layers = append(out.layers, fallback.layers...)
	}
	return out
}

// WithLogger returns a copy of d logging through l.
func (d *Dictionary) WithLogger(l *slog.Logger) *Dictionary {
	if d == nil || l == nil {
		return d
	}
	out := *d
	out.logger = l
	return &out
}

// Lookup returns the string stored under a dot-separated key.
func (d *Dictionary) Lookup(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, layer := range d.layers {
		v, ok := lookup(layer, key)
		if !ok {
			continue
		}
		switch s := v.(type) {
		case string:
			return s, true
		case fmt.Stringer:
			return s.String(), true
		}
	}
	return "", false
}

// Alias returns the display name of field, or field itself when the
// dictionary has none.
func (d *Dictionary) Alias(field string) string {
	if alias, ok := d.Lookup(SectionFields + "." + field); ok && alias != "" {
		return alias
	}
	d.log().Warn("no translation for field", logger.Field(field), logger.Language(d.Language()))
	return field
}

// Template returns the error template stored under key in the errors
// section, or "" when missing.
func (d *Dictionary) Template(key string) string {
	if tmpl, ok := d.Lookup(SectionErrors + "." + key); ok {
		return tmpl
	}
	d.log().Warn("no error template", slog.String("key", key), logger.Language(d.Language()))
	return ""
}

// HasMessage reports whether a message template is declared for name.
func (d *Dictionary) HasMessage(name string) bool {
	_, ok := d.message(name)
	return ok
}

// Message returns the message template registered for name, read from
// messages.<name>.error or messages.<name>, or "" when missing.
func (d *Dictionary) Message(name string) string {
	if tmpl, ok := d.message(name); ok {
		return tmpl
	}
	d.log().Warn("no message template", slog.String("key", name), logger.Language(d.Language()))
	return ""
}

func (d *Dictionary) message(name string) (string, bool) {
	if tmpl, ok := d.Lookup(SectionMessages + "." + name + ".error"); ok {
		return tmpl, true
	}
	return d.Lookup(SectionMessages + "." + name)
}

// Format substitutes args into template, logging missing placeholders.
func (d *Dictionary) Format(template string, args ...any) string {
	return Format(d.log(), template, args...)
}

func (d *Dictionary) log() *slog.Logger {
	if d == nil || d.logger == nil {
		return logger.Discard()
	}
	return d.logger
}

// lookup walks a nested map along a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := asMap(v)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}
