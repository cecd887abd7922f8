package source

import (
	"maps"
	"net/url"
	"slices"
	"strings"
	"sync"
)

// Separator joins the values of multi-value inputs.
const Separator = ","

// Map is an in-memory form.ValueSource safe for concurrent use.
type Map struct {
	mu       sync.RWMutex
	values   map[string]string
	disabled map[string]bool
}

// NewMap creates a source holding a copy of values. All fields start enabled.
func NewMap(values map[string]string) *Map {
	m := &Map{
		values:   make(map[string]string, len(values)),
		disabled: make(map[string]bool),
	}
	maps.Copy(m.values, values)
	return m
}

// FromValues creates a source from form-encoded values. Repeated keys are
// joined with Separator.
func FromValues(v url.Values) *Map {
	m := NewMap(nil)
	for k, vals := range v {
		m.values[k] = strings.Join(vals, Separator)
	}
	return m
}

func (m *Map) Lookup(field string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[field]
	return ok
}

// RawValue returns the value of field, or "" when it has none.
func (m *Map) RawValue(field string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[field]
}

func (m *Map) SetRawValue(field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[field] = value
}

// SetValues stores a multi-value input.
func (m *Map) SetValues(field string, values ...string) {
	m.SetRawValue(field, strings.Join(values, Separator))
}

// Values splits a multi-value input. An empty value yields nil.
func (m *Map) Values(field string) []string {
	raw := m.RawValue(field)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, Separator)
}

func (m *Map) SetEnabled(field string, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if enabled {
		delete(m.disabled, field)
		return
	}
	m.disabled[field] = true
}

// Enabled reports whether field was not disabled.
func (m *Map) Enabled(field string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.disabled[field]
}

// Fields returns the field names in sorted order.
func (m *Map) Fields() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.values))
}

// Replace swaps every value for those of other, keeping the enabled state.
func (m *Map) Replace(other *Map) {
	if other == nil || other == m {
		return
	}
	other.mu.RLock()
	values := maps.Clone(other.values)
	other.mu.RUnlock()
	if values == nil {
		values = make(map[string]string)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = values
}
