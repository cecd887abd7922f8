package form

// ValueSource gives the engine access to the live values behind fields.
type ValueSource interface {
	// Lookup reports whether a backing value exists for field.
	Lookup(field string) bool
	// RawValue returns the current raw value. Multi-value inputs are comma-joined.
	RawValue(field string) string
	SetRawValue(field, value string)
	SetEnabled(field string, enabled bool)
}

// Style is the visual state applied to a field.
type Style string

const (
	StyleNone    Style = "none"
	StyleError   Style = "error"
	StyleSuccess Style = "success"
)

// PresentationSink receives the outcome of validation for display.
type PresentationSink interface {
	ShowFieldMessage(field, text string)
	ClearFieldMessage(field string)
	ApplyFieldStyle(field string, style Style)
	// ShowFormMessage shows text for an interval or custom validation.
	// An empty text clears it.
	ShowFormMessage(key, text string)
}

type discardSink struct{}

func (discardSink) ShowFieldMessage(string, string) {}
func (discardSink) ClearFieldMessage(string) {}
func (discardSink) ApplyFieldStyle(string, Style) {}
func (discardSink) ShowFormMessage(string, string) {}
