package sink

import "github.com/dmitrymomot/formval/pkg/form"

// Multi forwards every call to each sink in order.
type Multi []form.PresentationSink

func (m Multi) ShowFieldMessage(field, text string) {
	for _, s := range m {
		s.ShowFieldMessage(field, text)
	}
}

func (m Multi) ClearFieldMessage(field string) {
	for _, s := range m {
		s.ClearFieldMessage(field)
	}
}

func (m Multi) ApplyFieldStyle(field string, style form.Style) {
	for _, s := range m {
		s.ApplyFieldStyle(field, style)
	}
}

func (m Multi) ShowFormMessage(key, text string) {
	for _, s := range m {
		s.ShowFormMessage(key, text)
	}
}
