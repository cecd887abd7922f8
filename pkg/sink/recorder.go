package sink

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/formval/pkg/form"
)

// Method names a PresentationSink method.
type Method string

const (
	MethodShowFieldMessage  Method = "ShowFieldMessage"
	MethodClearFieldMessage Method = "ClearFieldMessage"
	MethodApplyFieldStyle   Method = "ApplyFieldStyle"
	MethodShowFormMessage   Method = "ShowFormMessage"
)

// Call is one recorded sink call. Key is the field name, or the interval or
// custom validation name for ShowFormMessage.
type Call struct {
	Method Method
	Key    string
	Text   string
	Style  form.Style
}

// Recorder records calls in order and tracks the resulting presentation state.
type Recorder struct {
	mu            sync.Mutex
	calls         []Call
	fieldMessages map[string]string
	fieldStyles   map[string]form.Style
	formMessages  map[string]string
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.reset()
	return r
}

func (r *Recorder) ShowFieldMessage(field, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: MethodShowFieldMessage, Key: field, Text: text})
	r.fieldMessages[field] = text
}

func (r *Recorder) ClearFieldMessage(field string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: MethodClearFieldMessage, Key: field})
	delete(r.fieldMessages, field)
}

func (r *Recorder) ApplyFieldStyle(field string, style form.Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: MethodApplyFieldStyle, Key: field, Style: style})
	if style == form.StyleNone {
		delete(r.fieldStyles, field)
		return
	}
	r.fieldStyles[field] = style
}

func (r *Recorder) ShowFormMessage(key, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: MethodShowFormMessage, Key: key, Text: text})
	if text == "" {
		delete(r.formMessages, key)
		return
	}
	r.formMessages[key] = text
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// CallsFor returns the recorded calls of method m.
func (r *Recorder) CallsFor(m Method) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Method == m {
			out = append(out, c)
		}
	}
	return out
}

// FieldMessage returns the message currently shown for field.
func (r *Recorder) FieldMessage(field string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fieldMessages[field]
}

// FieldStyle returns the style currently applied to field.
func (r *Recorder) FieldStyle(field string) form.Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.fieldStyles[field]; ok {
		return s
	}
	return form.StyleNone
}

// FormMessage returns the message currently shown for key.
func (r *Recorder) FormMessage(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.formMessages[key]
}

// Reset forgets every call and presentation state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

func (r *Recorder) reset() {
	r.calls = nil
	r.fieldMessages = make(map[string]string)
	r.fieldStyles = make(map[string]form.Style)
	r.formMessages = make(map[string]string)
}
