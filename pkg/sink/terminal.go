package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/dmitrymomot/formval/pkg/form"
)

// Terminal collects the presentation of a pass and renders it as colored
// text on Flush.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	fields []string
	state  map[string]*fieldState
	forms  []string
	notes  map[string]string

	errColor  *color.Color
	okColor   *color.Color
	formColor *color.Color
}

type fieldState struct {
	message string
	style   form.Style
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithWriter sets the output. Defaults to os.Stdout.
func WithWriter(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		if w != nil {
			t.out = w
		}
	}
}

// WithoutColor disables ANSI colors.
func WithoutColor() TerminalOption {
	return func(t *Terminal) {
		t.errColor.DisableColor()
		t.okColor.DisableColor()
		t.formColor.DisableColor()
	}
}

func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:       os.Stdout,
		errColor:  color.New(color.FgRed, color.Bold),
		okColor:   color.New(color.FgGreen),
		formColor: color.New(color.FgYellow),
	}
	t.reset()
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) field(name string) *fieldState {
	st, ok := t.state[name]
	if !ok {
		st = &fieldState{style: form.StyleNone}
		t.state[name] = st
		t.fields = append(t.fields, name)
	}
	return st
}

func (t *Terminal) ShowFieldMessage(field, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.field(field).message = text
}

func (t *Terminal) ClearFieldMessage(field string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.field(field).message = ""
}

func (t *Terminal) ApplyFieldStyle(field string, style form.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.field(field).style = style
}

func (t *Terminal) ShowFormMessage(key, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.notes[key]; !ok {
		t.forms = append(t.forms, key)
	}
	t.notes[key] = text
}

// Flush writes the collected state and resets it. Fields are listed in the
// order they were first presented.
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.reset()

	for _, name := range t.fields {
		st := t.state[name]
		var err error
		switch {
		case st.style == form.StyleError || st.message != "":
			_, err = t.errColor.Fprintf(t.out, "✗ %s: %s\n", name, st.message)
		case st.style == form.StyleSuccess:
			_, err = t.okColor.Fprintf(t.out, "✓ %s\n", name)
		default:
			_, err = fmt.Fprintf(t.out, "  %s\n", name)
		}
		if err != nil {
			return err
		}
	}
	for _, key := range t.forms {
		if t.notes[key] == "" {
			continue
		}
		if _, err := t.formColor.Fprintf(t.out, "! %s: %s\n", key, t.notes[key]); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) reset() {
	t.fields = nil
	t.state = make(map[string]*fieldState)
	t.forms = nil
	t.notes = make(map[string]string)
}
