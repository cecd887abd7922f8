package sink_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/sink"
)

var (
	_ form.PresentationSink = (*sink.Recorder)(nil)
	_ form.PresentationSink = (*sink.Logger)(nil)
	_ form.PresentationSink = (*sink.Terminal)(nil)
	_ form.PresentationSink = sink.Multi(nil)
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	r := sink.NewRecorder()
	r.ClearFieldMessage("age")
	r.ApplyFieldStyle("age", form.StyleError)
	r.ShowFieldMessage("age", "too young")
	r.ShowFormMessage("startEnd", "bad interval")

	want := []sink.Call{
		{Method: sink.MethodClearFieldMessage, Key: "age"},
		{Method: sink.MethodApplyFieldStyle, Key: "age", Style: form.StyleError},
		{Method: sink.MethodShowFieldMessage, Key: "age", Text: "too young"},
		{Method: sink.MethodShowFormMessage, Key: "startEnd", Text: "bad interval"},
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "too young", r.FieldMessage("age"))
	assert.Equal(t, form.StyleError, r.FieldStyle("age"))
	assert.Equal(t, "bad interval", r.FormMessage("startEnd"))
	assert.Len(t, r.CallsFor(sink.MethodApplyFieldStyle), 1)

	r.ClearFieldMessage("age")
	r.ApplyFieldStyle("age", form.StyleNone)
	r.ShowFormMessage("startEnd", "")
	assert.Equal(t, "", r.FieldMessage("age"))
	assert.Equal(t, form.StyleNone, r.FieldStyle("age"))
	assert.Equal(t, "", r.FormMessage("startEnd"))

	r.Reset()
	assert.Empty(t, r.Calls())
}

func TestMulti(t *testing.T) {
	t.Parallel()

	a, b := sink.NewRecorder(), sink.NewRecorder()
	m := sink.Multi{a, b}
	m.ShowFieldMessage("age", "x")
	m.ClearFieldMessage("name")
	m.ApplyFieldStyle("age", form.StyleSuccess)
	m.ShowFormMessage("rule", "y")

	require.Len(t, a.Calls(), 4)
	assert.Equal(t, a.Calls(), b.Calls())
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := sink.NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	s.ShowFieldMessage("age", "too young")
	s.ApplyFieldStyle("age", form.StyleError)
	s.ApplyFieldStyle("age", form.StyleNone)
	s.ShowFormMessage("startEnd", "")

	out := buf.String()
	assert.Contains(t, out, "field=age")
	assert.Contains(t, out, `text="too young"`)
	assert.Contains(t, out, "style=error")
	assert.NotContains(t, out, "field style cleared")
	assert.NotContains(t, out, "form message cleared")

	assert.NotPanics(t, func() { sink.NewLogger(nil).ShowFieldMessage("a", "b") })
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	term := sink.NewTerminal(sink.WithWriter(&buf), sink.WithoutColor())

	term.ClearFieldMessage("numDays")
	term.ClearFieldMessage("name")
	term.ClearFieldMessage("email")
	term.ApplyFieldStyle("numDays", form.StyleError)
	term.ShowFieldMessage("numDays", "The value of the field numDays must be greater than 0")
	term.ApplyFieldStyle("name", form.StyleSuccess)
	term.ShowFormMessage("startEnd", "")
	term.ShowFormMessage("customValNumDays", "Number of days must be greater than 100")

	require.NoError(t, term.Flush())
	want := "✗ numDays: The value of the field numDays must be greater than 0\n" +
		"✓ name\n" +
		"  email\n" +
		"! customValNumDays: Number of days must be greater than 100\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, term.Flush())
	assert.Empty(t, buf.String())
}
