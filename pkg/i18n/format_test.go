package i18n_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formval/pkg/i18n"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"positional", "Field #1# must exceed #2#", []any{"age", 18}, "Field age must exceed 18"},
		{"repeated placeholder", "#1# and #1#", []any{"x"}, "x and x"},
		{"out of order", "#2# before #1#", []any{"a", "b"}, "b before a"},
		{"two digit placeholder", "#10#", []any{1, 2, 3, 4, 5, 6, 7, 8, 9, "ten"}, "ten"},
		{"missing argument kept", "#1# vs #2#", []any{"a"}, "a vs #2#"},
		{"no placeholders", "plain", []any{"a"}, "plain"},
		{"empty template", "", []any{"a"}, ""},
		{"nil argument", "[#1#]", []any{nil}, "[]"},
		{"float argument", "#1#", []any{2.5}, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.Format(nil, tt.template, tt.args...))
		})
	}
}

func TestFormatWarnsOnMissingArgument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	got := i18n.Format(logger, "#1# #3#", "a")
	assert.Equal(t, "a #3#", got)
	assert.Contains(t, buf.String(), "replacement for placeholder was not found")
	assert.Contains(t, buf.String(), "placeholder=#3#")
}
