package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formval/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"form", logger.Form("signup"), "form", "signup"},
		{"field", logger.Field("numDays"), "field", "numDays"},
		{"constraint", logger.Constraint("min"), "constraint", "min"},
		{"interval", logger.Interval("startEnd"), "interval", "startEnd"},
		{"rule", logger.Rule("customValNumDays"), "rule", "customValNumDays"},
		{"language", logger.Language("es"), "lang", "es"},
		{"component", logger.Component("engine"), "component", "engine"},
		{"pass id", logger.PassID("p-1"), "pass_id", "p-1"},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestErrorAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, slog.Attr{}, logger.PassID(nil))

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}
