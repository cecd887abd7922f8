package sink

import (
	"log/slog"

	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/logger"
)

// Logger writes presentation changes to a slog.Logger. Messages are logged
// at info level and clearing calls at debug level.
type Logger struct {
	log *slog.Logger
}

func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = logger.Discard()
	}
	return &Logger{log: l.With(logger.Component("sink"))}
}

func (s *Logger) ShowFieldMessage(field, text string) {
	s.log.Info("field message", logger.Field(field), slog.String("text", text))
}

func (s *Logger) ClearFieldMessage(field string) {
	s.log.Debug("field message cleared", logger.Field(field))
}

func (s *Logger) ApplyFieldStyle(field string, style form.Style) {
	if style == form.StyleNone {
		s.log.Debug("field style cleared", logger.Field(field))
		return
	}
	s.log.Info("field style", logger.Field(field), slog.String("style", string(style)))
}

func (s *Logger) ShowFormMessage(key, text string) {
	if text == "" {
		s.log.Debug("form message cleared", slog.String("key", key))
		return
	}
	s.log.Info("form message", slog.String("key", key), slog.String("text", text))
}
