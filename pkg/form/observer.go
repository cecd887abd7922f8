package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formval/pkg/logger"
)

// Observer is notified when validation passes end.
type Observer interface {
	PassCompleted(ctx context.Context, r Report, elapsed time.Duration)
	PassAborted(ctx context.Context, form string, err error)
}

type passIDKey struct{}

func withPassID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, passIDKey{}, id)
}

// PassID returns the id of the validation pass running with ctx.
func PassID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(passIDKey{}).(string)
	return id, ok && id != ""
}

// PassAttr is a logger.ContextExtractor adding the pass id to log records.
func PassAttr(ctx context.Context) (slog.Attr, bool) {
	id, ok := PassID(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.PassID(id), true
}
