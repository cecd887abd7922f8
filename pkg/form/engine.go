package form

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formval/pkg/constraint"
	"github.com/dmitrymomot/formval/pkg/i18n"
	"github.com/dmitrymomot/formval/pkg/logger"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

//go:embed messages/*.yaml
var defaultMessages embed.FS

// DefaultMessages returns the source of the built-in error templates.
func DefaultMessages() i18n.Source {
	return i18n.NewFSSource(defaultMessages, "messages")
}

// Engine holds the configuration and services shared by the forms it creates.
type Engine struct {
	cfg       Config
	caster    *typecast.Caster
	evaluator *constraint.Evaluator
	catalog   *i18n.Catalog
	logger    *slog.Logger
	observers []Observer
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	logger    *slog.Logger
	observers []Observer
	messages  []i18n.Source
}

// WithLogger sets the logger of the engine and its forms.
func WithLogger(l *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer notified after every validation pass.
func WithObserver(obs Observer) EngineOption {
	return func(o *engineOptions) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithMessages merges translations over the built-in templates. Later
// sources override earlier ones.
func WithMessages(src i18n.Source) EngineOption {
	return func(o *engineOptions) {
		if src != nil {
			o.messages = append(o.messages, src)
		}
	}
}

// NewEngine validates cfg and loads the message catalog.
func NewEngine(ctx context.Context, cfg Config, opts ...EngineOption) (*Engine, error) {
	o := &engineOptions{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := ParseIntervalPolicy(string(cfg.IntervalPolicy))
	cfg.IntervalPolicy = policy
	if cfg.Language == "" {
		cfg.Language = i18n.DefaultLanguage
	}

	caster, err := typecast.NewCaster(cfg.DateFormat)
	if err != nil {
		return nil, err
	}

	sources := append(i18n.MultiSource{DefaultMessages()}, o.messages...)
	catalog, err := i18n.NewCatalog(ctx, sources,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}

	e := &Engine{
		cfg:       cfg,
		caster:    caster,
		evaluator: constraint.NewEvaluator(caster, constraint.WithLogger(o.logger)),
		catalog:   catalog,
		logger:    o.logger,
		observers: o.observers,
	}
	e.logger.DebugContext(ctx, "form engine ready",
		logger.Language(cfg.Language),
		slog.String("date_format", caster.DateFormat().Pattern()),
		slog.String("interval_policy", string(cfg.IntervalPolicy)),
		slog.Bool("strict_success", cfg.StrictSuccess),
	)
	return e, nil
}

// MustNewEngine is like NewEngine but panics on error.
func MustNewEngine(ctx context.Context, cfg Config, opts ...EngineOption) *Engine {
	e, err := NewEngine(ctx, cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("form: %v", err))
	}
	return e
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Caster returns the caster configured with the engine date format.
func (e *Engine) Caster() *typecast.Caster {
	return e.caster
}

// Catalog returns the message catalog. Catalog.Merge overrides templates
// for forms created afterwards.
func (e *Engine) Catalog() *i18n.Catalog {
	return e.catalog
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}
