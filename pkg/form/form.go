package form

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formval/pkg/constraint"
	"github.com/dmitrymomot/formval/pkg/i18n"
	"github.com/dmitrymomot/formval/pkg/logger"
)

// Form is a named collection of fields validated together. A Form is not
// safe for concurrent use; callers serialize validation passes.
type Form struct {
	id     uuid.UUID
	name   string
	engine *Engine
	source ValueSource
	sink   PresentationSink
	dict   *i18n.Dictionary
	logger *slog.Logger

	fields    []*Field
	index     map[string]*Field
	intervals *IntervalRegistry
	customs   *CustomRegistry
	state     State
}

// Option configures a Form.
type Option func(*formOptions)

type formOptions struct {
	lang   string
	dict   *i18n.Dictionary
	logger *slog.Logger
}

// WithLanguage selects the dictionary language. Defaults to the engine's.
func WithLanguage(lang string) Option {
	return func(o *formOptions) {
		o.lang = lang
	}
}

// WithDictionary layers d over the engine's templates, typically to provide
// field aliases and custom validation messages.
func WithDictionary(d *i18n.Dictionary) Option {
	return func(o *formOptions) {
		o.dict = d
	}
}

// WithFormLogger overrides the engine logger for this form.
func WithFormLogger(l *slog.Logger) Option {
	return func(o *formOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewForm creates an empty form reading values from src and reporting to
// sink. A nil sink discards presentation.
func (e *Engine) NewForm(name string, src ValueSource, sink PresentationSink, opts ...Option) (*Form, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: form name", ErrMissingName)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if sink == nil {
		sink = discardSink{}
	}

	o := &formOptions{lang: e.cfg.Language, logger: e.logger}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger.With(logger.Form(name))
	dict := e.catalog.Resolve(o.lang)
	if o.dict != nil {
		dict = o.dict.With(dict)
	}
	dict = dict.WithLogger(log)

	caster := e.caster
	if !e.cfg.CastIntervalFields {
		caster = nil
	}

	return &Form{
		id:        uuid.New(),
		name:      name,
		engine:    e,
		source:    src,
		sink:      sink,
		dict:      dict,
		logger:    log,
		index:     make(map[string]*Field),
		intervals: NewIntervalRegistry(e.cfg.IntervalPolicy, caster),
		customs:   NewCustomRegistry(),
		state:     StateInit,
	}, nil
}

// MustNewForm is like NewForm but panics on error.
func (e *Engine) MustNewForm(name string, src ValueSource, sink PresentationSink, opts ...Option) *Form {
	f, err := e.NewForm(name, src, sink, opts...)
	if err != nil {
		panic(fmt.Sprintf("form: %v", err))
	}
	return f
}

// ID returns the identifier assigned when the form was created.
func (f *Form) ID() uuid.UUID {
	return f.id
}

// Name returns the form name used in logs and reports.
func (f *Form) Name() string {
	return f.name
}

// State returns the state of the pass machine.
func (f *Form) State() State {
	return f.state
}

// Dictionary returns the dictionary resolved for the form language.
func (f *Form) Dictionary() *i18n.Dictionary {
	return f.dict
}

// Language returns the code of the form dictionary.
func (f *Form) Language() string {
	return f.dict.Language()
}

// AddField attaches fld. The source must have a backing value for it and its
// constraint parameters must be valid for its data type.
func (f *Form) AddField(fld *Field) error {
	if fld == nil {
		return ErrNilField
	}
	if fld.form != nil {
		if fld.form == f {
			return fieldError(fld.name, ErrDuplicateField)
		}
		return fieldError(fld.name, ErrFieldAttached)
	}
	if _, ok := f.index[fld.name]; ok {
		return fieldError(fld.name, ErrDuplicateField)
	}
	if !f.source.Lookup(fld.name) {
		return fieldError(fld.name, ErrNoBackingValue)
	}
	for _, spec := range fld.constraints.Specs() {
		if err := spec.CheckBounds(f.engine.caster, fld.dataType); err != nil {
			return fieldError(fld.name, err)
		}
	}

	fld.form = f
	f.fields = append(f.fields, fld)
	f.index[fld.name] = fld
	f.logger.Debug("field added",
		logger.Field(fld.name),
		slog.String("type", string(fld.dataType)),
		slog.Any("constraints", fld.constraints.Kinds()),
	)
	return nil
}

// AddFieldSpec builds a field from spec and attaches it.
func (f *Form) AddFieldSpec(spec FieldSpec) (*Field, error) {
	fld, err := FieldFromSpec(spec)
	if err != nil {
		return nil, err
	}
	if err := f.AddField(fld); err != nil {
		return nil, err
	}
	return fld, nil
}

// GetField returns the named field or nil.
func (f *Form) GetField(name string) *Field {
	return f.index[name]
}

// Fields returns the fields in insertion order.
func (f *Form) Fields() []*Field {
	return slices.Clone(f.fields)
}

// RemoveField detaches the named field. Intervals using it are removed too.
func (f *Form) RemoveField(name string) error {
	fld, ok := f.index[name]
	if !ok {
		return fieldError(name, ErrFieldNotFound)
	}

	f.fields = slices.DeleteFunc(f.fields, func(x *Field) bool { return x == fld })
	delete(f.index, name)
	fld.form = nil

	for _, interval := range f.intervals.RemoveField(fld) {
		f.logger.Warn("interval removed with its field", logger.Interval(interval), logger.Field(name))
	}
	return nil
}

// AddInterval requires the value of minField to be lower than or equal to
// the value of maxField. Both fields must already be registered.
func (f *Form) AddInterval(name, minField, maxField string) error {
	if name == "" {
		return fmt.Errorf("%w: interval name", ErrMissingName)
	}
	if minField == "" || maxField == "" {
		return fmt.Errorf("%w: interval %q requires two fields", ErrMissingName, name)
	}
	lo, ok := f.index[minField]
	if !ok {
		return fieldError(minField, ErrFieldNotFound)
	}
	hi, ok := f.index[maxField]
	if !ok {
		return fieldError(maxField, ErrFieldNotFound)
	}
	return f.intervals.Register(name, lo, hi)
}

// RemoveInterval drops the named interval.
func (f *Form) RemoveInterval(name string) bool {
	return f.intervals.Remove(name)
}

// Intervals returns the registered intervals in order.
func (f *Form) Intervals() []IntervalRule {
	return f.intervals.Rules()
}

// AddCustomValidation registers predicate under name with bound args. The
// form dictionary must hold a message for name.
func (f *Form) AddCustomValidation(name string, predicate Predicate, args ...any) error {
	return f.AddCustom(CustomValidation{Name: name, Predicate: predicate, Args: args})
}

// AddCustom registers cv. The form dictionary must hold a message for its key.
func (f *Form) AddCustom(cv CustomValidation) error {
	if cv.Name == "" {
		return fmt.Errorf("%w: custom validation name", ErrMissingName)
	}
	key := cv.MessageKey
	if key == "" {
		key = cv.Name
	}
	if !f.dict.HasMessage(key) {
		return fmt.Errorf("%w: no message %q in language %q", ErrMissingTemplate, key, f.dict.Language())
	}
	return f.customs.Register(cv)
}

// RemoveCustomValidation drops the named custom validation.
func (f *Form) RemoveCustomValidation(name string) bool {
	return f.customs.Remove(name)
}

// CustomValidations returns the registered custom validations in order.
func (f *Form) CustomValidations() []CustomValidation {
	return f.customs.Rules()
}

// IgnoreField excludes the named field from validation and calls its
// OnIgnore hook with args. Ignoring an ignored field does nothing.
func (f *Form) IgnoreField(name string, args ...any) error {
	return f.activate(name, eventIgnore, args)
}

// WatchField includes an ignored field in validation again and calls its
// OnWatch hook with args. Watching a watched field does nothing.
func (f *Form) WatchField(name string, args ...any) error {
	return f.activate(name, eventWatch, args)
}

func (f *Form) activate(name string, ev event, args []any) error {
	fld, ok := f.index[name]
	if !ok {
		return fieldError(name, ErrFieldNotFound)
	}
	changed, err := fld.fire(ev, args)
	if err != nil {
		return fieldError(name, err)
	}
	if changed {
		f.logger.Debug("field activation changed", logger.Field(name), slog.String("activation", string(fld.activation)))
	}
	return nil
}

func (f *Form) evaluateField(ctx context.Context, fld *Field) constraint.Outcome {
	outcome := f.engine.evaluator.Evaluate(fld.constraints, fld.dataType, f.source.RawValue(fld.name))
	fld.record(outcome)
	f.logger.DebugContext(ctx, "field evaluated", logger.Field(fld.name), slog.String("outcome", outcome.String()))
	return outcome
}
