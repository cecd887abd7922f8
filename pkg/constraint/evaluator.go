package constraint

import (
	"log/slog"
	"unicode/utf8"

	"github.com/dmitrymomot/formval/pkg/logger"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

// Outcome is the result of evaluating a Set: valid, or the kind that failed first.
type Outcome struct {
	failed Kind
}

// Valid is the outcome of a Set whose constraints all passed.
func Valid() Outcome {
	return Outcome{}
}

// Invalid is the outcome of a Set whose first failing constraint is k.
func Invalid(k Kind) Outcome {
	return Outcome{failed: k}
}

// OK reports whether every constraint passed.
func (o Outcome) OK() bool {
	return o.failed == ""
}

// Failed returns the failing kind, or "" when the outcome is valid.
func (o Outcome) Failed() Kind {
	return o.failed
}

func (o Outcome) String() string {
	if o.OK() {
		return "valid"
	}
	return "invalid(" + string(o.failed) + ")"
}

// Evaluator checks raw values against constraint Sets.
type Evaluator struct {
	caster *typecast.Caster
	logger *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for per-constraint debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEvaluator creates an Evaluator casting values with c.
func NewEvaluator(c *typecast.Caster, opts ...Option) *Evaluator {
	e := &Evaluator{
		caster: c,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the constraints of set in declaration order against raw and
// returns Invalid for the first one that fails. Later constraints are not run.
func (e *Evaluator) Evaluate(set Set, dt typecast.DataType, raw string) Outcome {
	for _, spec := range set.specs {
		if !e.Check(spec, dt, raw) {
			return Invalid(spec.Kind)
		}
	}
	return Valid()
}

// Check evaluates a single spec.
func (e *Evaluator) Check(spec Spec, dt typecast.DataType, raw string) bool {
	var ok bool
	switch spec.Kind {
	case KindMin:
		ok = e.compare(raw, spec.Value, dt, func(c int) bool { return c >= 0 })
	case KindMax:
		ok = e.compare(raw, spec.Value, dt, func(c int) bool { return c <= 0 })
	case KindEq:
		ok = e.compare(raw, spec.Value, dt, func(c int) bool { return c == 0 })
	case KindRequired:
		ok = raw != spec.Empty
	case KindLength:
		ok = checkLength(spec, utf8.RuneCountInString(raw))
	case KindPattern:
		ok = len(raw) == 0 || spec.Regexp.MatchString(raw)
	case KindInterval:
		ok = e.compare(raw, spec.Lower, dt, func(c int) bool { return c >= 0 }) &&
			e.compare(raw, spec.Upper, dt, func(c int) bool { return c <= 0 })
	case KindIntervalField:
		// checked by the form's interval registry
		ok = true
	default:
		ok = true
	}

	e.logger.Debug("constraint checked",
		logger.Constraint(string(spec.Kind)),
		slog.String("value", raw),
		slog.Bool("passed", ok),
	)
	return ok
}

func (e *Evaluator) compare(raw string, bound any, dt typecast.DataType, pred func(int) bool) bool {
	v := e.caster.Cast(raw, dt)
	b := e.caster.CastLiteral(bound, dt)
	c, ok := typecast.Compare(v, b)
	return ok && pred(c)
}

func checkLength(spec Spec, n int) bool {
	if spec.MinLen != nil && n < *spec.MinLen {
		return false
	}
	if spec.MaxLen != nil && n > *spec.MaxLen {
		return false
	}
	return true
}
