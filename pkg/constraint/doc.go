// Package constraint declares per-field validation constraints and evaluates
// them against raw input values.
//
// A constraint is a Spec: a Kind plus the parameters that kind needs. Specs
// are collected into a Set which keeps declaration order and at most one Spec
// per Kind. The Evaluator walks a Set in declaration order and stops at the
// first failing constraint:
//
//	set := constraint.NewSet(
//	    constraint.Must(constraint.Required()),
//	    constraint.Must(constraint.Pattern(`[A-Z]{4,8}`)),
//	)
//	ev := constraint.NewEvaluator(typecast.MustNewCaster("dmy"))
//	out := ev.Evaluate(set, typecast.String, "")
//	// out.Failed() == constraint.KindRequired
//
// Kind semantics:
//
//   - min, max, eq: the raw value and the parameter are cast to the field's
//     data type; NaN never satisfies a bound.
//   - isRequired: the raw value differs from the configured empty sentinel.
//   - length: rune length of the raw value against the optional bounds.
//   - pattern: empty raw values pass; others must match the expression.
//   - interval: lower <= value <= upper after casting.
//   - intervalField: never evaluated here. The form-level interval registry
//     owns the comparison; the Spec only records intent.
//
// Constructors validate parameters and return errors wrapping the package
// sentinels (ErrMissingParameter, ErrInvalidPattern, ErrInvalidLength,
// ErrInvalidInterval).
package constraint
