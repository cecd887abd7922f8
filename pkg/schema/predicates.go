package schema

import (
	"fmt"

	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

// Predicate names.
const (
	PredicateGT       = "gt"
	PredicateGTE      = "gte"
	PredicateLT       = "lt"
	PredicateLTE      = "lte"
	PredicateEq       = "eq"
	PredicateNeq      = "neq"
	PredicateRequired = "required"
)

var comparisons = map[string]func(c int) bool{
	PredicateGT:  func(c int) bool { return c > 0 },
	PredicateGTE: func(c int) bool { return c >= 0 },
	PredicateLT:  func(c int) bool { return c < 0 },
	PredicateLTE: func(c int) bool { return c <= 0 },
	PredicateEq:  func(c int) bool { return c == 0 },
	PredicateNeq: func(c int) bool { return c != 0 },
}

// predicate returns a rule reading the live value of fld. Comparisons cast
// both sides to the field's data type; a value that cannot be compared fails.
func predicate(name string, fld *form.Field, caster *typecast.Caster) (form.Predicate, error) {
	if name == PredicateRequired {
		return func(...any) bool { return fld.Value() != "" }, nil
	}
	cmp, ok := comparisons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return func(args ...any) bool {
		if len(args) == 0 {
			return false
		}
		v := caster.Cast(fld.Value(), fld.DataType())
		ref := caster.CastLiteral(args[0], fld.DataType())
		c, ok := typecast.Compare(v, ref)
		return ok && cmp(c)
	}, nil
}
