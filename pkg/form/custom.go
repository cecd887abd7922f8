package form

import (
	"fmt"
	"slices"
)

// Predicate is a custom validation rule. It receives the arguments bound at
// registration and usually reads live values through a closure.
type Predicate func(args ...any) bool

// CustomValidation is a named predicate with bound arguments. Its failure
// message is the dictionary template stored under MessageKey.
type CustomValidation struct {
	Name      string
	Predicate Predicate
	Args      []any
	// MessageKey defaults to Name.
	MessageKey string
}

// CustomRegistry holds custom validations in registration order.
type CustomRegistry struct {
	rules []CustomValidation
}

// NewCustomRegistry returns an empty registry.
func NewCustomRegistry() *CustomRegistry {
	return &CustomRegistry{}
}

// Register adds cv, replacing a previous validation of the same name in place.
func (r *CustomRegistry) Register(cv CustomValidation) error {
	if cv.Name == "" {
		return fmt.Errorf("%w: custom validation name", ErrMissingName)
	}
	if cv.Predicate == nil {
		return fmt.Errorf("%w: %q", ErrMissingPredicate, cv.Name)
	}
	if cv.MessageKey == "" {
		cv.MessageKey = cv.Name
	}
	cv.Args = slices.Clone(cv.Args)

	for i := range r.rules {
		if r.rules[i].Name == cv.Name {
			r.rules[i] = cv
			return nil
		}
	}
	r.rules = append(r.rules, cv)
	return nil
}

// Remove drops the validation called name.
func (r *CustomRegistry) Remove(name string) bool {
	n := len(r.rules)
	r.rules = slices.DeleteFunc(r.rules, func(cv CustomValidation) bool { return cv.Name == name })
	return len(r.rules) != n
}

// Rules returns the registered validations in order.
func (r *CustomRegistry) Rules() []CustomValidation {
	return slices.Clone(r.rules)
}

// Len returns the number of registered validations.
func (r *CustomRegistry) Len() int {
	return len(r.rules)
}

// EvaluateAll runs every predicate with its bound arguments. Predicates may
// change the registry; the pass covers the validations registered when it
// started.
func (r *CustomRegistry) EvaluateAll() []CustomResult {
	return evaluateCustom(r.Rules())
}

func evaluateCustom(rules []CustomValidation) []CustomResult {
	results := make([]CustomResult, 0, len(rules))
	for _, cv := range rules {
		results = append(results, CustomResult{
			Name:   cv.Name,
			Passed: cv.Predicate(cv.Args...),
		})
	}
	return results
}
