package form

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/formval/pkg/typecast"
)

// IntervalRule binds two fields whose values must satisfy min <= max.
type IntervalRule struct {
	Name string
	Min  *Field
	Max  *Field
}

// IntervalRegistry holds the cross-field intervals of a form in registration order.
type IntervalRegistry struct {
	rules  []IntervalRule
	policy IntervalPolicy
	// caster is nil when raw values are compared as strings.
	caster *typecast.Caster
}

// NewIntervalRegistry creates a registry. A nil caster makes the registry
// compare raw values as strings.
func NewIntervalRegistry(policy IntervalPolicy, caster *typecast.Caster) *IntervalRegistry {
	if policy == "" {
		policy = PolicyFirstFailure
	}
	return &IntervalRegistry{policy: policy, caster: caster}
}

// Register adds a rule, replacing a previous rule of the same name in place.
func (r *IntervalRegistry) Register(name string, minField, maxField *Field) error {
	if name == "" {
		return fmt.Errorf("%w: interval name", ErrMissingName)
	}
	if minField == nil || maxField == nil {
		return fmt.Errorf("%w: interval %q requires two fields", ErrFieldNotFound, name)
	}

	rule := IntervalRule{Name: name, Min: minField, Max: maxField}
	for i := range r.rules {
		if r.rules[i].Name == name {
			r.rules[i] = rule
			return nil
		}
	}
	r.rules = append(r.rules, rule)
	return nil
}

// Remove drops the rule called name.
func (r *IntervalRegistry) Remove(name string) bool {
	n := len(r.rules)
	r.rules = slices.DeleteFunc(r.rules, func(rule IntervalRule) bool { return rule.Name == name })
	return len(r.rules) != n
}

// RemoveField drops every rule involving f and returns their names.
func (r *IntervalRegistry) RemoveField(f *Field) []string {
	var removed []string
	r.rules = slices.DeleteFunc(r.rules, func(rule IntervalRule) bool {
		if rule.Min == f || rule.Max == f {
			removed = append(removed, rule.Name)
			return true
		}
		return false
	})
	return removed
}

// Rules returns the registered rules in order.
func (r *IntervalRegistry) Rules() []IntervalRule {
	return slices.Clone(r.rules)
}

// Names returns the rule names in order.
func (r *IntervalRegistry) Names() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Len returns the number of registered intervals.
func (r *IntervalRegistry) Len() int {
	return len(r.rules)
}

// EvaluateAll checks every rule against src. Fields of a rule with different
// data types abort the evaluation with ErrDataTypeMismatch, returning the
// results gathered so far. With PolicyFirstFailure evaluation stops after
// the first failing rule.
func (r *IntervalRegistry) EvaluateAll(src ValueSource) ([]IntervalResult, error) {
	results := make([]IntervalResult, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.Min.DataType() != rule.Max.DataType() {
			return results, fmt.Errorf("%w: interval %q compares %s %q with %s %q",
				ErrDataTypeMismatch, rule.Name,
				rule.Min.DataType(), rule.Min.Name(),
				rule.Max.DataType(), rule.Max.Name(),
			)
		}

		passed := r.compare(rule, src.RawValue(rule.Min.Name()), src.RawValue(rule.Max.Name()))
		results = append(results, IntervalResult{
			Name:     rule.Name,
			MinField: rule.Min.Name(),
			MaxField: rule.Max.Name(),
			Passed:   passed,
		})
		if !passed && r.policy == PolicyFirstFailure {
			break
		}
	}
	return results, nil
}

func (r *IntervalRegistry) compare(rule IntervalRule, minRaw, maxRaw string) bool {
	if r.caster == nil {
		return minRaw <= maxRaw
	}
	dt := rule.Min.DataType()
	c, ok := typecast.Compare(r.caster.Cast(minRaw, dt), r.caster.Cast(maxRaw, dt))
	return ok && c <= 0
}
