package form

import (
	"github.com/dmitrymomot/formval/pkg/constraint"
)

// Report is the outcome of one validation pass.
type Report struct {
	PassID   string
	Form     string
	Language string
	// Valid is the value that selected the success or error handler.
	Valid bool
	// FieldsValid is true when every watched field passed its constraints.
	FieldsValid bool

	Fields    []FieldResult
	Intervals []IntervalResult
	Custom    []CustomResult
}

// FieldResult is the per-field outcome of a pass.
type FieldResult struct {
	Name    string
	Ignored bool
	Valid   bool
	Failed  constraint.Kind
	Message string
}

// IntervalResult is the outcome of one cross-field interval.
type IntervalResult struct {
	Name     string
	MinField string
	MaxField string
	Passed   bool
	Message  string
}

// CustomResult is the outcome of one custom validation.
type CustomResult struct {
	Name    string
	Passed  bool
	Message string
}

// Field returns the result for the named field.
func (r Report) Field(name string) (FieldResult, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldResult{}, false
}

// FailedFields lists the names of fields that failed, in declaration order.
func (r Report) FailedFields() []string {
	var out []string
	for _, f := range r.Fields {
		if !f.Valid {
			out = append(out, f.Name)
		}
	}
	return out
}

// FailedIntervals returns the names of the failed intervals in order.
func (r Report) FailedIntervals() []string {
	var out []string
	for _, i := range r.Intervals {
		if !i.Passed {
			out = append(out, i.Name)
		}
	}
	return out
}

// FailedRules returns the names of the failed custom validations in order.
func (r Report) FailedRules() []string {
	var out []string
	for _, c := range r.Custom {
		if !c.Passed {
			out = append(out, c.Name)
		}
	}
	return out
}
