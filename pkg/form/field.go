package form

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formval/pkg/constraint"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

// Hook is called when a field changes activation. args are the extra values
// given to Form.IgnoreField or Form.WatchField.
type Hook func(f *Field, args ...any)

// Field is a named, typed input under validation.
type Field struct {
	id          uuid.UUID
	name        string
	dataType    typecast.DataType
	constraints constraint.Set
	valid       bool
	failed      constraint.Kind
	activation  Activation
	onIgnore    Hook
	onWatch     Hook

	form *Form
}

// NewField declares a field. Constraints are kept in option order.
func NewField(name string, dt typecast.DataType, opts ...FieldOption) (*Field, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if dt == "" {
		dt = typecast.String
	}
	if err := typecast.Check(dt); err != nil {
		return nil, fieldError(name, err)
	}

	f := &Field{
		id:         uuid.New(),
		name:       name,
		dataType:   dt,
		valid:      true,
		activation: Active,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fieldError(name, err)
		}
	}
	return f, nil
}

// MustNewField is like NewField but panics on error.
func MustNewField(name string, dt typecast.DataType, opts ...FieldOption) *Field {
	f, err := NewField(name, dt, opts...)
	if err != nil {
		panic(fmt.Sprintf("form: %v", err))
	}
	return f
}

// FieldSpec is the declarative form of a field.
type FieldSpec struct {
	Name        string
	DataType    typecast.DataType
	Constraints []constraint.Spec
	OnIgnore    Hook
	OnWatch     Hook
}

// FieldFromSpec creates a field from its declaration.
func FieldFromSpec(spec FieldSpec) (*Field, error) {
	opts := make([]FieldOption, 0, len(spec.Constraints)+2)
	for _, c := range spec.Constraints {
		opts = append(opts, WithConstraint(c))
	}
	if spec.OnIgnore != nil {
		opts = append(opts, OnIgnore(spec.OnIgnore))
	}
	if spec.OnWatch != nil {
		opts = append(opts, OnWatch(spec.OnWatch))
	}
	return NewField(spec.Name, spec.DataType, opts...)
}

// Spec returns the declaration of f. A field built from it is a fresh,
// unattached copy with a new id.
func (f *Field) Spec() FieldSpec {
	return FieldSpec{
		Name:        f.name,
		DataType:    f.dataType,
		Constraints: f.constraints.Specs(),
		OnIgnore:    f.onIgnore,
		OnWatch:     f.onWatch,
	}
}

// ID returns the identifier assigned by NewField.
func (f *Field) ID() uuid.UUID {
	return f.id
}

// Name returns the field name, also its key in the value source.
func (f *Field) Name() string {
	return f.name
}

// DataType returns the type raw values are cast to.
func (f *Field) DataType() typecast.DataType {
	return f.dataType
}

// Constraints returns a copy of the field's constraint set.
func (f *Field) Constraints() constraint.Set {
	return constraint.NewSet(f.constraints.Specs()...)
}

// Valid reports the status recorded by the last evaluation. Ignored fields
// keep the status they had before being ignored.
func (f *Field) Valid() bool {
	return f.valid
}

// FailedConstraint returns the kind that failed last, or "" when the field is valid.
func (f *Field) FailedConstraint() constraint.Kind {
	if f.valid {
		return ""
	}
	return f.failed
}

func (f *Field) Activation() Activation {
	return f.activation
}

// Ignored reports whether validation passes skip the field.
func (f *Field) Ignored() bool {
	return f.activation == Ignored
}

// Form returns the form the field is attached to, or nil.
func (f *Field) Form() *Form {
	return f.form
}

// Value returns the raw value behind the field, or "" when it is not attached.
func (f *Field) Value() string {
	if f.form == nil {
		return ""
	}
	return f.form.source.RawValue(f.name)
}

// SetValue replaces the raw value behind the field.
func (f *Field) SetValue(v string) error {
	if f.form == nil {
		return fieldError(f.name, ErrFieldDetached)
	}
	f.form.source.SetRawValue(f.name, v)
	return nil
}

// Enable marks the backing input as enabled. Typically called from an OnWatch hook.
func (f *Field) Enable() error {
	return f.setEnabled(true)
}

// Disable marks the backing input as disabled. Typically called from an OnIgnore hook.
func (f *Field) Disable() error {
	return f.setEnabled(false)
}

func (f *Field) setEnabled(enabled bool) error {
	if f.form == nil {
		return fieldError(f.name, ErrFieldDetached)
	}
	f.form.source.SetEnabled(f.name, enabled)
	return nil
}

// Validate evaluates only this field and refreshes its presentation, as
// a form pass would. Ignored fields are reported valid and left untouched.
func (f *Field) Validate(ctx context.Context) (constraint.Outcome, error) {
	if f.form == nil {
		return constraint.Valid(), fieldError(f.name, ErrFieldDetached)
	}
	if f.Ignored() {
		return constraint.Valid(), nil
	}

	fm := f.form
	fm.clearField(f)
	outcome := fm.evaluateField(ctx, f)
	fm.presentField(f)
	return outcome, nil
}

func (f *Field) record(o constraint.Outcome) {
	f.valid = o.OK()
	f.failed = o.Failed()
}

func (f *Field) fire(ev event, args []any) (bool, error) {
	to, err := transition(activationTransitions, f.activation, ev)
	if IsTransitionError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	f.activation = to

	var hook Hook
	switch to {
	case Ignored:
		hook = f.onIgnore
	case Active:
		hook = f.onWatch
	}
	if hook != nil {
		hook(f, args...)
	}
	return true, nil
}
