package schema

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formval/pkg/constraint"
	"github.com/dmitrymomot/formval/pkg/typecast"
)

// Document is a declarative form.
type Document struct {
	Form     string `yaml:"form"`
	Language string `yaml:"language"`
	// Dictionary holds per-language translations with the fields, messages
	// and errors sections. Entries override the engine templates.
	Dictionary map[string]map[string]any `yaml:"dictionary"`
	Fields     []FieldDecl               `yaml:"fields"`
	Intervals  []IntervalDecl            `yaml:"intervals"`
	Custom     []CustomDecl              `yaml:"custom"`
}

// FieldDecl declares a field and its constraints in declaration order.
type FieldDecl struct {
	Name        string            `yaml:"name"`
	Type        typecast.DataType `yaml:"type"`
	Ignored     bool              `yaml:"ignored"`
	Constraints []ConstraintDecl  `yaml:"constraints"`
}

// IntervalDecl declares an interval between two fields.
type IntervalDecl struct {
	Name string `yaml:"name"`
	Min  string `yaml:"min"`
	Max  string `yaml:"max"`
}

// CustomDecl binds a builtin predicate to a field. The predicate compares
// the field's live value with the first argument; the arguments are also
// the placeholders of the message.
type CustomDecl struct {
	Name      string `yaml:"name"`
	Predicate string `yaml:"predicate"`
	Field     string `yaml:"field"`
	Args      []any  `yaml:"args"`
	// Message is the dictionary message key. Defaults to Name.
	Message string `yaml:"message"`
}

// ConstraintDecl is one entry of a field's constraint list: a single-key
// mapping from the constraint kind to its parameter.
type ConstraintDecl struct {
	Spec constraint.Spec
}

// UnmarshalYAML decodes and checks the constraint parameters.
func (c *ConstraintDecl) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: line %d: expected a single kind: parameter pair", ErrInvalidConstraint, node.Line)
	}
	key, val := node.Content[0], node.Content[1]
	kind, ok := constraint.ParseKind(key.Value)
	if !ok {
		return fmt.Errorf("%w: line %d: unknown kind %q", ErrInvalidConstraint, key.Line, key.Value)
	}
	spec, err := decodeSpec(kind, val)
	if err != nil {
		return fmt.Errorf("%w: line %d: %s: %w", ErrInvalidConstraint, key.Line, kind, err)
	}
	c.Spec = spec
	return nil
}

type bounds struct {
	Min any `yaml:"min"`
	Max any `yaml:"max"`
}

func decodeSpec(kind constraint.Kind, val *yaml.Node) (constraint.Spec, error) {
	switch kind {
	case constraint.KindMin, constraint.KindMax, constraint.KindEq:
		var v any
		if err := val.Decode(&v); err != nil {
			return constraint.Spec{}, err
		}
		switch kind {
		case constraint.KindMin:
			return constraint.Min(v)
		case constraint.KindMax:
			return constraint.Max(v)
		default:
			return constraint.Eq(v)
		}

	case constraint.KindPattern:
		var expr string
		if err := val.Decode(&expr); err != nil {
			return constraint.Spec{}, err
		}
		return constraint.Pattern(expr)

	case constraint.KindRequired:
		// true, or the empty sentinel as a string
		if val.Tag == "!!bool" {
			var b bool
			if err := val.Decode(&b); err != nil {
				return constraint.Spec{}, err
			}
			if !b {
				return constraint.Spec{}, errors.New("omit the constraint instead of disabling it")
			}
			return constraint.Required()
		}
		return constraint.Required(val.Value)

	case constraint.KindLength:
		if val.Kind == yaml.ScalarNode {
			var n int
			if err := val.Decode(&n); err != nil {
				return constraint.Spec{}, err
			}
			return constraint.MinLength(n)
		}
		var b struct {
			Min *int `yaml:"min"`
			Max *int `yaml:"max"`
		}
		if err := val.Decode(&b); err != nil {
			return constraint.Spec{}, err
		}
		return constraint.Length(b.Min, b.Max)

	case constraint.KindInterval:
		b, err := decodeBounds(val)
		if err != nil {
			return constraint.Spec{}, err
		}
		return constraint.Interval(b.Min, b.Max)

	case constraint.KindIntervalField:
		b, err := decodeBounds(val)
		if err != nil {
			return constraint.Spec{}, err
		}
		minField, _ := b.Min.(string)
		maxField, _ := b.Max.(string)
		return constraint.IntervalField(minField, maxField)
	}
	return constraint.Spec{}, fmt.Errorf("unsupported kind %q", kind)
}

// decodeBounds accepts [min, max] or {min: .., max: ..}.
func decodeBounds(val *yaml.Node) (bounds, error) {
	var b bounds
	switch val.Kind {
	case yaml.SequenceNode:
		var pair []any
		if err := val.Decode(&pair); err != nil {
			return b, err
		}
		if len(pair) != 2 {
			return b, fmt.Errorf("expected two bounds, got %d", len(pair))
		}
		b.Min, b.Max = pair[0], pair[1]
	case yaml.MappingNode:
		if err := val.Decode(&b); err != nil {
			return b, err
		}
	default:
		return b, errors.New("expected a [min, max] list or a min/max mapping")
	}
	return b, nil
}

// Load reads a schema document from path.
func Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	doc, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a schema document. Field data types and constraint
// parameters are checked here; bounds that depend on the data type are
// checked when the form is built.
func Parse(ctx context.Context, data []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	if doc.Form == "" {
		return nil, fmt.Errorf("%w: missing form name", ErrParseSchema)
	}
	for i := range doc.Fields {
		fd := &doc.Fields[i]
		if fd.Name == "" {
			return nil, fmt.Errorf("%w: field #%d has no name", ErrParseSchema, i+1)
		}
		dt, err := typecast.ParseDataType(string(fd.Type))
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrParseSchema, fd.Name, err)
		}
		fd.Type = dt
	}
	return &doc, nil
}
