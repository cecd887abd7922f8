package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a flat YAML or JSON document of field values.
func LoadFile(ctx context.Context, path string) (*Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a flat YAML or JSON mapping of field values. Scalars are
// converted to strings, lists are joined with Separator and null becomes
// an empty value.
func Parse(data []byte) (*Map, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseFile, err)
	}

	m := NewMap(nil)
	for field, v := range doc {
		raw, err := rawValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrParseFile, field, err)
		}
		m.values[field] = raw
	}
	return m, nil
}

func rawValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case time.Time:
		return x.Format(time.DateOnly), nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			s, err := rawValue(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, Separator), nil
	case map[string]any:
		return "", fmt.Errorf("%w: nested mapping", ErrUnsupportedType)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", errors.Join(ErrUnsupportedType, err)
	}
	return s, nil
}
