package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes translation content into a per-language map.
type Parser interface {
	// Parse returns translations keyed by language code.
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by the extension of filename, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
