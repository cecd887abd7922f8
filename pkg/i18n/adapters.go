package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// Source loads translations keyed by language.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves translations from memory.
type MapSource struct {
	Data map[string]map[string]any
}

func (s *MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return s.Data, nil
}

// FileSource reads a single JSON or YAML file.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource returns a FileSource. When parser is nil it is chosen from the
// file extension.
func NewFileSource(parser Parser, filePath string) (*FileSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("%w: file path is empty", ErrFailedToReadFile)
	}
	if parser == nil {
		parser = NewParserForFile(filePath)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrFailedToParseFile, path.Ext(filePath))
	}
	return &FileSource{parser: parser, path: filePath}, nil
}

func (s *FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: translation file %q is empty", ErrFailedToReadFile, s.path)
	}

	translations, err := s.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// FSSource reads every supported file in a directory of an fs.FS, typically an
// embed.FS. Files are merged in name order.
type FSSource struct {
	fsys    fs.FS
	dir     string
	parsers []Parser
}

// NewFSSource returns a source reading dir from fsys with the JSON and YAML parsers.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	return &FSSource{
		fsys:    fsys,
		dir:     dir,
		parsers: []Parser{NewYAMLParser(), NewJSONParser()},
	}
}

func (s *FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := s.parserFor(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(s.dir, entry.Name())
		content, err := fs.ReadFile(s.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}
		for lang, m := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			deepMerge(all[lang], m)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, s.dir)
	}
	return all, nil
}

func (s *FSSource) parserFor(name string) Parser {
	ext := path.Ext(name)
	for _, p := range s.parsers {
		if ext != "" && p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// MultiSource merges several sources; later sources override earlier keys.
type MultiSource []Source

func (m MultiSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, src := range m {
		if src == nil {
			continue
		}
		translations, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, tm := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			deepMerge(all[lang], tm)
		}
	}
	return all, nil
}

// deepMerge copies src into dst, merging nested maps instead of replacing them.
func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		sm, ok := asMap(v)
		if !ok {
			dst[k] = v
			continue
		}
		dm, ok := asMap(dst[k])
		if !ok {
			dm = make(map[string]any, len(sm))
		}
		deepMerge(dm, sm)
		dst[k] = dm
	}
}

// asMap normalizes the map shapes produced by the JSON and YAML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}
	return nil, false
}
