package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formval/pkg/logger"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// Catalog holds translations for every loaded language.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	defaultLang  string
	logger       *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when the requested one is not available.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for diagnostics. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog loads translations from src.
func NewCatalog(ctx context.Context, src Source, opts ...Option) (*Catalog, error) {
	if src == nil {
		return nil, ErrSourceIsNil
	}

	c := &Catalog{
		translations: make(map[string]map[string]any),
		defaultLang:  DefaultLanguage,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	translations, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrMissingLanguage)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: nil translations for language %q", ErrMissingMessages, lang)
		}
		c.translations[lang] = make(map[string]any, len(m))
		deepMerge(c.translations[lang], m)
	}

	c.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", c.Languages()))
	return c, nil
}

// MustNewCatalog is like NewCatalog but panics on error.
func MustNewCatalog(ctx context.Context, src Source, opts ...Option) *Catalog {
	c, err := NewCatalog(ctx, src, opts...)
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
	return c
}

// Languages returns the loaded language codes in sorted order.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages()
}

func (c *Catalog) languages() []string {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Merge overrides entries of lang with messages, merging nested maps. The
// language is created when it does not exist yet. Dictionaries resolved
// before the merge keep their previous content.
func (c *Catalog) Merge(lang string, messages map[string]any) error {
	if lang == "" {
		return ErrMissingLanguage
	}
	if messages == nil {
		return ErrMissingMessages
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	merged := make(map[string]any)
	deepMerge(merged, c.translations[lang])
	deepMerge(merged, messages)
	c.translations[lang] = merged
	return nil
}

// Match returns the loaded language that best matches lang.
func (c *Catalog) Match(lang string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.match(lang)
}

func (c *Catalog) match(lang string) (string, error) {
	if lang == "" {
		lang = c.defaultLang
	}
	if _, ok := c.translations[lang]; ok {
		return lang, nil
	}

	langs := c.languages()
	tags := make([]language.Tag, 0, len(langs))
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, l)
	}
	if len(tags) > 0 {
		want, err := language.Parse(lang)
		if err == nil {
			_, idx, conf := language.NewMatcher(tags).Match(want)
			if conf != language.No {
				return codes[idx], nil
			}
		}
	}
	return "", &ErrLanguageNotSupported{Lang: lang}
}

// Resolve returns the dictionary for lang. An unsupported language falls back
// to the default language and, failing that, to an empty dictionary; both
// cases are logged as warnings.
func (c *Catalog) Resolve(lang string) *Dictionary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	code, err := c.match(lang)
	if err != nil {
		c.logger.Warn("language not supported, using default",
			logger.Language(lang),
			slog.String("default", c.defaultLang),
		)
		code, err = c.match(c.defaultLang)
		if err != nil {
			return NewDictionary(lang, nil, c.logger)
		}
	}
	return NewDictionary(code, c.translations[code], c.logger)
}
