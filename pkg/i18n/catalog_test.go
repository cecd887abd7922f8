package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/i18n"
)

func testCatalog(t *testing.T, opts ...i18n.Option) *i18n.Catalog {
	t.Helper()
	src := &i18n.MapSource{Data: map[string]map[string]any{
		"en": {
			"fields":   map[string]any{"age": "Age"},
			"errors":   map[string]any{"min": "#1# must be at least #2#"},
			"messages": map[string]any{"adult": map[string]any{"error": "#1# must be an adult"}},
		},
		"es": {
			"fields": map[string]any{"age": "Edad"},
			"errors": map[string]any{"min": "#1# debe ser al menos #2#"},
		},
	}}
	c, err := i18n.NewCatalog(context.Background(), src, opts...)
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewCatalog(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrSourceIsNil)
	})

	t.Run("nil language map", func(t *testing.T) {
		t.Parallel()
		src := &i18n.MapSource{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewCatalog(context.Background(), src)
		assert.ErrorIs(t, err, i18n.ErrMissingMessages)
	})

	t.Run("languages are sorted", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"en", "es"}, testCatalog(t).Languages())
	})

	t.Run("must panics on error", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { i18n.MustNewCatalog(context.Background(), nil) })
	})
}

func TestCatalogResolve(t *testing.T) {
	t.Parallel()

	t.Run("exact language", func(t *testing.T) {
		t.Parallel()
		d := testCatalog(t).Resolve("es")
		assert.Equal(t, "es", d.Language())
		assert.Equal(t, "Edad", d.Alias("age"))
	})

	t.Run("regional variant matches base language", func(t *testing.T) {
		t.Parallel()
		d := testCatalog(t).Resolve("es-MX")
		assert.Equal(t, "es", d.Language())
	})

	t.Run("unsupported language falls back to default", func(t *testing.T) {
		t.Parallel()
		d := testCatalog(t).Resolve("ja")
		assert.Equal(t, "en", d.Language())
		assert.Equal(t, "Age", d.Alias("age"))
	})

	t.Run("custom default language", func(t *testing.T) {
		t.Parallel()
		d := testCatalog(t, i18n.WithDefaultLanguage("es")).Resolve("")
		assert.Equal(t, "es", d.Language())
	})

	t.Run("match reports unsupported language", func(t *testing.T) {
		t.Parallel()
		_, err := testCatalog(t).Match("ja")
		var target *i18n.ErrLanguageNotSupported
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "ja", target.Lang)
	})
}

func TestCatalogMerge(t *testing.T) {
	t.Parallel()

	c := testCatalog(t)
	require.NoError(t, c.Merge("en", map[string]any{"fields": map[string]any{"age": "Your age"}}))
	require.NoError(t, c.Merge("fr", map[string]any{"fields": map[string]any{"age": "Âge"}}))

	d := c.Resolve("en")
	assert.Equal(t, "Your age", d.Alias("age"))
	assert.Equal(t, "#1# must be at least #2#", d.Template("min"))
	assert.Equal(t, "Âge", c.Resolve("fr").Alias("age"))

	assert.ErrorIs(t, c.Merge("", map[string]any{}), i18n.ErrMissingLanguage)
	assert.ErrorIs(t, c.Merge("en", nil), i18n.ErrMissingMessages)
}
