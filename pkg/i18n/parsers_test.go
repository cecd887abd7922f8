package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/i18n"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		content := []byte(`{
			"en": {"fields": {"age": "Age"}, "errors": {"min": "#1# too small"}},
			"es": {"fields": {"age": "Edad"}}
		}`)

		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Contains(t, result, "en")
		require.Contains(t, result, "es")

		fields, ok := result["en"]["fields"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Age", fields["age"])
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`{"en": {"a": "b",}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("language is not an object", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte(`{"en": "hello"}`))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, []byte(`{}`))
		assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension(".json"))
		assert.True(t, parser.SupportsFileExtension("JSON"))
		assert.False(t, parser.SupportsFileExtension(".yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		content := []byte(`
en:
  fields:
    age: Age
  messages:
    adult:
      error: "#1# must be an adult"
`)
		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)

		messages, ok := result["en"]["messages"].(map[string]any)
		require.True(t, ok)
		adult, ok := messages["adult"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "#1# must be an adult", adult["error"])
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("en:\n  a: [b\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language is not a mapping", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yml"))
		assert.True(t, parser.SupportsFileExtension(".YAML"))
		assert.False(t, parser.SupportsFileExtension(".json"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/en.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.YAML"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("messages"))
}
