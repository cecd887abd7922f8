package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/config"
	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/i18n"
	"github.com/dmitrymomot/formval/pkg/source"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, nil)
		assert.Equal(t, "en", e.Config().Language)
		assert.Equal(t, form.PolicyFirstFailure, e.Config().IntervalPolicy)
		assert.Equal(t, "dd/MM/yyyy", e.Caster().DateFormat().Pattern())
		assert.Equal(t, []string{"en", "es"}, e.Catalog().Languages())
	})

	t.Run("empty policy and language", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, func(c *form.Config) {
			c.IntervalPolicy = ""
			c.Language = ""
		})
		assert.Equal(t, form.PolicyFirstFailure, e.Config().IntervalPolicy)
		assert.Equal(t, "en", e.Config().Language)
	})

	t.Run("invalid date format", func(t *testing.T) {
		t.Parallel()
		cfg := form.DefaultConfig()
		cfg.DateFormat = "dd/MM/yy"
		_, err := form.NewEngine(context.Background(), cfg)
		require.Error(t, err)
		assert.True(t, form.IsConfigurationError(err))
	})

	t.Run("invalid interval policy", func(t *testing.T) {
		t.Parallel()
		cfg := form.DefaultConfig()
		cfg.IntervalPolicy = "some"
		_, err := form.NewEngine(context.Background(), cfg)
		assert.ErrorIs(t, err, form.ErrInvalidPolicy)
		assert.Panics(t, func() { form.MustNewEngine(context.Background(), cfg) })
	})

	t.Run("extra messages override defaults", func(t *testing.T) {
		t.Parallel()
		e := newEngine(t, nil, form.WithMessages(&i18n.MapSource{Data: map[string]map[string]any{
			"en": {"errors": map[string]any{"min": "#1# is below #2#"}},
		}}))
		f, err := e.NewForm("f", source.NewMap(nil), nil)
		require.NoError(t, err)
		assert.Equal(t, "#1# is below #2#", f.Dictionary().Template("min"))
		assert.Equal(t, "Field #1# is required", f.Dictionary().Template("isRequired"))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Parallel()
		cfg, err := form.LoadConfig(config.WithEnvironment(map[string]string{
			"FORMVAL_LANGUAGE":             "es",
			"FORMVAL_DATE_FORMAT":          "ymd",
			"FORMVAL_INTERVAL_POLICY":      "all",
			"FORMVAL_STRICT_SUCCESS":       "true",
			"FORMVAL_CAST_INTERVAL_FIELDS": "true",
			"FORMVAL_HIGHLIGHT_SUCCESS":    "true",
		}))
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "ymd", cfg.DateFormat)
		assert.Equal(t, form.PolicyAll, cfg.IntervalPolicy)
		assert.True(t, cfg.StrictSuccess)
		assert.True(t, cfg.CastIntervalFields)
		assert.True(t, cfg.HighlightSuccess)
		assert.True(t, cfg.UseStyle)
	})

	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		t.Parallel()
		cfg, err := form.LoadConfig(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, form.DefaultConfig(), cfg)
	})

	t.Run("rejects invalid policy", func(t *testing.T) {
		t.Parallel()
		_, err := form.LoadConfig(config.WithEnvironment(map[string]string{
			"FORMVAL_INTERVAL_POLICY": "never",
		}))
		assert.ErrorIs(t, err, form.ErrInvalidPolicy)
	})
}

func TestParseIntervalPolicy(t *testing.T) {
	t.Parallel()

	p, err := form.ParseIntervalPolicy("")
	require.NoError(t, err)
	assert.Equal(t, form.PolicyFirstFailure, p)

	p, err = form.ParseIntervalPolicy(" ALL ")
	require.NoError(t, err)
	assert.Equal(t, form.PolicyAll, p)

	_, err = form.ParseIntervalPolicy("none")
	assert.ErrorIs(t, err, form.ErrInvalidPolicy)
}
