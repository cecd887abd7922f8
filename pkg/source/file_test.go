package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/source"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		m, err := source.Parse([]byte(`
numDays: 5
price: 2.5
name: Ana
accept: true
startDate: "01/05/2015"
colors: [red, blue]
comment: null
`))
		require.NoError(t, err)
		assert.Equal(t, "5", m.RawValue("numDays"))
		assert.Equal(t, "2.5", m.RawValue("price"))
		assert.Equal(t, "Ana", m.RawValue("name"))
		assert.Equal(t, "true", m.RawValue("accept"))
		assert.Equal(t, "01/05/2015", m.RawValue("startDate"))
		assert.Equal(t, "red,blue", m.RawValue("colors"))
		assert.True(t, m.Lookup("comment"))
		assert.Equal(t, "", m.RawValue("comment"))
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		m, err := source.Parse([]byte(`{"numDays": -5, "tags": ["a", 1]}`))
		require.NoError(t, err)
		assert.Equal(t, "-5", m.RawValue("numDays"))
		assert.Equal(t, "a,1", m.RawValue("tags"))
	})

	t.Run("nested mapping", func(t *testing.T) {
		t.Parallel()
		_, err := source.Parse([]byte("address:\n  city: Madrid\n"))
		assert.ErrorIs(t, err, source.ErrParseFile)
		assert.ErrorIs(t, err, source.ErrUnsupportedType)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := source.Parse([]byte("a: [1"))
		assert.ErrorIs(t, err, source.ErrParseFile)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		p := filepath.Join(t.TempDir(), "values.yaml")
		require.NoError(t, os.WriteFile(p, []byte("age: 18\n"), 0o600))

		m, err := source.LoadFile(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, "18", m.RawValue("age"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := source.LoadFile(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, source.ErrReadFile)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := source.LoadFile(ctx, "values.yaml")
		assert.ErrorIs(t, err, source.ErrLoadCancelled)
	})
}
