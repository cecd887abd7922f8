package source_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/source"
)

var _ form.ValueSource = (*source.Map)(nil)

func TestMap(t *testing.T) {
	t.Parallel()

	m := source.NewMap(map[string]string{"age": "18"})

	assert.True(t, m.Lookup("age"))
	assert.False(t, m.Lookup("name"))
	assert.Equal(t, "18", m.RawValue("age"))
	assert.Equal(t, "", m.RawValue("name"))

	m.SetRawValue("name", "Ana")
	assert.True(t, m.Lookup("name"))
	assert.Equal(t, []string{"age", "name"}, m.Fields())

	m.SetValues("colors", "red", "blue")
	assert.Equal(t, "red,blue", m.RawValue("colors"))
	assert.Equal(t, []string{"red", "blue"}, m.Values("colors"))
	assert.Nil(t, m.Values("missing"))
}

func TestMapEnabled(t *testing.T) {
	t.Parallel()

	m := source.NewMap(map[string]string{"password": "secret"})
	assert.True(t, m.Enabled("password"))

	m.SetEnabled("password", false)
	assert.False(t, m.Enabled("password"))

	m.SetEnabled("password", true)
	assert.True(t, m.Enabled("password"))
}

func TestMapReplace(t *testing.T) {
	t.Parallel()

	m := source.NewMap(map[string]string{"a": "1", "b": "2"})
	m.SetEnabled("a", false)

	m.Replace(source.NewMap(map[string]string{"a": "3"}))
	assert.Equal(t, "3", m.RawValue("a"))
	assert.False(t, m.Lookup("b"))
	assert.False(t, m.Enabled("a"))

	m.Replace(m)
	assert.Equal(t, "3", m.RawValue("a"))
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	v := url.Values{}
	v.Set("name", "Ana")
	v.Add("days", "mon")
	v.Add("days", "tue")
	v["empty"] = nil

	m := source.FromValues(v)
	assert.Equal(t, "Ana", m.RawValue("name"))
	assert.Equal(t, "mon,tue", m.RawValue("days"))
	assert.True(t, m.Lookup("empty"))
	assert.Equal(t, "", m.RawValue("empty"))
}
