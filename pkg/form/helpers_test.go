package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/i18n"
	"github.com/dmitrymomot/formval/pkg/sink"
	"github.com/dmitrymomot/formval/pkg/source"
)

func newEngine(t *testing.T, mutate func(*form.Config), opts ...form.EngineOption) *form.Engine {
	t.Helper()
	cfg := form.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := form.NewEngine(context.Background(), cfg, opts...)
	require.NoError(t, err)
	return e
}

func bookingDictionary() *i18n.Dictionary {
	return i18n.NewDictionary("en", map[string]any{
		"fields": map[string]any{
			"numDays":   "Number of days",
			"startDate": "Start date",
			"endDate":   "End date",
		},
		"messages": map[string]any{
			"customValNumDays": map[string]any{
				"error": "Number of days must be greater than #1#",
			},
		},
	}, nil)
}

type fixture struct {
	engine *form.Engine
	form   *form.Form
	values *source.Map
	sink   *sink.Recorder
}

func newFixture(t *testing.T, values map[string]string, mutate func(*form.Config), opts ...form.Option) *fixture {
	t.Helper()
	e := newEngine(t, mutate)
	src := source.NewMap(values)
	rec := sink.NewRecorder()
	opts = append([]form.Option{form.WithDictionary(bookingDictionary())}, opts...)
	f, err := e.NewForm("booking", src, rec, opts...)
	require.NoError(t, err)
	return &fixture{engine: e, form: f, values: src, sink: rec}
}

type outcome struct {
	success int
	failure int
	last    form.Report
}

func (o *outcome) handlers() form.Handlers {
	return form.Handlers{
		OnSuccess: func(r form.Report) { o.success++; o.last = r },
		OnError:   func(r form.Report) { o.failure++; o.last = r },
	}
}
