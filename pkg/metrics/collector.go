package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/formval/pkg/form"
)

const DefaultNamespace = "formval"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Collector records validation passes as Prometheus metrics.
type Collector struct {
	passes    *prometheus.CounterVec
	aborts    *prometheus.CounterVec
	fields    *prometheus.CounterVec
	intervals *prometheus.CounterVec
	custom    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ form.Observer = (*Collector)(nil)

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithBuckets overrides the duration histogram buckets.
func WithBuckets(b []float64) Option {
	return func(o *options) {
		if len(b) > 0 {
			o.buckets = b
		}
	}
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	o := options{
		namespace: DefaultNamespace,
		// passes run in microseconds to a few milliseconds
		buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "validation_passes_total",
			Help:      "Completed validation passes by outcome.",
		}, []string{"form", "outcome"}),
		aborts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "validation_aborts_total",
			Help:      "Validation passes aborted by a configuration error.",
		}, []string{"form"}),
		fields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "field_failures_total",
			Help:      "Field constraint failures.",
		}, []string{"form", "field", "constraint"}),
		intervals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "interval_failures_total",
			Help:      "Cross-field interval failures.",
		}, []string{"form", "interval"}),
		custom: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "custom_failures_total",
			Help:      "Custom validation failures.",
		}, []string{"form", "rule"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "validation_duration_seconds",
			Help:      "Duration of completed validation passes in seconds.",
			Buckets:   o.buckets,
		}, []string{"form"}),
	}

	for _, col := range []prometheus.Collector{c.passes, c.aborts, c.fields, c.intervals, c.custom, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegister, err)
		}
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on error.
func MustNewCollector(reg prometheus.Registerer, opts ...Option) *Collector {
	c, err := NewCollector(reg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// PassCompleted implements form.Observer.
func (c *Collector) PassCompleted(_ context.Context, r form.Report, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if !r.Valid {
		outcome = OutcomeError
	}
	c.passes.WithLabelValues(r.Form, outcome).Inc()
	c.duration.WithLabelValues(r.Form).Observe(elapsed.Seconds())

	for _, f := range r.Fields {
		if !f.Valid {
			c.fields.WithLabelValues(r.Form, f.Name, string(f.Failed)).Inc()
		}
	}
	for _, name := range r.FailedIntervals() {
		c.intervals.WithLabelValues(r.Form, name).Inc()
	}
	for _, name := range r.FailedRules() {
		c.custom.WithLabelValues(r.Form, name).Inc()
	}
}

// PassAborted implements form.Observer.
func (c *Collector) PassAborted(_ context.Context, formName string, _ error) {
	c.aborts.WithLabelValues(formName).Inc()
}

// Passes exposes the pass counter, labelled by form and outcome.
func (c *Collector) Passes() *prometheus.CounterVec { return c.passes }
