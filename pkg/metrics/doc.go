// Package metrics exports validation pass statistics to Prometheus.
//
// A Collector implements form.Observer; register it with the engine:
//
//	reg := prometheus.NewRegistry()
//	col, err := metrics.NewCollector(reg)
//	if err != nil {
//		return err
//	}
//	engine, err := form.NewEngine(ctx, cfg, form.WithObserver(col))
//
// Exported series:
//   - formval_validation_passes_total{form,outcome}
//   - formval_validation_aborts_total{form}
//   - formval_field_failures_total{form,field,constraint}
//   - formval_interval_failures_total{form,interval}
//   - formval_custom_failures_total{form,rule}
//   - formval_validation_duration_seconds{form}
package metrics
