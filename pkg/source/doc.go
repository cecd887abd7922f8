// Package source provides form.ValueSource implementations.
//
// Map is an in-memory source that also records which fields are enabled.
// It can be filled from url.Values (a form-encoded submission) or from a
// YAML or JSON values file:
//
//	values, err := source.LoadFile(ctx, "values.yaml")
//
// Multi-value inputs (lists in files, repeated keys in url.Values) are
// joined with commas, the way multi-select and checkbox groups report their
// value.
package source
