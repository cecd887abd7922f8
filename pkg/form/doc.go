// Package form declares typed fields with constraints, cross-field
// intervals and custom rules, and validates them against live values.
//
// An Engine is built once from a Config and shared by every Form it creates.
// It owns the value caster, the constraint evaluator and the message catalog
// holding the built-in error templates (English and Spanish).
//
//	engine := form.MustNewEngine(ctx, form.DefaultConfig())
//	f, err := engine.NewForm("booking", values, presenter,
//	    form.WithLanguage("es"),
//	    form.WithDictionary(dict),
//	)
//
//	days := form.MustNewField("numDays", typecast.Number, form.Min(0), form.Required())
//	err = f.AddField(days)
//	err = f.AddInterval("startEnd", "startDate", "endDate")
//	err = f.AddCustomValidation("customValNumDays", func(args ...any) bool {
//	    return cast.ToFloat64(values.RawValue("numDays")) > cast.ToFloat64(args[0])
//	}, 100)
//
//	report, err := f.Validate(ctx, form.Handlers{
//	    OnSuccess: func(r form.Report) { ... },
//	    OnError:   func(r form.Report) { ... },
//	})
//
// # Collaborators
//
// Values are read through a ValueSource and results are written to a
// PresentationSink. A field must have a backing value in the source when it
// is added to a form.
//
// # Validation pass
//
// Each field's constraints run in declaration order and stop at the first
// failure. Ignored fields are skipped and reported valid. Intervals compare
// raw values unless Config.CastIntervalFields is set, and stop at the first
// failure unless Config.IntervalPolicy is PolicyAll. Only field results
// decide the outcome unless Config.StrictSuccess is set; interval and custom
// failures are still presented.
//
// # Errors
//
// Declaration mistakes are returned as errors and recognized by
// IsConfigurationError. Validation failures are never errors: they are
// recorded in the Report and shown through the sink. The only error a pass
// returns for a valid declaration is ErrDataTypeMismatch, raised when the
// fields of an interval have different data types.
package form
