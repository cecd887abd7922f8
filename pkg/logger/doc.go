// Package logger builds log/slog loggers for the validation engine and the
// formcheck CLI.
//
// New takes Option functions: WithEnvironment applies a development or
// production preset, WithLevel and WithFormat override it, WithAttr tags
// every record and WithContextExtractors injects values carried by the
// context, such as the id of the running validation pass. ParseLevel and
// ParseFormat read the matching settings from configuration.
//
// Attribute helpers (Form, Field, Constraint, Interval, Rule, Language,
// PassID, Error, ...) keep key names consistent across packages:
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formcheck"),
//	    logger.WithContextExtractors(form.PassAttr),
//	)
//	log.WarnContext(ctx, "no translation for field", logger.Field("numDays"))
//
// Library packages default to Discard when no logger is supplied.
package logger
