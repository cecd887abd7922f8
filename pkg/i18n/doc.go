// Package i18n resolves the localized texts used by form validation: field
// display aliases, constraint error templates and custom validation messages.
//
// Translations are loaded once from a Source (in-memory map, a single JSON or
// YAML file, or a directory inside an fs.FS) into a Catalog keyed by
// language. Catalog.Resolve picks the best available language for a requested
// tag, using golang.org/x/text/language matching so that "es-ES" resolves to
// an "es" dictionary, and returns a Dictionary.
//
// # Dictionary layout
//
// Every language holds a nested map with three well-known sections:
//
//	en:
//	  fields:
//	    numDays: Number of days
//	  errors:
//	    min: "The value of the field #1# must be greater than #2#"
//	    length:
//	      min: "The field #1# must contain, at least, #2# characters"
//	  messages:
//	    customValNumDays:
//	      error: "Number of days must be greater than #1#"
//
// Dictionaries can be layered with With so that a form's own dictionary
// shadows the engine defaults.
//
// # Placeholders
//
// Templates use numbered placeholders (#1#, #2#, ...) substituted
// left-to-right by Format. A placeholder without a matching argument is kept
// verbatim and reported as a warning.
//
// # Diagnostics
//
// Missing aliases fall back to the raw field name and missing templates yield
// an empty string. Both are logged at warning level and never fail.
package i18n
