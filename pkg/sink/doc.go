// Package sink provides form.PresentationSink implementations: Recorder
// keeps every call for inspection, Logger writes them to slog, Terminal
// renders a colored summary and Multi fans calls out to several sinks.
package sink
