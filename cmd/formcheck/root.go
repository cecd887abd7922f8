package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formval/pkg/config"
	"github.com/dmitrymomot/formval/pkg/form"
	"github.com/dmitrymomot/formval/pkg/logger"
	"github.com/dmitrymomot/formval/pkg/schema"
	"github.com/dmitrymomot/formval/pkg/sink"
	"github.com/dmitrymomot/formval/pkg/source"
)

const serviceName = "formcheck"

// errInvalidForm is returned when a pass ends in the error state. The
// terminal output already describes the failures.
var errInvalidForm = errors.New("form is invalid")

type globalFlags struct {
	envFiles []string
	noColor  bool
}

type formFlags struct {
	schema string
	values string
	lang   string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   serviceName,
		Short: "Validate form values against a declarative schema",
		Long: `formcheck loads a form schema (fields, constraints, intervals and custom
validations) and validates a YAML or JSON values file against it.

Engine settings come from FORMVAL_ prefixed environment variables:
  FORMVAL_LANGUAGE, FORMVAL_DATE_FORMAT, FORMVAL_INTERVAL_POLICY,
  FORMVAL_STRICT_SUCCESS, FORMVAL_CAST_INTERVAL_FIELDS, FORMVAL_LOG_LEVEL, ...`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&g.envFiles, "env-file", nil, "dotenv files with engine settings")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newValidateCmd(&g), newWatchCmd(&g), newVersionCmd())
	return root
}

func (ff *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ff.schema, "schema", "s", "", "form schema file")
	cmd.Flags().StringVarP(&ff.values, "values", "f", "", "values file (YAML or JSON)")
	cmd.Flags().StringVarP(&ff.lang, "lang", "l", "", "message language, defaults to FORMVAL_LANGUAGE")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("values")
}

// session is a form built from the command flags.
type session struct {
	log    *slog.Logger
	form   *form.Form
	values *source.Map
	term   *sink.Terminal
	fields []string
}

func newSession(ctx context.Context, g *globalFlags, ff *formFlags, out, errOut io.Writer) (*session, error) {
	cfg, err := form.LoadConfig(config.WithEnvFiles(g.envFiles...))
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg, errOut)
	if err != nil {
		return nil, err
	}

	engine, err := form.NewEngine(ctx, cfg, form.WithLogger(log))
	if err != nil {
		return nil, err
	}

	doc, err := schema.Load(ctx, ff.schema)
	if err != nil {
		return nil, err
	}
	if ff.lang != "" {
		doc.Language = ff.lang
	}

	s := &session{log: log}
	for _, fd := range doc.Fields {
		s.fields = append(s.fields, fd.Name)
	}
	if s.values, err = s.loadValues(ctx, ff.values); err != nil {
		return nil, err
	}

	termOpts := []sink.TerminalOption{sink.WithWriter(out)}
	if g.noColor {
		termOpts = append(termOpts, sink.WithoutColor())
	}
	s.term = sink.NewTerminal(termOpts...)

	if s.form, err = doc.Build(engine, s.values, s.term); err != nil {
		return nil, err
	}
	return s, nil
}

// loadValues reads the values file. Declared fields missing from it are
// submitted empty.
func (s *session) loadValues(ctx context.Context, path string) (*source.Map, error) {
	m, err := source.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, name := range s.fields {
		if !m.Lookup(name) {
			m.SetRawValue(name, "")
		}
	}
	return m, nil
}

// run validates the form and prints the outcome.
func (s *session) run(ctx context.Context, out io.Writer) (form.Report, error) {
	report, err := s.form.Validate(ctx, form.Handlers{})
	if err != nil {
		return report, err
	}
	if err := s.term.Flush(); err != nil {
		return report, err
	}

	status := "valid"
	if !report.Valid {
		status = "invalid"
	}
	if _, err := fmt.Fprintf(out, "%s: %s\n", report.Form, status); err != nil {
		return report, err
	}
	return report, nil
}

// newLogger builds the command logger and installs it as the slog default.
func newLogger(cfg form.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.SetAsDefault(logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("version", Version)),
		logger.WithContextExtractors(form.PassAttr),
	)), nil
}
