package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formval/pkg/logger"
)

const watchDebounce = 100 * time.Millisecond

func newWatchCmd(g *globalFlags) *cobra.Command {
	var ff formFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate whenever the values file changes",
		Long: `Validate a values file, then validate it again after every change until
interrupted.

Examples:
  formcheck watch --schema booking.yaml --values submission.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s, err := newSession(ctx, g, &ff, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return s.watch(ctx, ff.values, func() error {
				_, err := s.run(ctx, cmd.OutOrStdout())
				return err
			})
		},
	}
	ff.register(cmd)
	return cmd
}

// watch runs validate once and again after every write to path. The
// directory is watched so that editors replacing the file are noticed.
func (s *session) watch(ctx context.Context, path string, validate func() error) error {
	if err := validate(); err != nil {
		return err
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	s.log.InfoContext(ctx, "watching values file", "path", path)

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			trigger = timer.C

		case <-trigger:
			trigger = nil
			values, err := s.loadValues(ctx, path)
			if err != nil {
				// a half-written file is retried on the next event
				s.log.WarnContext(ctx, "failed to reload values", logger.Error(err))
				continue
			}
			s.values.Replace(values)
			if err := validate(); err != nil {
				return err
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.ErrorContext(ctx, "file watcher error", logger.Error(err))
		}
	}
}
