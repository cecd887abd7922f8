package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/form"
)

const bookingSchema = `
form: booking
dictionary:
  en:
    fields:
      numDays: Number of days
fields:
  - name: numDays
    type: number
    constraints:
      - isRequired: true
      - min: 1
  - name: startDate
    type: date
  - name: endDate
    type: date
intervals:
  - name: startEnd
    min: startDate
    max: endDate
`

func writeFiles(t *testing.T, values string) (schemaPath, valuesPath string) {
	t.Helper()
	dir := t.TempDir()
	schemaPath = filepath.Join(dir, "booking.yaml")
	valuesPath = filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(bookingSchema), 0o600))
	require.NoError(t, os.WriteFile(valuesPath, []byte(values), 0o600))
	return schemaPath, valuesPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	schemaPath, valuesPath := writeFiles(t, "numDays: 3\nstartDate: 2015-01-01\nendDate: 2015-02-01\n")

	out, err := execute(t, "validate", "--no-color", "--schema", schemaPath, "--values", valuesPath)
	require.NoError(t, err)
	assert.Contains(t, out, "booking: valid")
	assert.Contains(t, out, "  numDays")
}

func TestValidateCommandInvalid(t *testing.T) {
	// endDate is missing from the file and submitted empty
	schemaPath, valuesPath := writeFiles(t, "numDays: \"\"\nstartDate: 2015-01-01\n")

	out, err := execute(t, "validate", "--no-color", "-s", schemaPath, "-f", valuesPath)
	require.ErrorIs(t, err, errInvalidForm)
	assert.Contains(t, out, "✗ numDays: Field Number of days is required")
	assert.Contains(t, out, "! startEnd: The value of startDate cannot be greater than endDate")
	assert.Contains(t, out, "booking: invalid")
}

func TestValidateCommandLanguage(t *testing.T) {
	schemaPath, valuesPath := writeFiles(t, "numDays: 0\nstartDate: \"\"\nendDate: \"\"\n")

	out, err := execute(t, "validate", "--no-color", "-s", schemaPath, "-f", valuesPath, "--lang", "es")
	require.ErrorIs(t, err, errInvalidForm)
	assert.Contains(t, out, "✗ numDays: El campo numDays debe ser mayor que 1")
}

func TestValidateCommandErrors(t *testing.T) {
	schemaPath, valuesPath := writeFiles(t, "numDays: 1\n")

	_, err := execute(t, "validate", "--schema", schemaPath)
	require.Error(t, err)

	_, err = execute(t, "validate", "--schema", filepath.Join(t.TempDir(), "missing.yaml"), "--values", valuesPath)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errInvalidForm)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FORMVAL_INTERVAL_POLICY=sometimes\n"), 0o600))
	_, err = execute(t, "validate", "--env-file", envFile, "-s", schemaPath, "-f", valuesPath)
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "formcheck "+Version)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchCommand(t *testing.T) {
	schemaPath, valuesPath := writeFiles(t, "numDays: 0\nstartDate: \"\"\nendDate: \"\"\n")

	var out syncBuffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"watch", "--no-color", "-s", schemaPath, "-f", valuesPath})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "booking: invalid")
	}, 5*time.Second, 20*time.Millisecond)

	// the watcher is registered right after the first pass
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(valuesPath, []byte("numDays: 4\nstartDate: \"\"\nendDate: \"\"\n"), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "booking: valid")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := form.DefaultConfig()
	cfg.LogFormat = "json"
	var buf bytes.Buffer
	log, err := newLogger(cfg, &buf)
	require.NoError(t, err)
	assert.Same(t, log, slog.Default())

	slog.Info("started")
	assert.Contains(t, buf.String(), `"version":"`+Version+`"`)
	assert.Contains(t, buf.String(), `"service":"formcheck"`)

	cfg.LogFormat = "xml"
	_, err = newLogger(cfg, &buf)
	require.Error(t, err)
}
