// Formcheck validates a values file against a declarative form schema.
//
// Usage:
//
//	# Validate once, exit code 1 when the form is invalid
//	formcheck validate --schema booking.yaml --values submission.yaml
//
//	# Use the Spanish messages
//	formcheck validate --schema booking.yaml --values submission.yaml --lang es
//
//	# Re-validate whenever the values file changes
//	formcheck watch --schema booking.yaml --values submission.yaml
//
// Engine settings are read from FORMVAL_ prefixed environment variables and
// from the files given with --env-file.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidForm) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
