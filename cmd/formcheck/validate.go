package main

import (
	"github.com/spf13/cobra"
)

func newValidateCmd(g *globalFlags) *cobra.Command {
	var ff formFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a values file once",
		Long: `Validate a values file against a form schema and print the result.

The command exits with status 1 when the form is invalid.

Examples:
  formcheck validate --schema booking.yaml --values submission.yaml
  formcheck validate -s booking.yaml -f submission.json --lang es`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := newSession(ctx, g, &ff, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			report, err := s.run(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !report.Valid {
				return errInvalidForm
			}
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}
