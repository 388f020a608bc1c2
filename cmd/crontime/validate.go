package main

import (
	"errors"
	"fmt"

	"github.com/prasrvenkat/crontime"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate EXPR...",
		Short: "Check that an expression parses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			input, err := crontime.New(crontime.WithLogger(logger)).Parse(args...)
			if err != nil {
				var cronErr *crontime.Error
				if errors.As(err, &cronErr) {
					fmt.Fprintln(cmd.ErrOrStderr(), cronErr.DisplayRich())
					return errInvalid
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", input)
			return nil
		},
	}
}
