package main

import (
	"fmt"

	"github.com/prasrvenkat/crontime"
	"github.com/spf13/cobra"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain EXPR...",
		Short: "Print the normalized expression and the values each field accepts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			schedule := crontime.New(crontime.WithLogger(logger))
			input, err := schedule.Parse(args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, input)
			for _, field := range schedule.Fields() {
				fmt.Fprintln(out, field.Display())
			}
			return nil
		},
	}
}
