package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/prasrvenkat/crontime"
	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match EXPR...",
		Short: "Report whether a time matches an expression",
		Long: `Report whether a time matches an expression. The time is --at (RFC 3339,
default now) or --tuple, five comma-separated minute,hour,day,month,weekday
values. Exits 1 when the time does not match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			schedule := crontime.New(crontime.WithLogger(logger))
			if _, err := schedule.Parse(args...); err != nil {
				return err
			}

			point, err := a.point()
			if err != nil {
				return err
			}
			ok, err := schedule.Includes(point...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return errNoMatch
			}
			return nil
		},
	}
	cmd.Flags().String("at", "", "Time to test, RFC 3339 (default now)")
	cmd.Flags().String("tuple", "", "Values to test: minute,hour,day,month,weekday")
	cmd.MarkFlagsMutuallyExclusive("at", "tuple")
	_ = a.cfg.BindPFlag("at", cmd.Flags().Lookup("at"))
	_ = a.cfg.BindPFlag("tuple", cmd.Flags().Lookup("tuple"))
	return cmd
}

// point returns the query for Schedule.Includes from --tuple or --at.
func (a *app) point() ([]any, error) {
	if tuple := a.cfg.GetString("tuple"); tuple != "" {
		parts := strings.Split(tuple, ",")
		point := make([]any, len(parts))
		for i, part := range parts {
			point[i] = strings.TrimSpace(part)
		}
		return point, nil
	}

	at := a.cfg.GetString("at")
	if at == "" {
		return []any{a.now()}, nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("--at: %w", err)
	}
	return []any{t}, nil
}
