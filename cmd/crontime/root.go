package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// errNoMatch makes match exit non-zero without printing anything more.
	errNoMatch = errors.New("no match")
	// errInvalid makes validate exit non-zero after printing the rich error.
	errInvalid = errors.New("invalid expression")
)

// app carries what the subcommands share.
type app struct {
	cfg *viper.Viper
	now func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), now: time.Now}
	a.cfg.SetEnvPrefix("crontime")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "crontime",
		Short:         "Explain, validate and evaluate cron expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("log-level", "warn", "Log level for parse warnings (debug, info, warn, error)")
	_ = a.cfg.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		newExplainCmd(a),
		newMatchCmd(a),
		newValidateCmd(a),
	)
	return cmd
}

// logger writes console-encoded entries to w at the configured level.
func (a *app) logger(w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(a.cfg.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core), nil
}
