package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vnykmshr/crontab/internal/config"
	"github.com/vnykmshr/crontab/internal/logx"
	"github.com/vnykmshr/crontab/pkg/instrument"
	"github.com/vnykmshr/crontab/pkg/metrics"
)

// app carries state shared by subcommands once flags and config are loaded.
type app struct {
	configPath string
	logLevel   string
	output     string

	cfg    config.Config
	log    logx.Logger
	parser *instrument.Parser

	// gatherer is set when metrics are enabled; --metrics dumps it on exit.
	gatherer    prometheus.Gatherer
	dumpMetrics bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logx.Nop()}

	cmd := &cobra.Command{
		Use:           "crontab",
		Short:         "Parse and inspect five-field crontab schedules",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.dumpMetrics && a.gatherer != nil {
				return writeMetrics(cmd.OutOrStdout(), a.gatherer)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVarP(&a.output, "output", "o", "text", "output format (text, json, yaml)")
	flags.BoolVar(&a.dumpMetrics, "metrics", false, "print collected metrics after the command")

	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newNextCmd(a))
	cmd.AddCommand(newStoreCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.dumpMetrics {
		cfg.Metrics.Enabled = true
	}
	a.cfg = cfg
	a.log = logx.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format).
		With(logx.String("command", cmd.CommandPath()))

	switch a.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	a.parser = instrument.New("cli")
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		a.gatherer = reg
		if err := a.parser.EnableMetrics(metrics.Config{
			Enabled:   true,
			Registry:  reg,
			Namespace: cfg.Metrics.Namespace,
		}); err != nil {
			return err
		}
	}

	a.log.Debug("configuration loaded",
		logx.String("config", a.configPath),
		logx.String("output", a.output))
	return nil
}
