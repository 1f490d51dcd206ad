package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/internal/config"
	"github.com/katalvlaran/routeopt/internal/logging"
	"github.com/katalvlaran/routeopt/metrics"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath  string
	envFile     string
	logLevel    string
	logFormat   string
	metric      string
	maxPasses   int
	metricsFile string
}

// app is what a subcommand needs after configuration is resolved.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	recorder *metrics.Recorder
	out      io.Writer
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:           "routeopt",
		Short:         "routeopt finds short closed routes through a set of stops",
		Long:          `routeopt reads decimal-degree coordinates (or an integer cost matrix), builds a tour with a Christofides-style construction refined by 2-opt, and reports it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "YAML configuration file (default $"+config.EnvConfig+")")
	pf.StringVar(&gf.envFile, "env-file", "", "dotenv file loaded before the environment is read (default .env if present)")
	pf.StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&gf.logFormat, "log-format", "", "log format: auto, text, json")
	pf.StringVar(&gf.metric, "metric", "", "distance metric: rhumbline, haversine")
	pf.IntVar(&gf.maxPasses, "max-passes", 0, "upper bound on 2-opt passes (0 = until no improvement)")
	pf.StringVar(&gf.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")

	load := func(cmd *cobra.Command) (*app, error) {
		return gf.resolve(cmd, stdout, stderr)
	}
	root.AddCommand(newSolveCmd(load), newMatrixCmd(load), newVersionCmd())

	return root
}

// resolve layers flags that were set explicitly over the loaded configuration
// and builds the logger and metrics recorder.
func (gf *globalFlags) resolve(cmd *cobra.Command, stdout, stderr io.Writer) (*app, error) {
	if err := config.LoadEnvFile(gf.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = gf.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = gf.logFormat
	}
	if flags.Changed("metric") {
		cfg.Distance.Metric = gf.metric
	}
	if flags.Changed("max-passes") {
		cfg.Solver.MaxPasses = gf.maxPasses
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = gf.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	var recOpts []metrics.Option
	if cfg.Metrics.Runtime {
		recOpts = append(recOpts, metrics.WithRuntimeCollectors())
	}

	return &app{
		cfg:      cfg,
		log:      log,
		recorder: metrics.New(recOpts...),
		out:      stdout,
	}, nil
}

// flushMetrics writes the metrics textfile when one is configured.
func (a *app) flushMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := a.recorder.WriteTextfile(a.cfg.Metrics.File); err != nil {
		return err
	}
	a.log.Debug("metrics written", "path", a.cfg.Metrics.File)

	return nil
}
