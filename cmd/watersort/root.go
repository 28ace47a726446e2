package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/comalice/watersort/internal/config"
	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/logging"
	"github.com/comalice/watersort/internal/presets"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/internal/production"
	"github.com/comalice/watersort/internal/telemetry"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds what every subcommand shares once flags are parsed.
type app struct {
	stdout, stderr io.Writer
	configFile     string

	cfg       config.Config
	logger    *slog.Logger
	publisher core.EventPublisher
	shutdown  telemetry.ShutdownFunc
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "watersort",
		Short:         "Find shortest solutions to water sort puzzles",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (YAML)")
	pf.Int("max-iterations", core.DefaultMaxIterations, "maximum states to expand before giving up")
	pf.Int("progress-interval", core.DefaultProgressInterval, "publish a progress event every N expansions (0 disables)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.Bool("log-json", false, "log as JSON")
	pf.String("trace-exporter", "none", "trace exporter: none, stdout, otlp")
	pf.String("otlp-endpoint", "", "OTLP/gRPC collector endpoint (host:port)")
	pf.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.String("color", "auto", "color output: auto, always, never")

	root.AddCommand(
		newSolveCmd(a),
		newValidateCmd(a),
		newRenderCmd(a),
		newPresetsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.LoggingConfig()
	lc.Output = a.stderr
	a.logger = logging.New(lc)
	a.publisher = production.NewLogPublisher(a.logger)

	shutdown, err := telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceVersion: version,
		TraceExporter:  cfg.Telemetry.TraceExporter,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Output:         a.stderr,
	})
	if err != nil {
		return err
	}
	a.shutdown = shutdown
	return nil
}

// close flushes traces and writes the metrics file. It runs after every
// command, including failed ones.
func (a *app) close(ctx context.Context) error {
	var errs []error
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("telemetry shutdown: %w", err))
		}
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if path := a.cfg.Telemetry.MetricsFile; path != "" {
		if err := telemetry.WriteMetrics(path, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) renderer(p primitives.Puzzle) *production.TerminalRenderer {
	mode, _ := production.ParseColorMode(a.cfg.Output.Color)
	return production.NewTerminalRenderer(a.stdout, p.Palette, mode)
}

// loadPuzzle reads FILE when given, else the named preset, else the
// default preset.
func loadPuzzle(args []string, preset string) (primitives.Puzzle, error) {
	switch {
	case len(args) > 0 && preset != "":
		return primitives.Puzzle{}, errors.New("give either FILE or --preset, not both")
	case len(args) > 0:
		return production.LoadPuzzleFile(args[0])
	case preset != "":
		return presets.Load(preset)
	default:
		return presets.Load(presets.Default)
	}
}
