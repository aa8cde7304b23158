package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
	"github.com/RandomArtist22/MA104-Notes/internal/metrics"
	"github.com/RandomArtist22/MA104-Notes/internal/preview"
)

// PreviewCmd implements the 'preview' command: build once, serve the output
// directory, and rebuild whenever the notes change.
type PreviewCmd struct {
	Port   int    `short:"p" help:"Port to listen on (overrides config)"`
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if p.Port != 0 {
		cfg.Preview.Port = p.Port
	}
	outputDir := resolveOutputDir(p.Output, cfg)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var registry *prometheus.Registry
	if cfg.Preview.Metrics {
		registry = prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	// Initial build. A broken note set still gets a server so the author can
	// fix the source and trigger a rebuild by saving.
	if report, err := runBuild(cfg, outputDir, recorder); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	} else if report.Failed() {
		slog.Warn("Initial build completed with write failures", logfields.Count(len(report.WriteFailures)))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher := preview.NewWatcher(cfg.Source.Directory, func(_ context.Context) error {
		report, err := runBuild(cfg, outputDir, recorder)
		if err != nil {
			return err
		}
		if report.Failed() {
			slog.Warn("Rebuild completed with write failures", logfields.Count(len(report.WriteFailures)))
		}
		return nil
	})
	go func() {
		if err := watcher.Run(ctx); err != nil {
			slog.Error("Watcher stopped", logfields.Error(err))
			cancel()
		}
	}()

	server := preview.NewServer(&cfg.Preview, outputDir, registry)
	return server.Run(ctx)
}
