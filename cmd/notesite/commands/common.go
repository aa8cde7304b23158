// Package commands wires the notesite CLI commands to the build pipeline.
package commands

import (
	stderrors "errors"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/metrics"
	"github.com/RandomArtist22/MA104-Notes/internal/notes"
	"github.com/RandomArtist22/MA104-Notes/internal/site"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"notesite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Build the HTML site from tagged notes"`
	Discover DiscoverCmd `cmd:"" help:"List the notes a build would include without writing output"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	Preview  PreviewCmd  `cmd:"" help:"Serve the site locally and rebuild on changes"`
	Publish  PublishCmd  `cmd:"" help:"Publish the built site to GitHub Pages"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Exit maps the command error to an exit code and terminates the process.
func Exit(cli *CLI, err error) {
	siterr.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
}

// loadConfig loads and classifies configuration failures so the process exits
// with the configuration error code rather than the generic one.
func loadConfig(root *CLI) (*config.Config, error) {
	if _, err := os.Stat(root.Config); os.IsNotExist(err) {
		return nil, siterr.ConfigNotFound(root.Config)
	}

	cfg, err := config.Load(root.Config)
	if err != nil {
		var se *siterr.SiteError
		if stderrors.As(err, &se) {
			return nil, err
		}
		return nil, siterr.Wrap(err, siterr.CategoryConfig, siterr.SeverityFatal, "failed to load configuration").
			WithContext("path", root.Config)
	}
	return cfg, nil
}

// resolveOutputDir prefers an explicit CLI flag over the configured directory.
func resolveOutputDir(cliOutput string, cfg *config.Config) string {
	if cliOutput != "" {
		return cliOutput
	}
	return cfg.Output.Directory
}

// runBuild executes the full scan-manifest-generate pipeline once.
func runBuild(cfg *config.Config, outputDir string, recorder metrics.Recorder) (*site.BuildReport, error) {
	scanned, err := notes.NewScanner(cfg.Source.Directory, cfg.Source.Tag).Scan()
	if err != nil {
		return nil, err
	}

	manifest := notes.BuildManifest(scanned)
	generator := site.NewGenerator(cfg, outputDir).SetRecorder(recorder)
	return generator.Build(manifest)
}
