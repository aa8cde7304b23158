package commands

import (
	"fmt"

	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(b.Output, cfg)
	report, err := runBuild(cfg, outputDir, metrics.NoopRecorder{})
	if err != nil {
		return err
	}

	fmt.Printf("Built %d of %d pages into %s\n", report.WrittenPages, report.Notes, outputDir)
	for _, broken := range report.BrokenLinks {
		fmt.Printf("warning: broken link %s -> %s\n", broken.Page, broken.Href)
	}

	if report.Failed() {
		return siterr.New(siterr.CategoryFileSystem, siterr.SeverityError,
			fmt.Sprintf("%d pages failed to write", len(report.WriteFailures)))
	}
	return nil
}
