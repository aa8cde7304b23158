package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/metrics"
	"github.com/RandomArtist22/MA104-Notes/internal/publish"
)

// PublishCmd implements the 'publish' command.
type PublishCmd struct {
	Mode      string `help:"Publish mode: docs or branch (prompts when omitted)" enum:"docs,branch," default:""`
	Push      bool   `help:"Push the docs commit to the configured remote"`
	SkipBuild bool   `help:"Publish the existing output directory without rebuilding"`
	RepoRoot  string `help:"Repository working tree to publish from" default:"."`
}

func (p *PublishCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	mode, err := p.resolveMode(cfg)
	if err != nil {
		return err
	}
	if p.Push {
		cfg.Publish.Push = true
	}

	if !p.SkipBuild {
		report, err := runBuild(cfg, cfg.Output.Directory, metrics.NoopRecorder{})
		if err != nil {
			return err
		}
		if report.Failed() {
			return siterr.New(siterr.CategoryFileSystem, siterr.SeverityError,
				fmt.Sprintf("%d pages failed to write, not publishing a partial site", len(report.WriteFailures)))
		}
	}

	publisher := publish.NewPublisher(&cfg.Publish, p.RepoRoot)

	switch mode {
	case config.PublishModeDocs:
		if err := publish.ToDocsFolder(cfg.Output.Directory, cfg.Publish.DocsDirectory); err != nil {
			return err
		}
		if err := publisher.CommitDocs(cfg.Publish.DocsDirectory); err != nil {
			return err
		}
		fmt.Printf("Published to %s\n", cfg.Publish.DocsDirectory)
	case config.PublishModeBranch:
		if err := publisher.PushBranch(cfg.Output.Directory); err != nil {
			return err
		}
		fmt.Printf("Published to branch %s on %s\n", cfg.Publish.Branch, cfg.Publish.Remote)
	default:
		return siterr.ValidationFailed("publish.mode", "must be 'docs' or 'branch'")
	}
	return nil
}

// resolveMode picks the publish mode: the CLI flag wins, otherwise the user
// is prompted with the configured mode as default. A non-interactive stdin
// falls through to the configured mode so scripted runs never hang.
func (p *PublishCmd) resolveMode(cfg *config.Config) (config.PublishMode, error) {
	if p.Mode != "" {
		return config.PublishMode(p.Mode), nil
	}
	return promptMode(os.Stdin, cfg.Publish.Branch, cfg.Publish.Mode)
}

func promptMode(in *os.File, branch string, fallback config.PublishMode) (config.PublishMode, error) {
	fmt.Printf("Publish mode: [1] docs folder  [2] %s branch (default: %s): ", branch, fallback)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		// EOF: no terminal attached, use the configured default.
		return fallback, nil
	}

	switch strings.TrimSpace(line) {
	case "", string(fallback):
		return fallback, nil
	case "1", "docs":
		return config.PublishModeDocs, nil
	case "2", "branch":
		return config.PublishModeBranch, nil
	default:
		return "", siterr.ValidationFailed("publish.mode", "choose 1 (docs) or 2 (branch)")
	}
}
