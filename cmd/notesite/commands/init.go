package commands

import (
	"fmt"
	"log/slog"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	slog.Info("Initializing configuration", slog.String("path", root.Config), slog.Bool("force", i.Force))
	if err := config.Init(root.Config, i.Force); err != nil {
		return siterr.Wrap(err, siterr.CategoryConfig, siterr.SeverityFatal, "init failed").
			WithContext("path", root.Config)
	}
	fmt.Printf("Wrote %s\n", root.Config)
	return nil
}
