package commands

import (
	"fmt"

	"github.com/RandomArtist22/MA104-Notes/internal/notes"
)

// DiscoverCmd implements the 'discover' command: a dry run of the scan and
// manifest passes, printing what a build would produce.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	scanned, err := notes.NewScanner(cfg.Source.Directory, cfg.Source.Tag).Scan()
	if err != nil {
		return err
	}
	manifest := notes.BuildManifest(scanned)

	hash, err := notes.ComputeManifestHash(manifest)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d notes tagged %s in %s\n", manifest.Len(), cfg.Source.Tag, cfg.Source.Directory)
	for _, n := range manifest.Notes {
		fmt.Printf("  %-30s -> %s  (%s)\n", n.Name, n.OutputFile, n.Title)
	}
	fmt.Printf("Manifest hash: %s\n", hash)
	return nil
}
