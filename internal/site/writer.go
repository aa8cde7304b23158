package site

import (
	"log/slog"
	"os"
	"path/filepath"

	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
)

// prepareOutputDir ensures the output directory exists, optionally removing
// a previous build first. Failure here is fatal: no pages can be written.
func prepareOutputDir(dir string, clean bool) error {
	if clean {
		if err := os.RemoveAll(dir); err != nil {
			return siterr.OutputDirError(dir, err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return siterr.OutputDirError(dir, err)
	}
	return nil
}

// writePage writes one finished page as a whole file, overwriting any
// existing file at that path. Writes are never streamed, so a failed write
// never leaves a half-written page behind an old complete one.
func writePage(dir, name string, content []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return siterr.WriteFailed(path, err)
	}
	slog.Debug("Wrote page", logfields.File(name))
	return nil
}
