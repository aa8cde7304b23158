// Package notes discovers tagged markdown notes and derives the ordered
// build manifest from them.
package notes

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
)

// Note represents one discovered source note.
type Note struct {
	Path       string // Absolute path to the file
	Name       string // File name without extension (wiki-link target key)
	Title      string // Extracted from first H1, falling back to the file name
	Content    []byte // Raw markdown
	OutputFile string // Derived output file name (set by BuildManifest)
	HTML       string // Transformed body fragment (set during generation)
}

// Scanner walks a source directory for notes carrying a tag.
type Scanner struct {
	dir string
	tag string
}

// NewScanner creates a scanner for the given source directory and tag marker.
func NewScanner(dir, tag string) *Scanner {
	return &Scanner{dir: dir, tag: tag}
}

// Scan walks the source directory and returns every markdown file whose tag
// set contains the configured tag. Scanning is read-only and idempotent.
// A missing or unreadable root is fatal; unreadable individual files are
// logged and skipped.
func (s *Scanner) Scan() ([]Note, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return nil, siterr.SourceUnavailable(s.dir, err)
	}
	if !info.IsDir() {
		return nil, siterr.SourceUnavailable(s.dir, nil).WithContext("reason", "not a directory")
	}

	var found []Note
	err = filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories (e.g. .obsidian, .git)
			if path != s.dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			slog.Warn("Could not read note, skipping", logfields.Path(path), logfields.Error(readErr))
			return nil
		}
		if !HasTag(content, s.tag) {
			return nil
		}

		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		note := Note{
			Path:    path,
			Name:    name,
			Title:   ExtractTitle(content, d.Name()),
			Content: content,
		}
		found = append(found, note)

		slog.Debug("Discovered note", logfields.File(d.Name()), logfields.Title(note.Title))
		return nil
	})
	if err != nil {
		return nil, siterr.SourceUnavailable(s.dir, err)
	}

	// Walk order is already lexical per directory; sort by path anyway so the
	// pre-manifest order never depends on filesystem quirks.
	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })

	slog.Info("Source scan complete", logfields.Path(s.dir), logfields.Count(len(found)))
	return found, nil
}
