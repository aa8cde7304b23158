package site

import (
	"time"

	"github.com/google/uuid"

	"github.com/RandomArtist22/MA104-Notes/internal/linkcheck"
)

// WriteFailure records one page that could not be written.
type WriteFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// BuildReport summarizes one build run.
type BuildReport struct {
	BuildID       string                 `json:"build_id"`
	ManifestHash  string                 `json:"manifest_hash"`
	Notes         int                    `json:"notes"`
	RenderedPages int                    `json:"rendered_pages"`
	WrittenPages  int                    `json:"written_pages"`
	WriteFailures []WriteFailure         `json:"write_failures,omitempty"`
	BrokenLinks   []linkcheck.BrokenLink `json:"broken_links,omitempty"`
	Duration      time.Duration          `json:"duration"`
}

func newBuildReport(notes int) *BuildReport {
	return &BuildReport{
		BuildID: uuid.NewString(),
		Notes:   notes,
	}
}

// Failed reports whether any per-file write failed. The build as a whole
// still runs to completion, but the process must exit non-zero.
func (r *BuildReport) Failed() bool { return len(r.WriteFailures) > 0 }
