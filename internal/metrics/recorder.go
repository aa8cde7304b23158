// Package metrics defines observability hooks for build runs.
package metrics

import "time"

// Recorder defines observability hooks for build metrics. Implementations
// may forward to Prometheus; the NoopRecorder is used when metrics are not
// configured so injection stays optional.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // outcome: success|failed
	AddPagesRendered(n int)
	AddWriteFailures(n int)
	SetNotesDiscovered(n int)
}

// Build outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(string)             {}
func (NoopRecorder) AddPagesRendered(int)               {}
func (NoopRecorder) AddWriteFailures(int)               {}
func (NoopRecorder) SetNotesDiscovered(int)             {}
