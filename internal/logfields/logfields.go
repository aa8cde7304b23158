// Package logfields defines canonical log field name constants to avoid drift
// across packages.
package logfields

import "log/slog"

const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyNote       = "note"
	KeyTitle      = "title"
	KeyCount      = "count"
	KeyOutput     = "output"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Note(n string) slog.Attr         { return slog.String(KeyNote, n) }
func Title(t string) slog.Attr        { return slog.String(KeyTitle, t) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Output(o string) slog.Attr       { return slog.String(KeyOutput, o) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
