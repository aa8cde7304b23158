package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if se, ok := err.(*SiteError); ok {
		return a.exitCodeFromSiteError(se)
	}

	return 1
}

// exitCodeFromSiteError maps SiteError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromSiteError(err *SiteError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategorySource:
		return 3 // Source tree error
	case CategoryTemplate:
		return 4 // Template error
	case CategoryFileSystem:
		return 11 // Output write error
	case CategoryPublish:
		return 8 // External system error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if se, ok := err.(*SiteError); ok {
		return a.formatSiteError(se)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatSiteError formats a SiteError for display, appending the failing path
// when known so the user can identify the condition without verbose mode.
func (a *CLIErrorAdapter) formatSiteError(err *SiteError) string {
	if a.verbose {
		return err.Error()
	}

	msg := err.Message
	if path, ok := err.Context["path"].(string); ok && path != "" {
		msg = fmt.Sprintf("%s: %s", msg, path)
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return msg
	default:
		return fmt.Sprintf("%s: %s", err.Category, msg)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if se, ok := err.(*SiteError); ok {
		return se.Category == CategoryInternal || se.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if se, ok := err.(*SiteError); ok {
		level := a.slogLevelFromSeverity(se.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(se.Category)),
		}
		a.logger.LogAttrs(nil, level, se.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts SiteError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
