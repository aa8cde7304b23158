package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Build pipeline errors

// SourceUnavailable reports a missing or unreadable source root. The whole
// build aborts before any output is written.
func SourceUnavailable(path string, cause error) *SiteError {
	return Wrap(cause, CategorySource, SeverityFatal, "source directory unavailable").
		WithContext("path", path)
}

// TemplateError reports an unparseable template or a missing placeholder.
func TemplateError(cause error, detail string) *SiteError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template error").
		WithContext("detail", detail)
}

// WriteFailed reports a single failed page write. Non-fatal per file; the
// writer aggregates these and the run exits non-zero if any occurred.
func WriteFailed(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "failed to write output file").
		WithContext("path", path)
}

func OutputDirError(path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to create output directory").
		WithContext("path", path)
}

// Publish errors

func PublishFailed(mode string, cause error) *SiteError {
	return Wrap(cause, CategoryPublish, SeverityFatal, "publish failed").
		WithContext("mode", mode)
}

func GitAuthError(cause error) *SiteError {
	return Wrap(cause, CategoryPublish, SeverityFatal, "git authentication failed")
}
