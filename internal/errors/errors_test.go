package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSiteError_ErrorString(t *testing.T) {
	err := New(CategoryTemplate, SeverityFatal, "template error")
	require.Equal(t, "template (fatal): template error", err.Error())

	wrapped := Wrap(errors.New("boom"), CategorySource, SeverityFatal, "source directory unavailable")
	require.Contains(t, wrapped.Error(), "boom")
	require.Contains(t, wrapped.Error(), "source")
}

func TestSiteError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, CategoryFileSystem, SeverityError, "write failed")
	require.ErrorIs(t, err, cause)
}

func TestIsCategory(t *testing.T) {
	err := SourceUnavailable("/missing", nil)
	require.True(t, IsCategory(err, CategorySource))
	require.False(t, IsCategory(err, CategoryTemplate))
	require.False(t, IsCategory(errors.New("plain"), CategorySource))
}

func TestGetCategory_PlainError(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
}

func TestExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	require.Equal(t, 0, adapter.ExitCodeFor(nil))
	require.Equal(t, 3, adapter.ExitCodeFor(SourceUnavailable("/missing", nil)))
	require.Equal(t, 4, adapter.ExitCodeFor(TemplateError(nil, "missing placeholder")))
	require.Equal(t, 11, adapter.ExitCodeFor(WriteFailed("/out/a.html", errors.New("denied"))))
	require.Equal(t, 7, adapter.ExitCodeFor(ConfigNotFound("notesite.yaml")))
	require.Equal(t, 1, adapter.ExitCodeFor(errors.New("plain")))
}

func TestFormatError_IncludesPath(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)
	msg := adapter.FormatError(SourceUnavailable("/vault/notes", nil))
	require.Contains(t, msg, "/vault/notes")
	require.Contains(t, msg, "source")
}
