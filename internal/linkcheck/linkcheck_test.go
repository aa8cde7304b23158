package linkcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestVerifyDir_AllResolved(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", `<html><body><a href="b.html">B</a><link href="style.css"></body></html>`)
	writeFile(t, dir, "b.html", `<html><body><a href="a.html#top">A</a></body></html>`)
	writeFile(t, dir, "style.css", "body{}")

	broken, err := VerifyDir(dir)
	require.NoError(t, err)
	require.Empty(t, broken)
}

func TestVerifyDir_ReportsMissingTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", `<html><body><a href="ghost.html">Ghost</a><img src="missing.png"></body></html>`)

	broken, err := VerifyDir(dir)
	require.NoError(t, err)
	require.Len(t, broken, 2)
	require.Equal(t, "a.html", broken[0].Page)
}

func TestVerifyDir_IgnoresExternalAndFragments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", `<html><body>
		<a href="https://example.com/x">ext</a>
		<a href="#section">frag</a>
		<a href="/absolute/path">abs</a>
		<a href="mailto:someone@example.com">mail</a>
		<script src="data:text/javascript,1"></script>
	</body></html>`)

	broken, err := VerifyDir(dir)
	require.NoError(t, err)
	require.Empty(t, broken)
}

func TestVerifyDir_MissingDir(t *testing.T) {
	_, err := VerifyDir(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
