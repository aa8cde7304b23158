package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
)

// writeTestConfig writes a minimal configuration pointing at absolute
// directories under base and returns its path.
func writeTestConfig(t *testing.T, base string) string {
	t.Helper()
	cfgPath := filepath.Join(base, "notesite.yaml")
	content := fmt.Sprintf(`source:
  directory: %s
  tag: "#MA104"
site:
  title: "MA104 Notes"
  math: true
output:
  directory: %s
  clean: true
`, filepath.Join(base, "notes"), filepath.Join(base, "dist"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "notes"), 0o755))
	return cfgPath
}

func TestBuildCmd_EndToEnd(t *testing.T) {
	base := t.TempDir()
	cfgPath := writeTestConfig(t, base)

	notesDir := filepath.Join(base, "notes")
	require.NoError(t, os.WriteFile(filepath.Join(notesDir, "Course Overview.md"),
		[]byte("# Course Overview\n\nTags: #MA104\n\nSee [[Lecture 1]].\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(notesDir, "Lecture 1.md"),
		[]byte("# Lecture 1\n\nTags: #MA104\n\nSolve $y' = ky$.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(notesDir, "Shopping.md"),
		[]byte("# Shopping\n\nmilk, eggs\n"), 0o644))

	root := &CLI{Config: cfgPath}
	cmd := &BuildCmd{}
	require.NoError(t, cmd.Run(&Global{}, root))

	dist := filepath.Join(base, "dist")
	for _, name := range []string{"index.html", "lecture-1.html", "style.css"} {
		_, err := os.Stat(filepath.Join(dist, name))
		require.NoError(t, err, name)
	}

	// The untagged note is excluded.
	_, err := os.Stat(filepath.Join(dist, "shopping.html"))
	require.True(t, os.IsNotExist(err))

	index, err := os.ReadFile(filepath.Join(dist, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), `href="lecture-1.html"`)
}

func TestDiscoverCmd_DryRunWritesNothing(t *testing.T) {
	base := t.TempDir()
	cfgPath := writeTestConfig(t, base)
	require.NoError(t, os.WriteFile(filepath.Join(base, "notes", "Lecture 1.md"),
		[]byte("# Lecture 1\n\nTags: #MA104\n"), 0o644))

	root := &CLI{Config: cfgPath}
	require.NoError(t, (&DiscoverCmd{}).Run(&Global{}, root))

	_, err := os.Stat(filepath.Join(base, "dist"))
	require.True(t, os.IsNotExist(err))
}

func TestInitCmd_RefusesOverwriteWithoutForce(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "notesite.yaml")
	root := &CLI{Config: cfgPath}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	_, err := os.Stat(cfgPath)
	require.NoError(t, err)

	err = (&InitCmd{}).Run(&Global{}, root)
	require.Error(t, err)
	require.True(t, siterr.IsCategory(err, siterr.CategoryConfig))

	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "absent.yaml")}
	_, err := loadConfig(root)
	require.Error(t, err)
	require.True(t, siterr.IsCategory(err, siterr.CategoryConfig))
}

func TestPromptMode(t *testing.T) {
	feed := func(input string) *os.File {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		_, err = w.WriteString(input)
		require.NoError(t, err)
		w.Close()
		return r
	}

	mode, err := promptMode(feed("2\n"), "gh-pages", config.PublishModeDocs)
	require.NoError(t, err)
	require.Equal(t, config.PublishModeBranch, mode)

	mode, err = promptMode(feed("\n"), "gh-pages", config.PublishModeDocs)
	require.NoError(t, err)
	require.Equal(t, config.PublishModeDocs, mode)

	// Closed stdin (scripted run) falls back to the configured mode.
	mode, err = promptMode(feed(""), "gh-pages", config.PublishModeBranch)
	require.NoError(t, err)
	require.Equal(t, config.PublishModeBranch, mode)

	_, err = promptMode(feed("nope\n"), "gh-pages", config.PublishModeDocs)
	require.Error(t, err)
	require.True(t, siterr.IsCategory(err, siterr.CategoryValidation))
}
