package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notesite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "site:\n  title: My Notes\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "My Notes", cfg.Site.Title)
	require.Equal(t, "#MA104", cfg.Source.Tag)
	require.Equal(t, "./notes", cfg.Source.Directory)
	require.Equal(t, "./dist", cfg.Output.Directory)
	require.Equal(t, PublishModeDocs, cfg.Publish.Mode)
	require.Equal(t, "gh-pages", cfg.Publish.Branch)
	require.Equal(t, "origin", cfg.Publish.Remote)
	require.Equal(t, 8080, cfg.Preview.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("NOTES_DIR", "/tmp/vault")
	path := writeConfig(t, "source:\n  directory: ${NOTES_DIR}\n  tag: \"#MA104\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/vault", cfg.Source.Directory)
}

func TestLoad_InvalidPublishMode(t *testing.T) {
	path := writeConfig(t, "publish:\n  mode: ftp\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "validation")
}

func TestValidate_InvalidAuthType(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Publish.Auth = &AuthConfig{Type: "kerberos"}
	require.Error(t, cfg.Validate())
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notesite.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "MA104 Notes", cfg.Site.Title)
	require.True(t, cfg.Site.Math)

	// Refuses to overwrite without force.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}

func TestAuthConfig_IsZero(t *testing.T) {
	var a *AuthConfig
	require.True(t, a.IsZero())
	require.True(t, (&AuthConfig{}).IsZero())
	require.True(t, (&AuthConfig{Type: AuthTypeNone}).IsZero())
	require.False(t, (&AuthConfig{Type: AuthTypeToken, Token: "x"}).IsZero())
}
