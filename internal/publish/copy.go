// Package publish ships a built site to GitHub Pages, either by copying it
// into a docs/ folder on the default branch or by force-pushing it to a
// dedicated hosting branch.
package publish

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
)

// nojekyllName disables Jekyll processing on GitHub Pages so files and
// directories starting with underscores are served as-is.
const nojekyllName = ".nojekyll"

// ToDocsFolder replaces docsDir with a copy of outputDir and drops a
// .nojekyll marker. The previous docs content is removed first so deleted
// pages do not linger.
func ToDocsFolder(outputDir, docsDir string) error {
	if _, err := os.Stat(outputDir); err != nil {
		return siterr.PublishFailed("docs", err)
	}

	if err := os.RemoveAll(docsDir); err != nil {
		return siterr.PublishFailed("docs", err)
	}
	if err := CopyDir(outputDir, docsDir); err != nil {
		return siterr.PublishFailed("docs", err)
	}
	if err := os.WriteFile(filepath.Join(docsDir, nojekyllName), nil, 0o644); err != nil {
		return siterr.PublishFailed("docs", err)
	}

	// GitHub renders the repo README on the Pages settings screen; keep a
	// copy alongside the published site when the project has one.
	readme := filepath.Join(filepath.Dir(filepath.Clean(docsDir)), "README.md")
	if _, err := os.Stat(readme); err == nil {
		if err := copyFile(readme, filepath.Join(docsDir, "README.md")); err != nil {
			return siterr.PublishFailed("docs", err)
		}
	}

	slog.Info("Site copied to docs folder", logfields.Output(docsDir))
	return nil
}

// CopyDir recursively copies a directory tree, handling cross-device scenarios
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	// Preserve file permissions
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode())
}
