package publish

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
)

// Publisher performs git operations for the publish command. repoRoot is the
// working tree of the repository holding the notes project.
type Publisher struct {
	cfg      *config.PublishConfig
	repoRoot string
}

// NewPublisher creates a publisher operating on the repository at repoRoot.
func NewPublisher(cfg *config.PublishConfig, repoRoot string) *Publisher {
	return &Publisher{cfg: cfg, repoRoot: repoRoot}
}

// CommitDocs stages docsDir in the enclosing repository and commits it. When
// push is enabled the default branch is pushed to the configured remote. A
// docs tree identical to the last commit is a no-op, not an error.
func (p *Publisher) CommitDocs(docsDir string) error {
	repo, err := git.PlainOpen(p.repoRoot)
	if err != nil {
		return siterr.PublishFailed("docs", fmt.Errorf("open repository %s: %w", p.repoRoot, err))
	}
	wt, err := repo.Worktree()
	if err != nil {
		return siterr.PublishFailed("docs", err)
	}

	rel, err := p.relToRoot(docsDir)
	if err != nil {
		return siterr.PublishFailed("docs", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{Path: rel}); err != nil {
		return siterr.PublishFailed("docs", fmt.Errorf("stage %s: %w", rel, err))
	}

	hash, err := wt.Commit("Publish site to docs folder", &git.CommitOptions{Author: p.signature()})
	if err != nil {
		if errors.Is(err, git.ErrEmptyCommit) {
			slog.Info("Docs folder unchanged, nothing to commit")
			return nil
		}
		return siterr.PublishFailed("docs", err)
	}
	slog.Info("Docs folder committed", slog.String("commit", hash.String()[:8]))

	if !p.cfg.Push {
		return nil
	}
	auth, err := createAuth(p.cfg.Auth)
	if err != nil {
		return err
	}
	err = repo.Push(&git.PushOptions{RemoteName: p.cfg.Remote, Auth: auth})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		err = nil
	}
	if err != nil {
		return siterr.PublishFailed("docs", fmt.Errorf("push to %s: %w", p.cfg.Remote, err))
	}
	slog.Info("Pushed to remote", slog.String("remote", p.cfg.Remote))
	return nil
}

// PushBranch commits outputDir as a standalone history and force-pushes it to
// the hosting branch of the enclosing repository's remote. The hosting branch
// history is disposable, so every publish overwrites it.
func (p *Publisher) PushBranch(outputDir string) error {
	remoteURL, err := p.remoteURL()
	if err != nil {
		return err
	}

	dist, err := openOrInit(outputDir)
	if err != nil {
		return siterr.PublishFailed("branch", err)
	}
	wt, err := dist.Worktree()
	if err != nil {
		return siterr.PublishFailed("branch", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return siterr.PublishFailed("branch", err)
	}

	_, err = wt.Commit("Publish site", &git.CommitOptions{Author: p.signature()})
	if err != nil && !errors.Is(err, git.ErrEmptyCommit) {
		return siterr.PublishFailed("branch", err)
	}

	head, err := dist.Head()
	if err != nil {
		return siterr.PublishFailed("branch", err)
	}

	auth, err := createAuth(p.cfg.Auth)
	if err != nil {
		return err
	}
	refSpec := gitcfg.RefSpec(fmt.Sprintf("+%s:refs/heads/%s", head.Name(), p.cfg.Branch))
	err = dist.Push(&git.PushOptions{
		RemoteName: p.cfg.Remote,
		RemoteURL:  remoteURL,
		RefSpecs:   []gitcfg.RefSpec{refSpec},
		Auth:       auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		err = nil
	}
	if err != nil {
		return siterr.PublishFailed("branch", fmt.Errorf("push %s: %w", refSpec, err))
	}
	slog.Info("Site pushed to hosting branch",
		slog.String("branch", p.cfg.Branch),
		slog.String("remote", p.cfg.Remote),
		logfields.Output(outputDir))
	return nil
}

// remoteURL resolves the configured remote of the enclosing repository.
func (p *Publisher) remoteURL() (string, error) {
	repo, err := git.PlainOpen(p.repoRoot)
	if err != nil {
		return "", siterr.PublishFailed("branch", fmt.Errorf("open repository %s: %w", p.repoRoot, err))
	}
	remote, err := repo.Remote(p.cfg.Remote)
	if err != nil {
		return "", siterr.PublishFailed("branch", fmt.Errorf("remote %q not configured: %w", p.cfg.Remote, err))
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", siterr.PublishFailed("branch", fmt.Errorf("remote %q has no URL", p.cfg.Remote))
	}
	return urls[0], nil
}

// relToRoot turns a possibly relative directory into a path relative to the
// repository root, as the git index requires.
func (p *Publisher) relToRoot(dir string) (string, error) {
	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// signature is used when the local git config carries no identity.
func (p *Publisher) signature() *object.Signature {
	return &object.Signature{Name: "notesite", Email: "notesite@localhost", When: time.Now()}
}

// openOrInit opens the repository at dir, initializing one on first publish.
func openOrInit(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpen(dir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, err
	}
	return git.PlainInit(dir, false)
}
