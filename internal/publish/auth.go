package publish

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/RandomArtist22/MA104-Notes/internal/config"
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
)

// createAuth maps the configured auth method to a go-git transport auth.
// Returns nil for no authentication (public remotes, ssh-agent defaults).
func createAuth(authCfg *config.AuthConfig) (transport.AuthMethod, error) {
	if authCfg.IsZero() {
		return nil, nil
	}

	switch authCfg.Type {
	case config.AuthTypeToken:
		if authCfg.Token == "" {
			return nil, siterr.GitAuthError(fmt.Errorf("token authentication requires a token"))
		}
		// Most Git hosting services use "token" as the username for token auth
		return &githttp.BasicAuth{Username: "token", Password: authCfg.Token}, nil

	case config.AuthTypeBasic:
		if authCfg.Username == "" || authCfg.Password == "" {
			return nil, siterr.GitAuthError(fmt.Errorf("basic authentication requires username and password"))
		}
		return &githttp.BasicAuth{Username: authCfg.Username, Password: authCfg.Password}, nil

	case config.AuthTypeSSH:
		if authCfg.KeyPath == "" {
			return nil, siterr.GitAuthError(fmt.Errorf("ssh authentication requires key_path"))
		}
		keys, err := gitssh.NewPublicKeysFromFile("git", authCfg.KeyPath, authCfg.Password)
		if err != nil {
			return nil, siterr.GitAuthError(err)
		}
		return keys, nil

	default:
		return nil, siterr.GitAuthError(fmt.Errorf("unsupported auth type: %s", authCfg.Type))
	}
}
