package config

import (
	siterr "github.com/RandomArtist22/MA104-Notes/internal/errors"
)

// Validate checks the loaded configuration for values the pipeline cannot
// recover from. Defaults are applied before validation, so only genuinely
// contradictory settings fail here.
func (c *Config) Validate() error {
	if c.Source.Tag == "" {
		return siterr.ValidationFailed("source.tag", "tag marker must not be empty")
	}
	if c.Source.Directory == "" {
		return siterr.ValidationFailed("source.directory", "source directory must not be empty")
	}
	if c.Output.Directory == "" {
		return siterr.ValidationFailed("output.directory", "output directory must not be empty")
	}
	switch c.Publish.Mode {
	case PublishModeDocs, PublishModeBranch:
	default:
		return siterr.ValidationFailed("publish.mode", "must be 'docs' or 'branch'")
	}
	if a := c.Publish.Auth; a != nil {
		switch a.Type {
		case "", AuthTypeNone, AuthTypeSSH, AuthTypeToken, AuthTypeBasic:
		default:
			return siterr.ValidationFailed("publish.auth.type", "must be one of none, ssh, token, basic")
		}
	}
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return siterr.ValidationFailed("preview.port", "must be a valid TCP port")
	}
	return nil
}
