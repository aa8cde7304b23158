// Package config loads and validates the notesite YAML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Site    SiteConfig    `yaml:"site"`
	Output  OutputConfig  `yaml:"output"`
	Publish PublishConfig `yaml:"publish"`
	Preview PreviewConfig `yaml:"preview"`
}

// SourceConfig selects which files enter a build.
type SourceConfig struct {
	Directory string `yaml:"directory"`
	Tag       string `yaml:"tag"` // literal tag marker, e.g. "#MA104"
}

// SiteConfig controls page rendering.
type SiteConfig struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description,omitempty"`
	BaseURL          string `yaml:"base_url,omitempty"`
	TitlePrefixStrip string `yaml:"title_prefix_strip,omitempty"` // prefix removed from nav titles
	TemplatePath     string `yaml:"template_path,omitempty"`      // empty = embedded default
	StylesheetPath   string `yaml:"stylesheet_path,omitempty"`    // empty = embedded theme
	Math             bool   `yaml:"math"`                         // load client-side math rendering
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// PublishMode enumerates supported publish strategies (stringly for YAML compatibility).
type PublishMode string

const (
	PublishModeDocs   PublishMode = "docs"   // copy output into a docs/ folder
	PublishModeBranch PublishMode = "branch" // force-push output to a hosting branch
)

// PublishConfig controls the publish command.
type PublishConfig struct {
	Mode          PublishMode `yaml:"mode,omitempty"`
	DocsDirectory string      `yaml:"docs_directory,omitempty"`
	Branch        string      `yaml:"branch,omitempty"`
	Remote        string      `yaml:"remote,omitempty"`
	Push          bool        `yaml:"push"`
	Auth          *AuthConfig `yaml:"auth,omitempty"`
}

// AuthType enumerates supported authentication methods.
type AuthType string

const (
	AuthTypeNone  AuthType = "none"
	AuthTypeSSH   AuthType = "ssh"
	AuthTypeToken AuthType = "token"
	AuthTypeBasic AuthType = "basic"
)

// AuthConfig represents authentication configuration for pushing.
type AuthConfig struct {
	Type     AuthType `yaml:"type"` // ssh|token|basic|none
	Username string   `yaml:"username,omitempty"`
	Password string   `yaml:"password,omitempty"`
	Token    string   `yaml:"token,omitempty"`
	KeyPath  string   `yaml:"key_path,omitempty"`
}

// IsZero reports whether no auth method specified.
func (a *AuthConfig) IsZero() bool { return a == nil || a.Type == "" || a.Type == AuthTypeNone }

// PreviewConfig controls the preview server.
type PreviewConfig struct {
	Port    int  `yaml:"port,omitempty"`
	Metrics bool `yaml:"metrics"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just note it
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills in zero values with sensible defaults.
func (c *Config) applyDefaults() {
	if c.Source.Directory == "" {
		c.Source.Directory = "./notes"
	}
	if c.Source.Tag == "" {
		c.Source.Tag = "#MA104"
	}
	if c.Site.Title == "" {
		c.Site.Title = "Lecture Notes"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./dist"
	}
	if c.Publish.Mode == "" {
		c.Publish.Mode = PublishModeDocs
	}
	if c.Publish.DocsDirectory == "" {
		c.Publish.DocsDirectory = "./docs"
	}
	if c.Publish.Branch == "" {
		c.Publish.Branch = "gh-pages"
	}
	if c.Publish.Remote == "" {
		c.Publish.Remote = "origin"
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = 8080
	}
}

// loadEnvFile loads a .env file from the current directory when present.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
