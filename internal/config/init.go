package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# notesite configuration
source:
  # Directory scanned for markdown notes.
  directory: ./notes
  # Only files containing this tag are included in the build.
  tag: "#MA104"

site:
  title: "MA104 Notes"
  description: "Ordinary Differential Equations lecture notes"
  # Prefix stripped from titles in the sidebar and prev/next links.
  title_prefix_strip: ""
  # Leave empty to use the embedded template and Kanagawa stylesheet.
  template_path: ""
  stylesheet_path: ""
  # Keep $...$ and $$...$$ spans intact for client-side MathJax rendering.
  math: true

output:
  directory: ./dist
  clean: false

publish:
  # docs: copy the built site into docs_directory (GitHub Pages /docs convention)
  # branch: force-push the built site to the hosting branch below
  mode: docs
  docs_directory: ./docs
  branch: gh-pages
  remote: origin
  push: false
  # auth:
  #   type: token
  #   token: ${GIT_TOKEN}

preview:
  port: 8080
  metrics: true
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
