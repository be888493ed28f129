package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value. If false, the
	// template is mostly commented out.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var content []byte
	if opts.Full {
		content = []byte(fullTemplate)
	} else {
		content = []byte(minimalTemplate)
	}

	if opts.Format == "json" {
		return templateToJSON(content)
	}
	return content, nil
}

const minimalTemplate = `# mdparsec configuration
# See: https://github.com/yaklabco/mdparsec

# Output format of check and compare: text, table, json, diff or summary
# format: text

# Colour output: auto, always or never
# color: auto

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns, ** matches across directories)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Fail check when part of a file could only be kept as residue
# strict: false

# Reference parser flavor for compare: commonmark or gfm
compare:
  flavor: gfm

# Rewrites applied by fmt
fmt:
  # bullet: "-"
  heading_space: true
  final_newline: true
`

const fullTemplate = `# mdparsec configuration - Full Template
# See: https://github.com/yaklabco/mdparsec
#
# This template lists every setting with its default value.

# Output format of check and compare: text, table, json, diff or summary
format: text

# Colour output: auto, always or never
color: auto

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# File patterns to ignore (glob patterns, ** matches across directories)
ignore:
  - "vendor/**"
  - "node_modules/**"

# File extensions treated as Markdown
extensions:
  - .md
  - .markdown

# Guess the language of code blocks without an info string
detect_languages: false

# Fail check when part of a file could only be kept as residue
strict: false

# Reference parser flavor for compare: commonmark or gfm
compare:
  flavor: gfm

# Rewrites applied by fmt
fmt:
  # Marker for unordered list items: "-", "*" or "+" (empty keeps them)
  bullet: ""
  # Insert the space missing in headings like "#Title"
  heading_space: true
  # End every file with exactly one newline
  final_newline: true
  backups:
    enabled: false
    suffix: .orig

# Log level: debug, info, warn or error
log_level: warn
`

// templateToJSON converts a YAML template to JSON format. Comments are lost.
func templateToJSON(yamlContent []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(yamlContent, &doc); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdparsec configuration
# See: https://github.com/yaklabco/mdparsec`
}
