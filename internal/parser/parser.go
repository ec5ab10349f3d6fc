// Package parser extracts YAML frontmatter and body text from Markdown notes.
package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result holds the output of parsing a Markdown file.
type Result struct {
	Frontmatter map[string]interface{}
	Body        string
}

// Parse separates YAML frontmatter (between leading --- delimiters) from the
// Markdown body. If no frontmatter is found, or the YAML block is malformed,
// the entire content is returned as body with nil frontmatter.
func Parse(data []byte) *Result {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return &Result{Body: string(data)}
	}

	// Find end delimiter.
	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter — treat everything as body.
		return &Result{Body: string(data)}
	}

	yamlBlock := rest[:idx]
	// Body starts after the closing delimiter line.
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]interface{}
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil {
		// Invalid YAML — the whole file is body, no metadata.
		return &Result{Body: string(data)}
	}

	return &Result{Frontmatter: fm, Body: body}
}
