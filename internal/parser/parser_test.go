package parser

import (
	"testing"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\ncategory: Work\ndate: 2024-06-01\n---\n# Hello\nBody text.\n")
	r := Parse(input)
	if r.Frontmatter == nil {
		t.Fatal("expected frontmatter")
	}
	if got := r.Frontmatter["title"]; got != "Hello" {
		t.Errorf("title = %v, want Hello", got)
	}
	if got := r.Frontmatter["category"]; got != "Work" {
		t.Errorf("category = %v, want Work", got)
	}
	if r.Body != "# Hello\nBody text.\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r := Parse(input)
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", r.Frontmatter)
	}
	if r.Body != string(input) {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	r := Parse(input)
	// Invalid YAML falls back to treating everything as body.
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter on invalid YAML")
	}
	if r.Body != string(input) {
		t.Errorf("body = %q, want full content", r.Body)
	}
}

func TestParse_UnclosedFrontmatter(t *testing.T) {
	input := []byte("---\ntitle: dangling\nno closing delimiter\n")
	r := Parse(input)
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", r.Frontmatter)
	}
	if r.Body != string(input) {
		t.Errorf("body = %q, want full content", r.Body)
	}
}

func TestParse_DateStaysString(t *testing.T) {
	// yaml.v3 decodes a bare date into a string when the target is any.
	r := Parse([]byte("---\ndate: 2024-06-01\n---\nbody"))
	if _, ok := r.Frontmatter["date"].(string); !ok {
		t.Errorf("date = %T(%v), want string", r.Frontmatter["date"], r.Frontmatter["date"])
	}
}
