// Package models defines the domain types for the weekly review pipeline.
package models

import (
	"fmt"
	"time"
)

// DefaultCategory is assigned to notes whose frontmatter carries no category.
const DefaultCategory = "General"

// Note is one eligible note resolved from a Markdown file.
type Note struct {
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
	Path     string    `json:"path"`
}

// FileInfo is a lightweight representation returned by storage listings.
type FileInfo struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review is the single output artifact of a run.
type Review struct {
	Date time.Time `json:"date"`
	Body string    `json:"body"`
}

// Filename returns the dated output file name for the review.
func (r Review) Filename() string {
	return fmt.Sprintf("%s-Weekly-Review.md", r.Date.Format("2006-01-02"))
}

// Render produces the full document: dated heading followed by the body.
func (r Review) Render() string {
	return fmt.Sprintf("# Weekly Review - %s\n\n%s", r.Date.Format("2006-01-02"), r.Body)
}
