package review

import (
	"fmt"
	"strings"

	"github.com/piotrlaczkowski/NotesAPP/internal/models"
)

// NoNotesMessage is returned instead of contacting the generator when there
// is nothing to review.
const NoNotesMessage = "No notes found for this week."

// maxNoteChars caps how much of each note's content goes into the prompt.
// There is no guard on the combined prompt size; very large note volumes can
// still exceed a provider's input limit.
const maxNoteChars = 2000

const promptHeader = `You are a personal knowledge assistant. Review the following notes from the past week and provide a comprehensive summary.

Structure the review as follows:
1. **Executive Summary**: High-level overview of what was learned/collected this week.
2. **Key Themes**: Group the notes by themes or categories and summarize the key insights for each.
3. **Actionable Insights**: Identify any actionable takeaways or ideas that emerged.
4. **Connections**: Identify any interesting connections between different notes.

Here are the notes:
`

// BuildPrompt assembles the summarization prompt: the assistant role and
// required output sections, followed by one delimited block per note.
func BuildPrompt(notes []models.Note) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)

	for _, note := range notes {
		sb.WriteString("\n---\n")
		fmt.Fprintf(&sb, "Title: %s\n", note.Title)
		fmt.Fprintf(&sb, "Category: %s\n", note.Category)
		fmt.Fprintf(&sb, "Date: %s\n", note.Date.Format(dateLayout))
		fmt.Fprintf(&sb, "Content:\n%s\n", truncate(note.Content, maxNoteChars))
	}
	return sb.String()
}

// truncate cuts s to at most n characters (runes, not bytes).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
