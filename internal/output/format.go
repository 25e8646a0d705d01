// Package output provides formatters for CLI output and task lines.
package output

import (
	"strings"
	"time"
)

const (
	// ChecklistPrefix is the markdown marker for an unchecked task.
	ChecklistPrefix = "- [ ] "

	// TimestampLayout matches dd/mm/yyyy HH:MM in local time.
	TimestampLayout = "02/01/2006 15:04"
)

// FormatTaskLine formats an improved task as a markdown checklist line.
// The text is normalized to a single line and trimmed; the trailing
// newline is added by the writer.
func FormatTaskLine(text string) string {
	return ChecklistPrefix + normalizeText(text)
}

// FormatTaskLineTimestamped is FormatTaskLine with a creation-time suffix.
func FormatTaskLineTimestamped(text string, at time.Time) string {
	return FormatTaskLine(text) + " - 🕓" + at.Format(TimestampLayout)
}

// normalizeText normalizes task text for a single checklist line.
// - Newlines are replaced with spaces
// - Leading/trailing whitespace is trimmed
// - Empty or whitespace-only text becomes "(untitled)"
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	text = strings.TrimSpace(text)
	if text == "" {
		return "(untitled)"
	}
	return text
}
