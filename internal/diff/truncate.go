package diff

import "strings"

// Marker is the line inserted between the kept head and tail of a
// truncated diff.
const Marker = "[...diff truncated...]"

// DefaultMaxLines is the default line budget for a diff sent to a model.
const DefaultMaxLines = 10000

// Truncate bounds text to at most maxLines lines, keeping the first and
// last maxLines/2 (integer division, so an odd budget keeps maxLines-1
// lines) joined by Marker. The returned count is always the original line
// count, so callers can report how much was dropped.
//
// Truncation is a fixed point: re-truncating the output with the same
// budget returns it unchanged. A budget below 2 degenerates to the marker
// alone; callers should validate budgets before getting here.
func Truncate(text string, maxLines int) (string, int) {
	lines := strings.Split(text, "\n")
	total := len(lines)
	if total <= maxLines {
		return text, total
	}

	half := maxLines / 2
	truncated := strings.Join(lines[:half], "\n") +
		"\n" + Marker + "\n" +
		strings.Join(lines[total-half:], "\n")
	return truncated, total
}
