// Package prompt holds the fixed instruction template sent to the model
// and builds the user message that carries the diff.
package prompt

import "fmt"

const purpose = "Create standard gitlab MR comment"

const instructions = `Carefully review the git diff provided and then generate a concise, professional MR comment based on it. Use a structured format that includes
 •	MR Title:
 A short 1 sentence summary for use in a gitlab MR title [dont include the title header]
 •	MR Summary:
 A brief overview of the changes. [dont include the summary header]
 •	## Key Changes:
 A bulleted list of major updates or improvements.
 •	## Why These Changes:
 A short explanation of the motivation behind the changes.
 •	## Review Checklist:
 A list of items for reviewers to verify. Use a markdown checkbox for each item
 •	## Notes:
 Additional context or guidance.
 Follow the style of simplifying technical details while maintaining clarity and professionalism. ALWAYS add a blank line after each heading.

 ONLY produce the MR comment and no additional questions or prompts. The git diff may be truncated due to length - focus analysis on the provided sections.`

// System returns the system instruction sent with every request.
func System() string {
	return purpose + "\n\n" + instructions
}

// UserMessage wraps the (possibly truncated) diff in the user message. When
// lines were dropped, the original line count is noted so the model knows
// it is seeing a partial diff.
func UserMessage(diff string, originalLines, maxLines int) string {
	if originalLines > maxLines {
		return fmt.Sprintf("Git diff (truncated from %d lines):\n\n%s", originalLines, diff)
	}
	return fmt.Sprintf("Git diff:\n\n%s", diff)
}
