package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2).
			MarginBottom(1)
)

// Write renders the comment to w, framed unless plain is set.
func Write(w io.Writer, comment string, plain bool) error {
	comment = strings.TrimSpace(comment)
	if plain {
		_, err := fmt.Fprintln(w, comment)
		return err
	}

	if _, err := fmt.Fprintln(w, headingStyle.Render("Generated MR Comment:")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, borderStyle.Render(comment))
	return err
}

// WriteResult sends the comment to path, or to stdout when path is empty.
// An existing file is overwritten.
func WriteResult(comment, path string, plain bool) error {
	if path == "" {
		return Write(os.Stdout, comment, plain)
	}

	if err := os.WriteFile(path, []byte(comment), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "MR comment written to %s\n", path)
	return nil
}
