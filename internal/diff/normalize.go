package diff

import (
	"errors"
	"strings"
)

// ErrEmptyDiff indicates that normalization produced nothing worth sending
// to a model.
var ErrEmptyDiff = errors.New("no diff content found")

// sectionState tracks what kind of file section the scanner is inside.
type sectionState int

const (
	stateIdle sectionState = iota
	stateModified
	stateAdded
	stateDeleted
)

// normalizer consumes a diff one line at a time. Lines of the current file
// section are buffered until the section's fate is known: modified sections
// are emitted verbatim, added/deleted sections are dropped and only their
// paths recorded.
type normalizer struct {
	state   sectionState
	path    string
	pending []string

	kept    []string
	added   []string
	deleted []string
}

// Normalize converts a raw git diff into a prompt-friendly form: binary-file
// notices are removed, the bodies of added and deleted files are replaced by
// a trailing "New files:" / "Deleted files:" summary, and modified-file
// sections pass through untouched. Returns ErrEmptyDiff if the result is
// empty or whitespace-only.
func Normalize(raw string) (string, error) {
	n := &normalizer{state: stateIdle}
	for _, line := range strings.Split(raw, "\n") {
		n.consume(line)
	}
	n.flush()

	var b strings.Builder
	b.WriteString(strings.Join(n.kept, "\n"))
	writeSummary(&b, "New files:", n.added)
	writeSummary(&b, "Deleted files:", n.deleted)

	out := b.String()
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyDiff
	}
	return out, nil
}

func (n *normalizer) consume(line string) {
	if strings.HasPrefix(line, "Binary files") {
		return
	}
	if strings.HasPrefix(line, "diff --git") {
		n.flush()
		n.state = stateModified
		n.path = headerPath(line)
		n.pending = append(n.pending, line)
		return
	}

	// Null-device markers decide the section's fate. The marker line stays
	// in the buffer; if the section turns out added/deleted the whole
	// buffer is dropped anyway.
	switch {
	case strings.HasPrefix(line, "--- /dev/null"):
		if n.state != stateIdle {
			n.state = stateAdded
		}
	case strings.HasPrefix(line, "+++ /dev/null"):
		if n.state != stateIdle {
			n.state = stateDeleted
		}
	}

	n.pending = append(n.pending, line)
}

// flush resolves the buffered section. Called on each new file header and
// once at end of input, so the last file needs no special casing.
func (n *normalizer) flush() {
	switch {
	case n.state == stateAdded && n.path != "":
		n.added = append(n.added, n.path)
	case n.state == stateDeleted && n.path != "":
		n.deleted = append(n.deleted, n.path)
	case n.state == stateAdded || n.state == stateDeleted:
		// headerless section, nothing to record
	default:
		n.kept = append(n.kept, n.pending...)
	}
	n.pending = nil
	n.path = ""
}

// headerPath extracts the file path from a "diff --git a/x b/x" header,
// stripping the source-side prefix.
func headerPath(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return ""
	}
	return strings.TrimPrefix(fields[2], "a/")
}

func writeSummary(b *strings.Builder, heading string, paths []string) {
	if len(paths) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString("• ")
		b.WriteString(p)
		b.WriteString("\n")
	}
}
