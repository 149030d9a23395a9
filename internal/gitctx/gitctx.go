package gitctx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Diff returns the raw diff for ref. An empty ref diffs the working tree,
// a ref containing ".." is treated as a revision range, HEAD is passed
// through as-is, and any other ref is diffed against its parent.
func Diff(ref string) (string, error) {
	out, err := gitOutput(diffArgs(ref)...)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(out) {
		return "", fmt.Errorf("git produced non-UTF8 output for %q", ref)
	}
	return out, nil
}

// diffArgs maps a commit argument to git diff arguments.
func diffArgs(ref string) []string {
	switch {
	case ref == "":
		return []string{"diff"}
	case strings.Contains(ref, ".."), ref == "HEAD":
		return []string{"diff", ref}
	default:
		return []string{"diff", ref + "^", ref}
	}
}

// FromFile reads a diff that was produced elsewhere.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading diff file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("diff file %s is not valid UTF-8", path)
	}
	return string(data), nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s: %s: %s",
				strings.Join(args, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("running git: %w", err)
	}
	return string(out), nil
}
