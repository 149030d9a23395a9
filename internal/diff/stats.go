package diff

import (
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// Stats summarizes the files touched by a raw diff, for the --debug
// diagnostic output.
type Stats struct {
	FilesModified int
	FilesAdded    int
	FilesDeleted  int
	FilesBinary   int
	Hunks         int
}

// TotalFiles returns the number of file sections in the diff.
func (s Stats) TotalFiles() int {
	return s.FilesModified + s.FilesAdded + s.FilesDeleted
}

// Stat parses a raw git diff and counts changed files and hunks. It runs on
// the diff as produced by git, before normalization, since normalization
// discards the sections being counted.
func Stat(raw string) (Stats, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(raw))
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	for _, f := range files {
		switch {
		case f.IsNew:
			s.FilesAdded++
		case f.IsDelete:
			s.FilesDeleted++
		default:
			s.FilesModified++
		}
		if f.IsBinary {
			s.FilesBinary++
		}
		s.Hunks += len(f.TextFragments)
	}
	return s, nil
}
