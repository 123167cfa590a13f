package treediff

import (
	"strings"

	"github.com/npillmayer/arbor"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Changed reports whether from and to differ structurally. It is
// equivalent to !arbor.Equal(from, to), ignoring display labels.
func Changed[T comparable](from, to arbor.Tree[T]) bool {
	return !arbor.Equal(from, to)
}

// Diff returns a colorized character diff of the canonical indented
// renderings of from and to, suitable for terminal output. Identical
// trees with identical labels yield their common rendering unchanged.
func Diff[T comparable](from, to arbor.Tree[T]) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from.IndentedString(), to.IndentedString(), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// Report returns a plain-text, line-oriented delta of the canonical
// indented renderings of from and to. Deleted lines are prefixed with
// "- ", inserted lines with "+ ", unchanged lines with two spaces.
// Identical trees with identical labels yield the empty string.
func Report[T comparable](from, to arbor.Tree[T]) string {
	a, b := from.IndentedString(), to.IndentedString()
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	// line-mode diff: map lines to runes, diff, map back
	la, lb, lines := dmp.DiffLinesToChars(a+"\n", b+"\n")
	diffs := dmp.DiffMain(la, lb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var bf strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			bf.WriteString(prefix)
			bf.WriteString(line)
			bf.WriteString("\n")
		}
	}
	return bf.String()
}
