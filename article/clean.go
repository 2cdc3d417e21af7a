package article

import (
	"regexp"
	"strings"
)

var (
	citationPattern = regexp.MustCompile(`\[\d+\]`)
	editMarker      = "[edit]"
)

// CleanReferences removes citation markers such as "[1]" or "[23]".
func CleanReferences(s string) string {
	return citationPattern.ReplaceAllString(s, "")
}

// CleanEdits removes the literal "[edit]" link text.
func CleanEdits(s string) string {
	return strings.ReplaceAll(s, editMarker, "")
}

// cleanBlock normalizes the text of one content block.
func cleanBlock(s string) string {
	return strings.TrimSpace(CleanReferences(CleanEdits(strings.TrimSpace(s))))
}
