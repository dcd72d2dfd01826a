package treeprint

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches SGR-like escapes: ESC '[' digits/semicolons and a
// single terminator. Anything else is counted as visible text.
var ansiPattern = regexp.MustCompile(`\x1b\[[\d;]*[^\d;]`)

// cellWidth ignores the locale so ambiguous-width box drawing characters
// always count as one cell.
var cellWidth = runewidth.NewCondition()

// StripANSI removes well-formed ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal cells s occupies once ANSI
// escapes are removed.
func VisibleWidth(s string) int {
	return cellWidth.StringWidth(StripANSI(s))
}
