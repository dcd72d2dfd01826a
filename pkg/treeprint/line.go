package treeprint

import "strings"

// Line is one output row of a subtree together with its horizontal extent.
//
// Left and Right are the first and last occupied columns measured from the
// subtree's root column (column 0 is the center of the root label). The
// visible width of Text, ANSI escapes excluded, is Right - Left + 1.
type Line struct {
	Text  string
	Left  int
	Right int
}

// Width returns the number of columns the line occupies.
func (l Line) Width() int {
	return l.Right - l.Left + 1
}

// Shift returns a copy of l moved d columns to the right.
func (l Line) Shift(d int) Line {
	return Line{Text: l.Text, Left: l.Left + d, Right: l.Right + d}
}

// pad surrounds l.Text with spaces so that it spans [minLeft, maxRight].
func (l Line) pad(minLeft, maxRight int) string {
	return spaces(l.Left-minLeft) + l.Text + spaces(maxRight-l.Right)
}

// Layout is the rendering of a subtree, one Line per output row.
// Row 0 holds the subtree's root label. The absent subtree has an empty Layout.
type Layout []Line

// Bounds returns the leftmost and rightmost columns used by any row.
// Both are 0 for an empty layout.
func (ly Layout) Bounds() (minLeft, maxRight int) {
	if len(ly) == 0 {
		return 0, 0
	}
	minLeft, maxRight = ly[0].Left, ly[0].Right
	for _, l := range ly[1:] {
		minLeft = min(minLeft, l.Left)
		maxRight = max(maxRight, l.Right)
	}
	return minLeft, maxRight
}

// Width returns the width of the bounding box, 0 for an empty layout.
func (ly Layout) Width() int {
	if len(ly) == 0 {
		return 0
	}
	minLeft, maxRight := ly.Bounds()
	return maxRight - minLeft + 1
}

// Pad trims the layout to its bounding box and returns every row padded
// with spaces to the same visible width.
func (ly Layout) Pad() []string {
	if len(ly) == 0 {
		return nil
	}
	minLeft, maxRight := ly.Bounds()
	out := make([]string, len(ly))
	for i, l := range ly {
		out[i] = l.pad(minLeft, maxRight)
	}
	return out
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
