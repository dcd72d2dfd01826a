package treeprint

import (
	"strings"
	"time"

	"github.com/matzehuels/treeprinter/pkg/observability"
)

// Layout computes the rendering of the tree rooted at root.
//
// Layout assumes a valid glyph table; call [Printer.Validate] first when it
// comes from user input. A negative label gap is treated as 0.
func (p *Printer[T]) Layout(root T) Layout {
	start := time.Now()
	ly := Layout(p.layout(root))
	observability.Render().OnLayout(len(ly), ly.Width(), time.Since(start))
	return ly
}

// layout builds the lines of a subtree bottom-up. Child layouts are never
// modified; shifted copies are appended instead.
func (p *Printer[T]) layout(node T) []Line {
	var absent T
	if node == absent {
		return nil
	}

	leftLines := p.layout(p.left(node))
	rightLines := p.layout(p.right(node))

	// Bring the two subtrees as close as their jagged edges allow, add the
	// label gap and round up to an odd number so a connector can sit in the
	// middle.
	rootSpacing := 0
	for i := range min(len(leftLines), len(rightLines)) {
		rootSpacing = max(rootSpacing, leftLines[i].Right-rightLines[i].Left)
	}
	rootSpacing += max(p.opts.LabelGap, 0)
	if rootSpacing%2 == 0 {
		rootSpacing++
	}

	label, width := p.rootLabel(node)
	lines := make([]Line, 0, 2+max(len(leftLines), len(rightLines)))
	lines = append(lines, Line{Text: label, Left: -floorHalf(width - 1), Right: width / 2})

	g := p.opts.Glyphs
	square := p.opts.SquareBranches
	leftAdjust, rightAdjust := 0, 0

	switch {
	case len(leftLines) == 0 && len(rightLines) == 0:
	case len(leftLines) == 0:
		switch {
		case square && p.opts.LRAgnostic:
			lines = append(lines, Line{Text: g.Glyph(Vertical)})
		case square:
			lines = append(lines, Line{Text: g.Glyph(OutRight) + g.Glyph(InRight), Left: 0, Right: 1})
			rightAdjust = 1
		default:
			lines = append(lines, Line{Text: g.Glyph(DiagonalRight), Left: 1, Right: 1})
			rightAdjust = 2
		}
	case len(rightLines) == 0:
		switch {
		case square && p.opts.LRAgnostic:
			lines = append(lines, Line{Text: g.Glyph(Vertical)})
		case square:
			lines = append(lines, Line{Text: g.Glyph(InLeft) + g.Glyph(OutLeft), Left: -1, Right: 0})
			leftAdjust = -1
		default:
			lines = append(lines, Line{Text: g.Glyph(DiagonalLeft), Left: -1, Right: -1})
			leftAdjust = -2
		}
	case square:
		adjust := rootSpacing/2 + 1
		h := strings.Repeat(g.Glyph(Horizontal), rootSpacing/2)
		lines = append(lines, Line{
			Text:  g.Glyph(InLeft) + h + g.Glyph(Split) + h + g.Glyph(InRight),
			Left:  -adjust,
			Right: adjust,
		})
		leftAdjust, rightAdjust = -adjust, adjust
	case rootSpacing == 1:
		lines = append(lines, Line{Text: g.Glyph(DiagonalLeft) + " " + g.Glyph(DiagonalRight), Left: -1, Right: 1})
		leftAdjust, rightAdjust = -2, 2
	default:
		for i := 1; i < rootSpacing; i += 2 {
			lines = append(lines, Line{
				Text:  g.Glyph(DiagonalLeft) + spaces(i) + g.Glyph(DiagonalRight),
				Left:  -(i + 1) / 2,
				Right: (i + 1) / 2,
			})
		}
		adjust := rootSpacing/2 + 1
		leftAdjust, rightAdjust = -adjust, adjust
	}

	// Distance between the last column of a left row and the first column
	// of the matching right row, before subtracting the rows' own extents.
	gap := rootSpacing
	if rootSpacing == 1 {
		gap = 3
		if square {
			gap = 1
		}
	}

	for i := range max(len(leftLines), len(rightLines)) {
		switch {
		case i >= len(leftLines):
			lines = append(lines, rightLines[i].Shift(rightAdjust))
		case i >= len(rightLines):
			lines = append(lines, leftLines[i].Shift(leftAdjust))
		default:
			l, r := leftLines[i], rightLines[i]
			lines = append(lines, Line{
				Text:  l.Text + spaces(gap-l.Right+r.Left) + r.Text,
				Left:  l.Left + leftAdjust,
				Right: r.Right + rightAdjust,
			})
		}
	}
	return lines
}

// rootLabel returns the label to draw for node and its visible width.
func (p *Printer[T]) rootLabel(node T) (string, int) {
	label := p.label(node)
	visible := StripANSI(label)
	if p.opts.Placeholder && strings.TrimSpace(visible) == "" {
		seg := DiagonalPlaceholder
		if p.opts.SquareBranches {
			seg = SquarePlaceholder
		}
		glyph := p.opts.Glyphs.Glyph(seg)
		return glyph, cellWidth.StringWidth(glyph)
	}
	return label, cellWidth.StringWidth(visible)
}

// floorHalf divides by two rounding towards negative infinity.
func floorHalf(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
