package treeprint

import (
	"strings"
	"time"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/observability"
)

// pageTree is one laid out tree waiting to be placed in a page row.
type pageTree struct {
	layout   Layout
	minLeft  int
	maxRight int
	width    int
}

// PageLines packs several trees left to right into rows no wider than
// maxWidth and returns the resulting lines.
//
// Trees are added to the current row while the row width plus the column
// gap plus the next tree's width stays below maxWidth. A tree wider than
// maxWidth gets a row of its own. Each row is as tall as its tallest tree
// and is followed by RowGap blank lines. Absent roots take up no columns.
func (p *Printer[T]) PageLines(roots []T, maxWidth int) []string {
	trees := make([]pageTree, len(roots))
	for i, root := range roots {
		ly := p.Layout(root)
		minLeft, maxRight := ly.Bounds()
		trees[i] = pageTree{layout: ly, minLeft: minLeft, maxRight: maxRight, width: ly.Width()}
	}

	var out []string
	for next := 0; next < len(trees); {
		end := next + 1
		rowWidth := trees[next].width
		for end < len(trees) && rowWidth+p.opts.ColGap+trees[end].width < maxWidth {
			rowWidth += p.opts.ColGap + trees[end].width
			end++
		}
		out = append(out, p.pageRow(trees[next:end])...)
		for range p.opts.RowGap {
			out = append(out, "")
		}
		next = end
	}
	return out
}

func (p *Printer[T]) pageRow(row []pageTree) []string {
	height := 0
	for _, t := range row {
		height = max(height, len(t.layout))
	}

	lines := make([]string, height)
	for i := range height {
		var b strings.Builder
		for j, t := range row {
			if j > 0 {
				b.WriteString(spaces(p.opts.ColGap))
			}
			if i < len(t.layout) {
				b.WriteString(t.layout[i].pad(t.minLeft, t.maxRight))
			} else {
				b.WriteString(spaces(t.width))
			}
		}
		lines[i] = b.String()
	}
	return lines
}

// RenderPage writes the packed page produced by [Printer.PageLines] to the
// printer's writer.
func (p *Printer[T]) RenderPage(roots []T, maxWidth int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("page width", maxWidth); err != nil {
		return err
	}
	start := time.Now()
	lines := p.PageLines(roots, maxWidth)
	err := p.writeLines(lines)
	observability.Render().OnRender(observability.KindPage, len(roots), len(lines), time.Since(start), err)
	if err != nil {
		return err
	}
	p.debug("rendered page", "trees", len(roots), "lines", len(lines), "width", maxWidth)
	return nil
}
