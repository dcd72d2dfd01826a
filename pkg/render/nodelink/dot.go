package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the subtree size and height below each label.
	Detailed bool

	// Square draws edges as orthogonal polylines, matching the square
	// branch style of the text printer.
	Square bool
}

// ToDOT converts the tree rooted at root to Graphviz DOT format. The
// resulting DOT string can be rendered using [RenderSVG].
//
// Node identifiers are n0, n1, ... in pre-order. An absent root yields an
// empty graph.
func ToDOT[T comparable](root T, label func(T) string, left, right func(T) T, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  ordering=out;\n")
	if opts.Square {
		buf.WriteString("  splines=ortho;\n")
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := dotWriter[T]{buf: &buf, label: label, left: left, right: right, opts: opts}
	var absent T
	if root != absent {
		w.node(root)
		buf.WriteString("\n")
		buf.Write(w.edges.Bytes())
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter[T comparable] struct {
	buf         *bytes.Buffer
	edges       bytes.Buffer
	label       func(T) string
	left, right func(T) T
	opts        Options
	next        int
}

// node writes n and its subtree and returns n's identifier.
func (w *dotWriter[T]) node(n T) string {
	id := w.id()
	l, r := w.left(n), w.right(n)
	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(w.attrs(n, l, r), ", "))

	var absent T
	if l == absent && r == absent {
		return id
	}
	for _, child := range []T{l, r} {
		if child == absent {
			hole := w.id()
			fmt.Fprintf(w.buf, "  %s [shape=point, style=invis];\n", hole)
			fmt.Fprintf(&w.edges, "  %s -> %s [style=invis];\n", id, hole)
			continue
		}
		fmt.Fprintf(&w.edges, "  %s -> %s;\n", id, w.node(child))
	}
	return id
}

func (w *dotWriter[T]) id() string {
	id := "n" + strconv.Itoa(w.next)
	w.next++
	return id
}

func (w *dotWriter[T]) attrs(n, l, r T) []string {
	text := strings.TrimSpace(treeprint.StripANSI(w.label(n)))
	if text == "" {
		return []string{"shape=point", "width=0.15", "fillcolor=black"}
	}
	if w.opts.Detailed {
		size, height := w.measure(n)
		text += fmt.Sprintf("\nsize: %d\nheight: %d", size, height)
	}
	attrs := []string{fmt.Sprintf("label=%q", text)}
	var absent T
	if l == absent && r == absent {
		attrs = append(attrs, "fillcolor=\"#f0f0f0\"")
	}
	return attrs
}

func (w *dotWriter[T]) measure(n T) (size, height int) {
	var absent T
	if n == absent {
		return 0, 0
	}
	ls, lh := w.measure(w.left(n))
	rs, rh := w.measure(w.right(n))
	return 1 + ls + rs, 1 + max(lh, rh)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> tag with one whose size
// matches its viewBox, so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
