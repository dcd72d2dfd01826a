// Package nodelink renders binary trees as Graphviz node-link diagrams.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, label, left, right, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The accessors are the same ones a [treeprint.Printer] is built from, so
// any tree the text printer can draw can be drawn here as well.
//
// # DOT Format
//
// Every tree position becomes one node, so a subtree reachable along two
// paths is drawn twice, as in the text rendering. When a node has only one
// child, an invisible point node holds the empty slot so Graphviz keeps the
// child on its proper side.
//
// Labels are drawn without ANSI escape sequences. Blank labels are drawn
// as a small filled point.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
//
// [treeprint.Printer]: github.com/matzehuels/treeprinter/pkg/treeprint.Printer
package nodelink
