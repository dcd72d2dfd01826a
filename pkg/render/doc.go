// Package render groups the graphical renderers that complement the text
// printer in [treeprint].
//
// The text printer is the primary output of treeprinter. The [nodelink]
// subpackage draws the same tree as a Graphviz diagram, which is handy to
// check a text rendering against a conventional layout or to embed a tree
// in a web page.
//
//	dot := nodelink.ToDOT(root, (*tree.Node).Label, (*tree.Node).Left, (*tree.Node).Right, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [treeprint]: github.com/matzehuels/treeprinter/pkg/treeprint
// [nodelink]: github.com/matzehuels/treeprinter/pkg/render/nodelink
package render
