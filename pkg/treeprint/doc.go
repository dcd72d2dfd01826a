// Package treeprint renders binary trees as aligned text art.
//
// A [Printer] is built from three accessors (label, left child, right child)
// and works with any comparable node type; the zero value of the type is
// the absent node. Trees are drawn either with diagonal branches
//
//	  A
//	 ╱ ╲
//	B   C
//
// or with box-drawing ("square") branches
//
//	 A
//	┌┴┐
//	B C
//
// # Layout
//
// [Printer.Layout] works bottom-up. Every subtree becomes a [Layout]: one
// [Line] per row, each carrying its extent relative to the subtree root.
// Two sibling layouts are merged at the smallest odd spacing that keeps
// their contours apart on every shared row plus the configured label gap,
// so deep, lopsided subtrees never collide.
//
// Labels may carry ANSI color escapes. They are kept in the output but do
// not count towards a label's width, which is measured in terminal cells.
//
// # Output
//
// [Printer.Render] writes a single tree, [Printer.RenderPage] packs several
// trees into rows of a page. Both write to the printer's writer.
//
//	p := treeprint.New(
//	    func(n *Node) string { return n.Name },
//	    func(n *Node) *Node { return n.L },
//	    func(n *Node) *Node { return n.R },
//	).SetSquareBranches(true).SetLabelGap(1)
//	if err := p.Render(root); err != nil {
//	    return err
//	}
package treeprint
