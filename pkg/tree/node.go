package tree

import (
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// Node is a binary tree node with a text label. A nil *Node is the empty tree.
type Node struct {
	Text string
	L, R *Node
}

// New creates an inner node.
func New(label string, left, right *Node) *Node {
	return &Node{Text: label, L: left, R: right}
}

// Leaf creates a node without children.
func Leaf(label string) *Node {
	return &Node{Text: label}
}

// Label returns the node's text.
func (n *Node) Label() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.L
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.R
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.L == nil && n.R == nil
}

// Size counts the nodes reachable from n. Shared subtrees are counted once
// per position.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.L.Size() + n.R.Size()
}

// Height is the number of nodes on the longest root-to-leaf path.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.L.Height(), n.R.Height())
}

// Walk calls fn for every node in pre-order with its depth, starting at 0.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		fn(n, depth)
		walk(n.L, depth+1)
		walk(n.R, depth+1)
	}
	walk(n, 0)
}

// Relabel returns a copy of the tree with every label replaced by fn(label).
// Shared subtrees are copied once per position.
func (n *Node) Relabel(fn func(string) string) *Node {
	if n == nil {
		return nil
	}
	return &Node{Text: fn(n.Text), L: n.L.Relabel(fn), R: n.R.Relabel(fn)}
}

// NewPrinter returns a printer for *Node trees writing to os.Stdout.
func NewPrinter() *treeprint.Printer[*Node] {
	return treeprint.NewFor[*Node]()
}
