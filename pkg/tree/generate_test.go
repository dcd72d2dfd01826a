package tree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inorder(root *Node) []string {
	var out []string
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.L)
		out = append(out, n.Text)
		walk(n.R)
	}
	walk(root)
	return out
}

func sequence(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func TestComplete(t *testing.T) {
	assert.Nil(t, Complete(0))

	root := Complete(6)
	assert.Equal(t, "1", root.Text)
	assert.Equal(t, "2", root.L.Text)
	assert.Equal(t, "3", root.R.Text)
	assert.Equal(t, "6", root.R.L.Text)
	assert.Nil(t, root.R.R)
}

func TestRandomIsBinarySearchTree(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40} {
		root := Random(30, seed)
		assert.Equal(t, 30, root.Size())
		assert.Equal(t, sequence(30), inorder(root), "seed %d", seed)
	}
	assert.Nil(t, Random(0, 1))
}

func TestRandomIsDeterministic(t *testing.T) {
	assert.Equal(t, Random(40, 7), Random(40, 7))
	assert.NotEqual(t, inorderShape(Random(40, 7)), inorderShape(Random(40, 8)))
}

// inorderShape records the depth of every node in order, which identifies
// the shape of a search tree.
func inorderShape(root *Node) []int {
	var out []int
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		if n == nil {
			return
		}
		walk(n.L, depth+1)
		out = append(out, depth)
		walk(n.R, depth+1)
	}
	walk(root, 0)
	return out
}

func TestCollatz(t *testing.T) {
	assert.Nil(t, Collatz(1, 0))

	chain := Collatz(1, 5)
	assert.Equal(t, 5, chain.Size())
	assert.Equal(t, 5, chain.Height())
	assert.Nil(t, chain.L.L.R, "4 has no odd predecessor besides 1")

	root := Collatz(1, 6)
	sixteen := root.L.L.L.L
	require.Equal(t, "16", sixteen.Text)
	assert.Equal(t, "32", sixteen.L.Text)
	assert.Equal(t, "5", sixteen.R.Text)
	assert.Equal(t, 7, root.Size())

	// every node leads back to its parent under the Collatz step
	root = Collatz(1, 15)
	root.Walk(func(n *Node, _ int) {
		v, _ := strconv.Atoi(n.Text)
		for _, child := range []*Node{n.L, n.R} {
			if child == nil {
				continue
			}
			c, _ := strconv.Atoi(child.Text)
			next := c / 2
			if c%2 == 1 {
				next = 3*c + 1
			}
			assert.Equal(t, v, next)
		}
	})
}

func TestEnumerate(t *testing.T) {
	catalan := []int{1, 1, 2, 5, 14, 42, 132}
	for n, want := range catalan {
		trees := Enumerate(n)
		require.Len(t, trees, want, "n=%d", n)
		for _, tr := range trees {
			assert.Equal(t, sequence(n), append([]string{}, inorder(tr)...))
		}
	}

	var roots []string
	for _, tr := range Enumerate(3) {
		roots = append(roots, tr.Text)
	}
	assert.Equal(t, []string{"1", "1", "2", "3", "3"}, roots)
}

func TestEnumerateShared(t *testing.T) {
	assert.Nil(t, EnumerateShared(-1))
	assert.Equal(t, []*Node{nil}, EnumerateShared(0))

	trees := EnumerateShared(3)
	require.Len(t, trees, 5)
	for _, tr := range trees {
		assert.Equal(t, 3, tr.Size())
		tr.Walk(func(n *Node, _ int) { assert.Equal(t, "0", n.Text) })
	}
	assert.Same(t, trees[2].L, trees[2].R, "balanced shape reuses the single-node subtree")
	assert.Len(t, EnumerateShared(6), 132)
}

func TestNumberName(t *testing.T) {
	tests := map[int]string{
		0:   "zero",
		7:   "seven",
		13:  "thirteen",
		19:  "nineteen",
		20:  "twenty",
		42:  "forty two",
		90:  "ninety",
		99:  "ninety nine",
		100: "100",
		-3:  "-3",
	}
	for n, want := range tests {
		assert.Equal(t, want, NumberName(n), "n=%d", n)
	}
}

func TestSpellLabels(t *testing.T) {
	root := SpellLabels(New("21", Leaf("x"), Leaf("3")))
	assert.Equal(t, []string{"x", "twenty one", "three"}, inorder(root))
}
