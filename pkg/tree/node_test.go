package tree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAccessors(t *testing.T) {
	var empty *Node
	assert.Equal(t, "", empty.Label())
	assert.Nil(t, empty.Left())
	assert.Nil(t, empty.Right())
	assert.False(t, empty.IsLeaf())

	n := New("a", Leaf("b"), nil)
	assert.Equal(t, "a", n.Label())
	assert.Equal(t, "b", n.Left().Label())
	assert.Nil(t, n.Right())
	assert.False(t, n.IsLeaf())
	assert.True(t, n.Left().IsLeaf())
}

func TestSizeAndHeight(t *testing.T) {
	tests := []struct {
		name   string
		root   *Node
		size   int
		height int
	}{
		{"empty", nil, 0, 0},
		{"leaf", Leaf("x"), 1, 1},
		{"chain", New("a", New("b", Leaf("c"), nil), nil), 3, 3},
		{"complete 7", Complete(7), 7, 3},
		{"complete 8", Complete(8), 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.root.Size())
			assert.Equal(t, tt.height, tt.root.Height())
		})
	}
}

func TestWalk(t *testing.T) {
	var labels []string
	var depths []int
	Complete(5).Walk(func(n *Node, depth int) {
		labels = append(labels, n.Text)
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"1", "2", "4", "5", "3"}, labels)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestRelabelCopies(t *testing.T) {
	root := Complete(3)
	upper := root.Relabel(func(s string) string { return s + "!" })

	assert.Equal(t, "1!", upper.Text)
	assert.Equal(t, "3!", upper.R.Text)
	assert.Equal(t, "1", root.Text, "original must not change")
}

func TestNewPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter().SetWriter(&buf).SetSquareBranches(true).SetLabelGap(1)

	require.NoError(t, p.Render(Complete(3)))
	assert.Equal(t, " 1 \n┌┴┐\n2 3\n", buf.String())
}
