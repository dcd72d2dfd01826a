package tree

import (
	"math/rand/v2"
	"strconv"
)

// Complete builds a tree with nodes labelled 1..n in level order: node i
// has children 2i and 2i+1. It returns nil for n < 1.
func Complete(n int) *Node {
	var build func(i int) *Node
	build = func(i int) *Node {
		if i > n {
			return nil
		}
		return New(strconv.Itoa(i), build(2*i), build(2*i+1))
	}
	return build(1)
}

// Random builds a binary search tree over 1..n whose shape is drawn at
// random: every subtree picks its root uniformly among its values. The same
// seed always produces the same tree.
func Random(n int, seed uint64) *Node {
	r := rand.New(rand.NewPCG(seed, seed))
	var build func(first, last int) *Node
	build = func(first, last int) *Node {
		if first > last {
			return nil
		}
		leftCount := r.IntN(last - first + 1)
		root := first + leftCount
		left := build(first, root-1)
		return New(strconv.Itoa(root), left, build(root+1, last))
	}
	return build(1, n)
}

// Collatz builds the reverse Collatz tree rooted at start, at most maxLen
// levels deep. Every value x has the left child 2x. Values of the form
// 6k+4 above 4 also have the right child (x-1)/3, the odd number whose
// Collatz step leads to x.
func Collatz(start, maxLen int) *Node {
	if maxLen < 1 {
		return nil
	}
	var build func(x, depth int) *Node
	build = func(x, depth int) *Node {
		root := Leaf(strconv.Itoa(x))
		if depth < maxLen {
			root.L = build(2*x, depth+1)
			if x%6 == 4 && x > 4 {
				root.R = build((x-1)/3, depth+1)
			}
		}
		return root
	}
	return build(start, 1)
}

// Enumerate returns every binary search tree over the values 1..n, ordered
// by root value and then by left and right subtree. Subtrees are shared
// between the returned trees. For n < 1 the result holds the single empty
// tree.
func Enumerate(n int) []*Node {
	var enum func(first, last int) []*Node
	enum = func(first, last int) []*Node {
		if first > last {
			return []*Node{nil}
		}
		var out []*Node
		for root := first; root <= last; root++ {
			lefts := enum(first, root-1)
			rights := enum(root+1, last)
			for _, l := range lefts {
				for _, r := range rights {
					out = append(out, New(strconv.Itoa(root), l, r))
				}
			}
		}
		return out
	}
	return enum(1, n)
}

// EnumerateShared returns every tree shape with n nodes, all labelled "0".
// Shapes are built from the shapes of smaller sizes, so one subtree node
// may appear under many parents. The count is the n-th Catalan number.
func EnumerateShared(n int) []*Node {
	if n < 0 {
		return nil
	}
	shapes := make([][]*Node, n+1)
	shapes[0] = []*Node{nil}
	for total := 1; total <= n; total++ {
		for rightCount := range total {
			leftCount := total - rightCount - 1
			for _, l := range shapes[leftCount] {
				for _, r := range shapes[rightCount] {
					shapes[total] = append(shapes[total], New("0", l, r))
				}
			}
		}
	}
	return shapes[n]
}
