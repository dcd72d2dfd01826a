// Package tree provides a concrete binary tree type and generators for the
// tree shapes used by the CLI demos and tests.
//
// [Node] implements [treeprint.Node], so a printer for it needs no accessor
// functions:
//
//	p := tree.NewPrinter().SetSquareBranches(true)
//	err := p.Render(tree.Complete(15))
//
// # Generators
//
//   - [Complete]: nodes 1..n in level order
//   - [Random]: a seeded random binary search tree over 1..n
//   - [Collatz]: the reverse Collatz tree rooted at a start value
//   - [Enumerate]: every binary search tree over 1..n
//   - [EnumerateShared]: every shape with n nodes, reusing identical subtrees
//
// Trees returned by [EnumerateShared] share nodes between trees and between
// siblings. They are DAGs, which the printer draws as trees. Do not mutate
// them.
package tree
