package tree_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/treeprinter/pkg/tree"
)

func ExampleNewPrinter() {
	p := tree.NewPrinter().SetSquareBranches(true).SetLabelGap(1)
	for _, line := range p.Lines(tree.Complete(7)) {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	//    1
	//  ┌─┴─┐
	//  2   3
	// ┌┴┐ ┌┴┐
	// 4 5 6 7
}
