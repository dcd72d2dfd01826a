package cli

import (
	"github.com/spf13/cobra"

	treeio "github.com/matzehuels/treeprinter/pkg/io"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// readTrees loads trees from path, or from stdin when path is "-" or empty.
func readTrees(cmd *cobra.Command, path string, levelOrder bool) ([]*tree.Node, error) {
	if path == "" || path == "-" {
		if levelOrder {
			return treeio.ReadLevelOrder(cmd.InOrStdin())
		}
		return treeio.ReadJSON(cmd.InOrStdin())
	}
	if levelOrder {
		return treeio.ImportLevelOrder(path)
	}
	return treeio.ImportJSON(path)
}

// inputName names the input in log messages.
func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
