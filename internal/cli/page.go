package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// pageOpts holds the command-line flags for the page command.
type pageOpts struct {
	style      styleFlags
	page       pageFlags
	output     string
	levelOrder bool
}

// pageCommand creates the page command for packing several trees into rows.
func (c *CLI) pageCommand() *cobra.Command {
	var opts pageOpts

	cmd := &cobra.Command{
		Use:   "page [file]",
		Short: "Pack several trees side by side into a page",
		Long: `Page reads an array of trees and lays them out left to right in rows no
wider than --width. A tree wider than the page gets a row of its own.`,
		Example: `  treeprinter page forest.json --width 80 --square
  printf '1 2 3\n4 # 5\n' | treeprinter page --level-order`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			trees, err := readTrees(cmd, path, opts.levelOrder)
			if err != nil {
				return err
			}
			c.Logger.Debug("Loaded trees", "input", inputName(path), "count", len(trees))
			return c.runPage(cmd, trees, &opts.style, &opts.page, opts.output)
		},
	}

	opts.style.register(cmd)
	opts.page.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.levelOrder, "level-order", false, "read level-order input, one tree per line")

	return cmd
}

// runPage packs trees into a page and writes it to output. It is shared by
// the page and demo commands.
func (c *CLI) runPage(cmd *cobra.Command, trees []*tree.Node, sf *styleFlags, pf *pageFlags, output string) error {
	prog := newProgress(c.Logger)

	opts, err := c.options(cmd, sf, pf)
	if err != nil {
		return err
	}

	out, err := openOutput(cmd, output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", output)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	p := c.newTreePrinter(bw, opts, sf.color).SetFlush(true)
	if err := p.RenderPage(trees, pf.width); err != nil {
		return err
	}

	if output != "" && output != "-" {
		if err := out.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "close %s", output)
		}
		prog.done(fmt.Sprintf("Generated %s", output))
		return nil
	}
	prog.done(fmt.Sprintf("Rendered %d trees", len(trees)))
	return nil
}
