package cli

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// Upper bounds for generated trees. Enumerations grow with the Catalan
// numbers and complete trees double per level.
const (
	maxEnumNodes     = 9
	maxGeneratedSize = 1 << 12
	maxCollatzDepth  = 40
)

// demoCommand creates the demo command with one subcommand per generator.
func (c *CLI) demoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw generated example trees",
		Long: `Demo draws trees produced by the built-in generators. It is a quick way to
try out the drawing options without writing an input file.`,
	}

	cmd.AddCommand(c.demoCompleteCommand())
	cmd.AddCommand(c.demoRandomCommand())
	cmd.AddCommand(c.demoCollatzCommand())
	cmd.AddCommand(c.demoEnumCommand())
	cmd.AddCommand(c.demoSharedCommand())

	return cmd
}

func (c *CLI) demoCompleteCommand() *cobra.Command {
	var style styleFlags
	var n int

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Complete tree with nodes numbered in level order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSize("nodes", n, maxGeneratedSize); err != nil {
				return err
			}
			return c.printTree(cmd, tree.Complete(n), &style)
		},
	}

	style.register(cmd)
	cmd.Flags().IntVarP(&n, "nodes", "n", 15, "number of nodes")
	return cmd
}

func (c *CLI) demoRandomCommand() *cobra.Command {
	var style styleFlags
	var n int
	var seed uint64
	var words bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Random binary search tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSize("nodes", n, maxGeneratedSize); err != nil {
				return err
			}
			root := tree.Random(n, seed)
			if words {
				root = tree.SpellLabels(root)
			}
			c.Logger.Debug("Generated random tree", "nodes", n, "seed", seed, "height", root.Height())
			return c.printTree(cmd, root, &style)
		},
	}

	style.register(cmd)
	cmd.Flags().IntVarP(&n, "nodes", "n", 30, "number of nodes")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&words, "words", false, "spell out labels as English words")
	return cmd
}

func (c *CLI) demoCollatzCommand() *cobra.Command {
	var style styleFlags
	var start, depth int

	cmd := &cobra.Command{
		Use:   "collatz",
		Short: "Reverse Collatz tree",
		Long: `Collatz draws the numbers whose Collatz sequence passes through --start.
Every node x has the child 2x; nodes of the form 6k+4 (above 4) also have
the odd child (x-1)/3. Looks best with --square --lr-agnostic --label-gap 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSize("start", start, 1<<20); err != nil {
				return err
			}
			if err := validateSize("depth", depth, maxCollatzDepth); err != nil {
				return err
			}
			return c.printTree(cmd, tree.Collatz(start, depth), &style)
		},
	}

	style.register(cmd)
	cmd.Flags().IntVar(&start, "start", 1, "root value")
	cmd.Flags().IntVar(&depth, "depth", 15, "number of levels")
	return cmd
}

func (c *CLI) demoEnumCommand() *cobra.Command {
	var style styleFlags
	var page pageFlags
	var n int
	var words bool

	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Every binary search tree over 1..n, as a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSize("nodes", n, maxEnumNodes); err != nil {
				return err
			}
			trees := tree.Enumerate(n)
			if words {
				for i, t := range trees {
					trees[i] = tree.SpellLabels(t)
				}
			}
			return c.runPage(cmd, trees, &style, &page, "")
		},
	}

	style.register(cmd)
	page.register(cmd)
	cmd.Flags().IntVarP(&n, "nodes", "n", 4, "number of nodes per tree")
	cmd.Flags().BoolVar(&words, "words", false, "spell out labels as English words")
	return cmd
}

func (c *CLI) demoSharedCommand() *cobra.Command {
	var style styleFlags
	var page pageFlags
	var n int

	cmd := &cobra.Command{
		Use:   "shared",
		Short: "Every tree shape with n nodes, built from shared subtrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSize("nodes", n, maxEnumNodes); err != nil {
				return err
			}
			return c.runPage(cmd, tree.EnumerateShared(n), &style, &page, "")
		},
	}

	style.register(cmd)
	page.register(cmd)
	cmd.Flags().IntVarP(&n, "nodes", "n", 5, "number of nodes per tree")
	return cmd
}

func validateSize(name string, v, limit int) error {
	if err := errors.ValidatePositive(name, v); err != nil {
		return err
	}
	if v > limit {
		return errors.New(errors.ErrCodeInvalidInput, "%s must be <= %d, got %d", name, limit, v)
	}
	return nil
}

// printTree renders a single tree to the command's output.
func (c *CLI) printTree(cmd *cobra.Command, root *tree.Node, sf *styleFlags) error {
	opts, err := c.options(cmd, sf, nil)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(cmd.OutOrStdout())
	return c.newTreePrinter(bw, opts, sf.color).SetFlush(true).Render(root)
}
