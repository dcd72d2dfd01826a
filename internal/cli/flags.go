package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// styleFlags are the drawing options shared by commands that print trees.
// Flags override the config file only when given on the command line.
type styleFlags struct {
	square        bool
	lrAgnostic    bool
	labelGap      int
	noPlaceholder bool
	glyphs        string
	color         bool
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.square, "square", false, "draw box-drawing branches instead of diagonals")
	cmd.Flags().BoolVar(&f.lrAgnostic, "lr-agnostic", false, "draw lone children straight below their parent (square only)")
	cmd.Flags().IntVar(&f.labelGap, "label-gap", treeprint.DefaultLabelGap, "minimum gap between labels on a level")
	cmd.Flags().BoolVar(&f.noPlaceholder, "no-placeholder", false, "leave blank labels blank")
	cmd.Flags().StringVar(&f.glyphs, "glyphs", "", "glyph set: default, double, ascii")
	cmd.Flags().BoolVar(&f.color, "color", false, "color labels (inner nodes and leaves differ)")

	_ = cmd.RegisterFlagCompletionFunc("glyphs", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return treeprint.GlyphSetNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// apply overrides opts with the flags set on cmd.
func (f *styleFlags) apply(cmd *cobra.Command, opts treeprint.Options) (treeprint.Options, error) {
	fs := cmd.Flags()
	if fs.Changed("square") {
		opts.SquareBranches = f.square
	}
	if fs.Changed("lr-agnostic") {
		opts.LRAgnostic = f.lrAgnostic
	}
	if fs.Changed("label-gap") {
		opts.LabelGap = f.labelGap
	}
	if fs.Changed("no-placeholder") {
		opts.Placeholder = !f.noPlaceholder
	}
	if fs.Changed("glyphs") {
		g, err := treeprint.GlyphSet(f.glyphs)
		if err != nil {
			return opts, err
		}
		opts.Glyphs = g
	}
	return opts, opts.Validate()
}

// pageFlags control how several trees share a page.
type pageFlags struct {
	width  int
	colGap int
	rowGap int
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "w", defaultPageWidth, "maximum page width in columns")
	cmd.Flags().IntVar(&f.colGap, "col-gap", treeprint.DefaultColGap, "columns between trees in a row")
	cmd.Flags().IntVar(&f.rowGap, "row-gap", treeprint.DefaultRowGap, "blank lines after each row")
}

func (f *pageFlags) apply(cmd *cobra.Command, opts treeprint.Options) (treeprint.Options, error) {
	fs := cmd.Flags()
	if fs.Changed("col-gap") {
		opts.ColGap = f.colGap
	}
	if fs.Changed("row-gap") {
		opts.RowGap = f.rowGap
	}
	if err := errors.ValidatePositive("page width", f.width); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

// options loads the config file and applies the command's flags. pf may be
// nil for commands that print single trees.
func (c *CLI) options(cmd *cobra.Command, sf *styleFlags, pf *pageFlags) (treeprint.Options, error) {
	opts, err := c.loadOptions()
	if err != nil {
		return opts, err
	}
	if opts, err = sf.apply(cmd, opts); err != nil {
		return opts, err
	}
	if pf != nil {
		return pf.apply(cmd, opts)
	}
	return opts, nil
}
