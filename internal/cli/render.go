package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/cache"
	"github.com/matzehuels/treeprinter/pkg/errors"
	treeio "github.com/matzehuels/treeprinter/pkg/io"
	"github.com/matzehuels/treeprinter/pkg/render/nodelink"
	"github.com/matzehuels/treeprinter/pkg/tree"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// Output formats of the render command.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

var validFormats = []string{formatText, formatDOT, formatSVG, formatJSON}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	style      styleFlags
	output     string // output file path, stdout when empty
	format     string // text, dot, svg or json
	levelOrder bool   // read level-order tokens instead of JSON
	detailed   bool   // show subtree sizes in dot/svg output
	noCache    bool   // always run Graphviz for svg output
}

// renderCommand creates the render command for drawing trees from a file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render trees from a JSON or level-order file",
		Long: `Render reads one or more trees and draws them as text.

Input is JSON ({"label": ..., "left": ..., "right": ...}, or an array of such
objects) or, with --level-order, one breadth-first token list per line.
Use "-" or no argument to read from stdin.`,
		Example: `  treeprinter render tree.json --square
  echo '[1,2,3,null,4]' | treeprinter render --level-order
  treeprinter render tree.json --format svg -o tree.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = formatFromPath(opts.output)
			}
			if err := errors.ValidateOneOf(errors.ErrCodeInvalidFormat, "format", opts.format, validFormats...); err != nil {
				return err
			}
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return c.runRender(cmd, path, &opts)
		},
	}

	opts.style.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text (default), dot, svg, json")
	cmd.Flags().BoolVar(&opts.levelOrder, "level-order", false, "read level-order input (e.g. [1,2,null,3])")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show subtree size and height (dot, svg)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not reuse previously rendered SVG")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return validFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// formatFromPath picks the format from the output file extension.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return formatDOT
	case ".svg":
		return formatSVG
	case ".json":
		return formatJSON
	}
	return formatText
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	printerOpts, err := c.options(cmd, &opts.style, nil)
	if err != nil {
		return err
	}

	trees, err := readTrees(cmd, path, opts.levelOrder)
	if err != nil {
		return err
	}
	c.Logger.Debug("Loaded trees", "input", inputName(path), "count", len(trees))

	out, err := openOutput(cmd, opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", opts.output)
	}
	defer out.Close()

	if err := c.writeFormat(cmd.Context(), out, trees, printerOpts, opts); err != nil {
		return err
	}

	if opts.output != "" && opts.output != "-" {
		if err := out.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "close %s", opts.output)
		}
		prog.done(fmt.Sprintf("Generated %s", opts.output))
	}
	return nil
}

// writeFormat renders trees to w in the requested format.
func (c *CLI) writeFormat(ctx context.Context, w io.Writer, trees []*tree.Node, printerOpts treeprint.Options, opts *renderOpts) error {
	switch opts.format {
	case formatJSON:
		return treeio.WriteJSON(trees, w)
	case formatDOT, formatSVG:
		if len(trees) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "%s output needs exactly one tree, got %d", opts.format, len(trees))
		}
		dot := nodelink.ToDOT(trees[0], (*tree.Node).Label, (*tree.Node).Left, (*tree.Node).Right,
			nodelink.Options{Detailed: opts.detailed, Square: printerOpts.SquareBranches})
		if opts.format == formatDOT {
			if _, err := io.WriteString(w, dot); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write DOT")
			}
			return nil
		}
		store := c.openCache(opts.noCache)
		defer store.Close()
		return c.writeSVG(ctx, w, dot, store)
	}

	bw := bufio.NewWriter(w)
	p := c.newTreePrinter(bw, printerOpts, opts.style.color).SetFlush(true)
	for i, t := range trees {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "write separator")
			}
		}
		if err := p.Render(t); err != nil {
			return err
		}
	}
	return nil
}

// writeSVG lays out dot with Graphviz, reusing a cached rendering of the
// same DOT source when there is one.
func (c *CLI) writeSVG(ctx context.Context, w io.Writer, dot string, store cache.Cache) error {
	key := cache.SVGKey(dot)
	svg, hit, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("SVG cache read failed", "err", err)
	}
	if hit {
		c.Logger.Debug("SVG cache hit", "key", key)
	} else {
		if svg, err = c.renderSVG(ctx, dot); err != nil {
			return err
		}
		if err := store.Set(ctx, key, svg, svgCacheTTL); err != nil {
			c.Logger.Debug("SVG cache write failed", "err", err)
		}
	}

	if _, err := w.Write(svg); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write SVG")
	}
	return nil
}

func (c *CLI) renderSVG(ctx context.Context, dot string) ([]byte, error) {
	var spin *Spinner
	if c.Interactive {
		spin = newSpinnerWithContext(ctx, c.errOut, "Rendering SVG...")
		spin.Start()
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	switch {
	case spin == nil:
	case err != nil:
		spin.StopWithError("SVG rendering failed")
	default:
		spin.Stop()
	}
	return svg, err
}
