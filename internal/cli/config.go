package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/config"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// configCommand creates the config command for inspecting configuration.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			c.printOptions(cmd, opts)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default options to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			if err := config.Write(path, treeprint.DefaultOptions(), force); err != nil {
				return err
			}
			c.Logger.Infof("Wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}

// configFile returns --config or the default location.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

func (c *CLI) printOptions(cmd *cobra.Command, opts treeprint.Options) {
	w := cmd.OutOrStdout()
	glyphs := "custom"
	if f := config.FromOptions(opts); f.GlyphSet != "" {
		glyphs = f.GlyphSet
	}
	printKeyValue(w, "square", strconv.FormatBool(opts.SquareBranches))
	printKeyValue(w, "lr_agnostic", strconv.FormatBool(opts.LRAgnostic))
	printKeyValue(w, "label_gap", strconv.Itoa(opts.LabelGap))
	printKeyValue(w, "col_gap", strconv.Itoa(opts.ColGap))
	printKeyValue(w, "row_gap", strconv.Itoa(opts.RowGap))
	printKeyValue(w, "placeholder", strconv.FormatBool(opts.Placeholder))
	printKeyValue(w, "flush", strconv.FormatBool(opts.Flush))
	printKeyValue(w, "glyph_set", glyphs)
}

// glyphsCommand creates the glyphs command listing the predefined glyph sets.
func (c *CLI) glyphsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "glyphs",
		Short: "List the predefined glyph sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), glyphTable())
			return nil
		},
	}
}
