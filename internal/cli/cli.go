// Package cli implements the treeprinter command-line interface.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/buildinfo"
	"github.com/matzehuels/treeprinter/pkg/cache"
	"github.com/matzehuels/treeprinter/pkg/config"
	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/observability"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "treeprinter"

	// defaultPageWidth is the page width used when --width is not given.
	defaultPageWidth = 120

	// svgCacheTTL is how long rendered SVG documents are reused.
	svgCacheTTL = 7 * 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Interactive enables progress spinners. main sets it when stderr is a
	// terminal.
	Interactive bool

	errOut     io.Writer
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), errOut: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Treeprinter draws binary trees as text",
		Long: `Treeprinter renders binary trees as aligned text art with diagonal or
box-drawing branches. Several trees can share a page, and a single tree can
be exported as a Graphviz diagram.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := logHooks{logger: c.Logger}
			observability.SetRenderHooks(hooks)
			observability.SetHTTPHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/treeprinter/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pageCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.glyphsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadOptions returns the printer options from --config, or from the default
// config file when it exists, or the built-in defaults.
func (c *CLI) loadOptions() (treeprint.Options, error) {
	if c.configPath != "" {
		c.Logger.Debug("Loading config", "path", c.configPath)
		return config.Load(c.configPath)
	}
	return config.LoadDefault()
}

// openCache returns the on-disk artifact cache, or a cache that never hits
// when disabled or when the cache directory is unusable.
func (c *CLI) openCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Debug("Cache disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("Cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Output
// =============================================================================

// nopCloser keeps cmd.OutOrStdout open after a command finishes.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for an empty path or "-", and creates the file
// otherwise.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(path)
}

// =============================================================================
// Exit Status
// =============================================================================

// Exit statuses returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalid     = 2 // bad flags, input, glyphs or config
	ExitNotFound    = 3
	ExitInterrupted = 130
)

// ExitCode maps an error returned by the root command to a process exit
// status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGlyphs, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat:
		return ExitInvalid
	case errors.ErrCodeFileNotFound:
		return ExitNotFound
	}
	return ExitFailure
}

// ReportError prints err to w. Interrupts are not reported.
func ReportError(w io.Writer, err error) {
	if err == nil || stderrors.Is(err, context.Canceled) {
		return
	}
	printError(w, "%s", err)
}
