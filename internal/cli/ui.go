package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/matzehuels/treeprinter/pkg/tree"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const iconError = "✗"

// =============================================================================
// Tree Labels
// =============================================================================

// labelStyles colors tree labels by node kind. Labels are rendered with a
// fixed ANSI profile so colors survive when output is piped into a file.
type labelStyles struct {
	inner lipgloss.Style
	leaf  lipgloss.Style
}

func newLabelStyles() labelStyles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return labelStyles{
		inner: r.NewStyle().Bold(true).Foreground(colorCyan),
		leaf:  r.NewStyle().Foreground(colorGreen),
	}
}

// label returns n's label, colored when styles is non-nil.
func (s *labelStyles) label(n *tree.Node) string {
	if s == nil || n.Text == "" {
		return n.Text
	}
	if n.IsLeaf() {
		return s.leaf.Render(n.Text)
	}
	return s.inner.Render(n.Text)
}

// newTreePrinter returns a printer for *tree.Node writing to w. Colored
// printers wrap labels in ANSI escapes; layout is unaffected.
func (c *CLI) newTreePrinter(w io.Writer, opts treeprint.Options, color bool) *treeprint.Printer[*tree.Node] {
	var styles *labelStyles
	if color {
		s := newLabelStyles()
		styles = &s
	}
	return treeprint.New(styles.label, (*tree.Node).Left, (*tree.Node).Right).
		SetOptions(opts).
		SetWriter(w).
		SetLogger(c.Logger)
}

// =============================================================================
// Output Helpers
// =============================================================================

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// glyphTable shows every predefined glyph set side by side.
func glyphTable() string {
	headers := append([]string{"segment"}, treeprint.GlyphSetNames...)
	rows := make([][]string, 0, len(treeprint.Segments()))
	for _, s := range treeprint.Segments() {
		row := []string{s.String()}
		for _, name := range treeprint.GlyphSetNames {
			g, _ := treeprint.GlyphSet(name)
			row = append(row, g.Glyph(s))
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorGray)
			default:
				return cellStyle.Foreground(colorWhite).Align(lipgloss.Center)
			}
		}).
		Render()
}
