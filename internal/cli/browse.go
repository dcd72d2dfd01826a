package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// Browser styles
var (
	browseStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	browseKeyStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	browseDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Key bindings
// =============================================================================

type browseKeyMap struct {
	Next, Prev, First, Last key.Binding
	Square, Agnostic        key.Binding
	Wider, Narrower         key.Binding
	Glyphs, Color           key.Binding
	Quit                    key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Next:     key.NewBinding(key.WithKeys("right", "l", "n", " "), key.WithHelp("→", "next")),
		Prev:     key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "prev")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Square:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "square")),
		Agnostic: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "lr-agnostic")),
		Wider:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "gap")),
		Narrower: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "gap")),
		Glyphs:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glyphs")),
		Color:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Square, k.Agnostic, k.Wider, k.Narrower, k.Glyphs, k.Color, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Square, k.Agnostic, k.Wider, k.Narrower, k.Glyphs, k.Color},
		{k.Quit},
	}
}

// =============================================================================
// BrowseModel - Interactive tree viewer
// =============================================================================

// BrowseModel is the bubbletea model that steps through a list of trees and
// lets the user change drawing options while looking at them.
type BrowseModel struct {
	Trees  []*tree.Node
	Cursor int
	Opts   treeprint.Options
	Glyphs int // index into treeprint.GlyphSetNames, or customGlyphs
	Color  bool
	Height int

	custom *treeprint.Glyphs
	keys   browseKeyMap
	help   help.Model
}

// customGlyphs marks a glyph table that matches no predefined set.
const customGlyphs = -1

// NewBrowseModel creates a browser starting at the first tree.
func NewBrowseModel(trees []*tree.Node, opts treeprint.Options, color bool) BrowseModel {
	m := BrowseModel{Trees: trees, Opts: opts, Color: color, Height: 24, keys: newBrowseKeyMap(), help: help.New()}
	m.help.Styles.ShortKey = browseKeyStyle
	m.help.Styles.ShortDesc = browseDimStyle
	m.help.Styles.ShortSeparator = browseDimStyle
	m.Glyphs = customGlyphs
	for i, name := range treeprint.GlyphSetNames {
		if g, _ := treeprint.GlyphSet(name); g == opts.Glyphs {
			m.Glyphs = i
		}
	}
	if m.Glyphs == customGlyphs {
		custom := opts.Glyphs
		m.custom = &custom
	}
	return m
}

// nextGlyphs switches to the next predefined glyph set. A custom table from
// the configuration takes its turn after the last predefined set.
func (m *BrowseModel) nextGlyphs() {
	m.Glyphs++
	if m.Glyphs == len(treeprint.GlyphSetNames) {
		m.Glyphs = 0
		if m.custom != nil {
			m.Glyphs = customGlyphs
		}
	}
	if m.Glyphs == customGlyphs {
		m.Opts.Glyphs = *m.custom
		return
	}
	m.Opts.Glyphs, _ = treeprint.GlyphSet(treeprint.GlyphSetNames[m.Glyphs])
}

func (m BrowseModel) glyphSetName() string {
	if m.Glyphs == customGlyphs {
		return "custom"
	}
	return treeprint.GlyphSetNames[m.Glyphs]
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.Cursor < len(m.Trees)-1 {
				m.Cursor++
			}
		case key.Matches(msg, m.keys.Prev):
			if m.Cursor > 0 {
				m.Cursor--
			}
		case key.Matches(msg, m.keys.First):
			m.Cursor = 0
		case key.Matches(msg, m.keys.Last):
			m.Cursor = max(len(m.Trees)-1, 0)
		case key.Matches(msg, m.keys.Square):
			m.Opts.SquareBranches = !m.Opts.SquareBranches
		case key.Matches(msg, m.keys.Agnostic):
			m.Opts.LRAgnostic = !m.Opts.LRAgnostic
		case key.Matches(msg, m.keys.Wider):
			m.Opts.LabelGap++
		case key.Matches(msg, m.keys.Narrower):
			if m.Opts.LabelGap > 0 {
				m.Opts.LabelGap--
			}
		case key.Matches(msg, m.keys.Glyphs):
			m.nextGlyphs()
		case key.Matches(msg, m.keys.Color):
			m.Color = !m.Color
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height, 5)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	title := "No trees"
	if len(m.Trees) > 0 {
		title = fmt.Sprintf("Tree %d/%d", m.Cursor+1, len(m.Trees))
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(browseStatusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")

	if len(m.Trees) > 0 {
		lines := m.printer().Lines(m.Trees[m.Cursor])
		limit := max(m.Height-4, 1)
		if len(lines) > limit {
			lines = append(lines[:limit:limit], browseDimStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-limit)))
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m BrowseModel) printer() *treeprint.Printer[*tree.Node] {
	var styles *labelStyles
	if m.Color {
		s := newLabelStyles()
		styles = &s
	}
	return treeprint.New(styles.label, (*tree.Node).Left, (*tree.Node).Right).SetOptions(m.Opts)
}

func (m BrowseModel) status() string {
	style := "diagonal"
	if m.Opts.SquareBranches {
		style = "square"
		if m.Opts.LRAgnostic {
			style += ", lr-agnostic"
		}
	}
	return fmt.Sprintf("%s · gap %d · %s glyphs", style, m.Opts.LabelGap, m.glyphSetName())
}

// browseCommand creates the browse command for the interactive viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var style styleFlags
	var n int
	var shared, levelOrder bool

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Step through trees interactively",
		Long: `Browse opens a full-screen viewer. Without a file it shows every binary
search tree with --nodes nodes (or every shape with --shared).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var trees []*tree.Node
			switch {
			case len(args) > 0:
				var err error
				if trees, err = readTrees(cmd, args[0], levelOrder); err != nil {
					return err
				}
			case shared:
				if err := validateSize("nodes", n, maxEnumNodes); err != nil {
					return err
				}
				trees = tree.EnumerateShared(n)
			default:
				if err := validateSize("nodes", n, maxEnumNodes); err != nil {
					return err
				}
				trees = tree.Enumerate(n)
			}

			opts, err := c.options(cmd, &style, nil)
			if err != nil {
				return err
			}

			prog := tea.NewProgram(NewBrowseModel(trees, opts, style.color),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := prog.Run(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "browse")
			}
			return nil
		},
	}

	style.register(cmd)
	cmd.Flags().IntVarP(&n, "nodes", "n", 4, "number of nodes per generated tree")
	cmd.Flags().BoolVar(&shared, "shared", false, "enumerate shapes with shared subtrees")
	cmd.Flags().BoolVar(&levelOrder, "level-order", false, "read level-order input, one tree per line")

	return cmd
}
