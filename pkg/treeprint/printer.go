package treeprint

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Printer renders binary trees whose nodes have type T.
//
// The zero value of T is the absent node, so pointer node types use nil for
// a missing child. Shared subtrees are fine; cycles never terminate.
//
// Setters mutate the printer and return it for chaining. Configure a
// printer once and then call [Printer.Render] or [Printer.RenderPage] as
// often as needed; rendering keeps no state between calls.
type Printer[T comparable] struct {
	label  func(T) string
	left   func(T) T
	right  func(T) T
	opts   Options
	w      io.Writer
	logger *log.Logger
}

// New creates a printer from accessors for a node's label and children.
// The accessors are only called on present nodes and must not have side effects.
func New[T comparable](label func(T) string, left, right func(T) T) *Printer[T] {
	return &Printer[T]{
		label: label,
		left:  left,
		right: right,
		opts:  DefaultOptions(),
		w:     os.Stdout,
	}
}

// Node is implemented by node types that know their own label and children.
type Node[N any] interface {
	comparable
	Label() string
	Left() N
	Right() N
}

// NewFor creates a printer for a node type implementing [Node].
func NewFor[N Node[N]]() *Printer[N] {
	return New(
		func(n N) string { return n.Label() },
		func(n N) N { return n.Left() },
		func(n N) N { return n.Right() },
	)
}

// SetWriter sets the sink used by Render and RenderPage. Default is os.Stdout.
func (p *Printer[T]) SetWriter(w io.Writer) *Printer[T] { p.w = w; return p }

// SetSquareBranches switches between box-drawing and diagonal branches.
func (p *Printer[T]) SetSquareBranches(v bool) *Printer[T] { p.opts.SquareBranches = v; return p }

// SetLRAgnostic draws lone children directly below their parent.
func (p *Printer[T]) SetLRAgnostic(v bool) *Printer[T] { p.opts.LRAgnostic = v; return p }

// SetLabelGap sets the minimum gap between labels on the same level.
func (p *Printer[T]) SetLabelGap(n int) *Printer[T] { p.opts.LabelGap = n; return p }

// SetColGap sets the gap between trees in a page row.
func (p *Printer[T]) SetColGap(n int) *Printer[T] { p.opts.ColGap = n; return p }

// SetRowGap sets the number of blank lines after each page row.
func (p *Printer[T]) SetRowGap(n int) *Printer[T] { p.opts.RowGap = n; return p }

// SetPlaceholder enables the placeholder glyph for blank labels.
func (p *Printer[T]) SetPlaceholder(v bool) *Printer[T] { p.opts.Placeholder = v; return p }

// SetFlush enables flushing the writer after each render.
func (p *Printer[T]) SetFlush(v bool) *Printer[T] { p.opts.Flush = v; return p }

// SetGlyphs replaces the whole glyph table.
func (p *Printer[T]) SetGlyphs(g Glyphs) *Printer[T] { p.opts.Glyphs = g; return p }

// SetOptions replaces the whole configuration.
func (p *Printer[T]) SetOptions(o Options) *Printer[T] { p.opts = o; return p }

// SetLogger attaches a logger for debug output. nil disables logging.
func (p *Printer[T]) SetLogger(l *log.Logger) *Printer[T] { p.logger = l; return p }

// Options returns a copy of the current configuration.
func (p *Printer[T]) Options() Options { return p.opts }

// Validate checks the configuration. Render and RenderPage call it before
// writing anything.
func (p *Printer[T]) Validate() error { return p.opts.Validate() }

func (p *Printer[T]) debug(msg string, keyvals ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, keyvals...)
	}
}
