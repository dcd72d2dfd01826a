package treeprint

import (
	"io"
	"strings"
	"time"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/observability"
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Lines renders root into equal-width lines trimmed to the tree's bounding
// box. An absent root yields no lines.
func (p *Printer[T]) Lines(root T) []string {
	return p.Layout(root).Pad()
}

// String renders root into a single string with a newline after every line.
func (p *Printer[T]) String(root T) string {
	lines := p.Lines(root)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Render writes the tree rooted at root to the printer's writer, one line at
// a time, and flushes the writer afterwards when configured to.
func (p *Printer[T]) Render(root T) error {
	if err := p.Validate(); err != nil {
		return err
	}
	start := time.Now()
	lines := p.Lines(root)
	err := p.writeLines(lines)
	observability.Render().OnRender(observability.KindTree, 1, len(lines), time.Since(start), err)
	if err != nil {
		return err
	}
	p.debug("rendered tree", "lines", len(lines))
	return nil
}

func (p *Printer[T]) writeLines(lines []string) error {
	for i, line := range lines {
		if _, err := io.WriteString(p.w, line+"\n"); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write line %d", i+1)
		}
	}
	if !p.opts.Flush {
		return nil
	}
	if f, ok := p.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "flush output")
		}
	}
	return nil
}
