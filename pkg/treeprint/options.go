package treeprint

import (
	"github.com/matzehuels/treeprinter/pkg/errors"
)

// Default values for [Options].
const (
	DefaultLabelGap = 2
	DefaultColGap   = 1
	DefaultRowGap   = 1
)

// Options controls how trees are drawn.
type Options struct {
	// SquareBranches draws connectors with box-drawing characters instead
	// of diagonals. The result is more compact.
	SquareBranches bool `json:"square_branches"`

	// LRAgnostic draws a lone child straight below its parent instead of
	// offsetting it to its side. Only applies with SquareBranches.
	LRAgnostic bool `json:"lr_agnostic"`

	// LabelGap is the minimum number of spaces between adjacent labels.
	LabelGap int `json:"label_gap"`

	// ColGap separates trees in a row of a page.
	ColGap int `json:"col_gap"`

	// RowGap is the number of blank lines after each row of a page.
	RowGap int `json:"row_gap"`

	// Placeholder substitutes a glyph for labels that are blank once ANSI
	// escapes are removed.
	Placeholder bool `json:"placeholder"`

	// Flush flushes the writer after rendering if it has a Flush method.
	Flush bool `json:"flush"`

	Glyphs Glyphs `json:"-"`
}

// DefaultOptions returns the default diagonal-branch configuration.
func DefaultOptions() Options {
	return Options{
		LabelGap:    DefaultLabelGap,
		ColGap:      DefaultColGap,
		RowGap:      DefaultRowGap,
		Placeholder: true,
		Flush:       true,
		Glyphs:      DefaultGlyphs,
	}
}

// Validate checks gaps and the glyph table.
func (o Options) Validate() error {
	if err := errors.ValidateNonNegative("label gap", o.LabelGap); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("column gap", o.ColGap); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("row gap", o.RowGap); err != nil {
		return err
	}
	return o.Glyphs.Validate()
}
