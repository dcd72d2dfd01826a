package treeprint

import (
	"github.com/matzehuels/treeprinter/pkg/errors"
)

// Segment is the role a single glyph plays in a branch drawing.
type Segment int

const (
	DiagonalPlaceholder Segment = iota // stands in for a blank label, diagonal style
	DiagonalLeft                       // diagonal towards the left child
	DiagonalRight                      // diagonal towards the right child
	SquarePlaceholder                  // stands in for a blank label, square style
	Vertical                           // straight connector to a lone child
	Horizontal                         // horizontal run of a square split
	Split                              // parent junction of a square split
	OutRight                           // parent corner leading to a lone right child
	OutLeft                            // parent corner leading to a lone left child
	InLeft                             // corner entering the left child
	InRight                            // corner entering the right child

	segmentCount
)

var segmentNames = [segmentCount]string{
	DiagonalPlaceholder: "diagonal-placeholder",
	DiagonalLeft:        "diagonal-left",
	DiagonalRight:       "diagonal-right",
	SquarePlaceholder:   "square-placeholder",
	Vertical:            "vertical",
	Horizontal:          "horizontal",
	Split:               "split",
	OutRight:            "out-right",
	OutLeft:             "out-left",
	InLeft:              "in-left",
	InRight:             "in-right",
}

// String returns the kebab-case name of s, e.g. "in-left".
func (s Segment) String() string {
	if s < 0 || s >= segmentCount {
		return "unknown"
	}
	return segmentNames[s]
}

// ParseSegment returns the segment with the given kebab-case name.
func ParseSegment(name string) (Segment, error) {
	for s, n := range segmentNames {
		if n == name {
			return Segment(s), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidGlyphs, "unknown segment %q", name)
}

// Segments returns every segment in declaration order.
func Segments() []Segment {
	out := make([]Segment, segmentCount)
	for i := range out {
		out[i] = Segment(i)
	}
	return out
}

// Glyphs maps every [Segment] to the character drawn for it.
// The zero rune marks a missing entry; see [Glyphs.Validate].
type Glyphs [segmentCount]rune

// Predefined glyph tables.
var (
	DefaultGlyphs = Glyphs{
		DiagonalPlaceholder: '╳',
		DiagonalLeft:        '╱',
		DiagonalRight:       '╲',
		SquarePlaceholder:   '│',
		Vertical:            '│',
		Horizontal:          '─',
		Split:               '┴',
		OutRight:            '└',
		OutLeft:             '┘',
		InLeft:              '┌',
		InRight:             '┐',
	}

	DoubleGlyphs = Glyphs{
		DiagonalPlaceholder: '╳',
		DiagonalLeft:        '╱',
		DiagonalRight:       '╲',
		SquarePlaceholder:   '║',
		Vertical:            '║',
		Horizontal:          '═',
		Split:               '╩',
		OutRight:            '╚',
		OutLeft:             '╝',
		InLeft:              '╔',
		InRight:             '╗',
	}

	ASCIIGlyphs = Glyphs{
		DiagonalPlaceholder: 'X',
		DiagonalLeft:        '/',
		DiagonalRight:       '\\',
		SquarePlaceholder:   '|',
		Vertical:            '|',
		Horizontal:          '-',
		Split:               '\'',
		OutRight:            '\'',
		OutLeft:             '\'',
		InLeft:              '.',
		InRight:             '.',
	}
)

// Names of the predefined glyph tables accepted by [GlyphSet].
const (
	GlyphSetDefault = "default"
	GlyphSetDouble  = "double"
	GlyphSetASCII   = "ascii"
)

// GlyphSetNames lists the names accepted by [GlyphSet].
var GlyphSetNames = []string{GlyphSetDefault, GlyphSetDouble, GlyphSetASCII}

// GlyphSet returns a predefined glyph table by name.
func GlyphSet(name string) (Glyphs, error) {
	switch name {
	case GlyphSetDefault, "":
		return DefaultGlyphs, nil
	case GlyphSetDouble:
		return DoubleGlyphs, nil
	case GlyphSetASCII:
		return ASCIIGlyphs, nil
	}
	return Glyphs{}, errors.ValidateOneOf(errors.ErrCodeInvalidGlyphs, "glyph set", name, GlyphSetNames...)
}

// GlyphsFromMap builds a table from m. Overrides are all or nothing:
// every segment must be present.
func GlyphsFromMap(m map[Segment]rune) (Glyphs, error) {
	var g Glyphs
	for _, s := range Segments() {
		r, ok := m[s]
		if !ok {
			return Glyphs{}, errors.New(errors.ErrCodeInvalidGlyphs, "no glyph for segment %s", s)
		}
		g[s] = r
	}
	return g, g.Validate()
}

// Validate reports the first segment without a glyph or with a glyph that
// does not occupy exactly one terminal cell.
func (g Glyphs) Validate() error {
	for s, r := range g {
		if r == 0 {
			return errors.New(errors.ErrCodeInvalidGlyphs, "no glyph for segment %s", Segment(s))
		}
		if w := cellWidth.RuneWidth(r); w != 1 {
			return errors.New(errors.ErrCodeInvalidGlyphs, "glyph %q for segment %s is %d cells wide, want 1", r, Segment(s), w)
		}
	}
	return nil
}

// Glyph returns the character for s as a string.
func (g Glyphs) Glyph(s Segment) string {
	return string(g[s])
}
