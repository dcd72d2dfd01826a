// Package config loads printer options from TOML files.
//
// A configuration file sets any subset of the printer options; missing keys
// keep their defaults:
//
//	square      = true
//	lr_agnostic = false
//	label_gap   = 1
//	col_gap     = 2
//	row_gap     = 1
//	placeholder = true
//	flush       = true
//	glyph_set   = "double"
//
//	# Optional, replaces the glyph set. Every segment must be listed.
//	[glyphs]
//	diagonal-placeholder = "X"
//	diagonal-left        = "/"
//	# ...
//
// Unknown keys are rejected so that misspelled options are noticed.
package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

// File is the on-disk form of the configuration. Nil fields are unset.
type File struct {
	Square      *bool             `toml:"square"`
	LRAgnostic  *bool             `toml:"lr_agnostic"`
	LabelGap    *int              `toml:"label_gap"`
	ColGap      *int              `toml:"col_gap"`
	RowGap      *int              `toml:"row_gap"`
	Placeholder *bool             `toml:"placeholder"`
	Flush       *bool             `toml:"flush"`
	GlyphSet    string            `toml:"glyph_set,omitempty"`
	Glyphs      map[string]string `toml:"glyphs,omitempty"`
}

// Apply layers the values set in f over base and validates the result.
func (f File) Apply(base treeprint.Options) (treeprint.Options, error) {
	o := base
	setBool(&o.SquareBranches, f.Square)
	setBool(&o.LRAgnostic, f.LRAgnostic)
	setBool(&o.Placeholder, f.Placeholder)
	setBool(&o.Flush, f.Flush)
	setInt(&o.LabelGap, f.LabelGap)
	setInt(&o.ColGap, f.ColGap)
	setInt(&o.RowGap, f.RowGap)

	if f.GlyphSet != "" {
		g, err := treeprint.GlyphSet(f.GlyphSet)
		if err != nil {
			return base, invalid(err, "glyph_set")
		}
		o.Glyphs = g
	}
	if len(f.Glyphs) > 0 {
		g, err := parseGlyphs(f.Glyphs)
		if err != nil {
			return base, invalid(err, "glyphs")
		}
		o.Glyphs = g
	}

	if err := o.Validate(); err != nil {
		return base, invalid(err, "options")
	}
	return o, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func invalid(err error, key string) error {
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: %s", key, errors.UserMessage(err))
}

func parseGlyphs(m map[string]string) (treeprint.Glyphs, error) {
	byName := make(map[treeprint.Segment]rune, len(m))
	for name, s := range m {
		seg, err := treeprint.ParseSegment(name)
		if err != nil {
			return treeprint.Glyphs{}, err
		}
		if utf8.RuneCountInString(s) != 1 {
			return treeprint.Glyphs{}, errors.New(errors.ErrCodeInvalidGlyphs, "glyph for %s must be a single character, got %q", name, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		byName[seg] = r
	}
	return treeprint.GlyphsFromMap(byName)
}

// Decode reads a TOML configuration from r and applies it to the default
// options.
func Decode(r io.Reader) (treeprint.Options, error) {
	return DecodeOver(r, treeprint.DefaultOptions())
}

// DecodeOver reads a TOML configuration from r and applies it to base.
func DecodeOver(r io.Reader, base treeprint.Options) (treeprint.Options, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return base, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return f.Apply(base)
}

// Load reads the configuration file at path. A missing file is reported
// with code FILE_NOT_FOUND.
func Load(path string) (treeprint.Options, error) {
	if err := errors.ValidatePath(path); err != nil {
		return treeprint.DefaultOptions(), err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return treeprint.DefaultOptions(), errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return treeprint.DefaultOptions(), errors.Wrap(errors.ErrCodeIO, err, "open config %s", path)
	}
	defer f.Close()

	o, err := Decode(f)
	if err != nil {
		return o, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return o, nil
}

// DefaultPath returns the per-user configuration file location,
// $XDG_CONFIG_HOME/treeprinter/config.toml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate config directory")
	}
	return filepath.Join(dir, "treeprinter", "config.toml"), nil
}

// LoadDefault loads the file at [DefaultPath]. It returns the default
// options when there is no such file.
func LoadDefault() (treeprint.Options, error) {
	path, err := DefaultPath()
	if err != nil {
		return treeprint.DefaultOptions(), nil
	}
	o, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return treeprint.DefaultOptions(), nil
	}
	return o, err
}

// FromOptions converts options to their file form. Predefined glyph tables
// are written by name, others as a full [glyphs] table.
func FromOptions(o treeprint.Options) File {
	f := File{
		Square:      &o.SquareBranches,
		LRAgnostic:  &o.LRAgnostic,
		LabelGap:    &o.LabelGap,
		ColGap:      &o.ColGap,
		RowGap:      &o.RowGap,
		Placeholder: &o.Placeholder,
		Flush:       &o.Flush,
	}
	for _, name := range treeprint.GlyphSetNames {
		if g, _ := treeprint.GlyphSet(name); g == o.Glyphs {
			f.GlyphSet = name
			return f
		}
	}
	f.Glyphs = make(map[string]string, len(o.Glyphs))
	for _, s := range treeprint.Segments() {
		f.Glyphs[s.String()] = o.Glyphs.Glyph(s)
	}
	return f
}

// Encode writes o as a TOML configuration file that [Decode] reads back.
func Encode(w io.Writer, o treeprint.Options) error {
	if err := toml.NewEncoder(w).Encode(FromOptions(o)); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode config")
	}
	return nil
}

// Write saves o as a configuration file at path, creating parent
// directories. An existing file is only replaced when force is set.
func Write(path string, o treeprint.Options, force bool) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create config directory")
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if os.IsExist(err) {
		return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := Encode(f, o); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
