package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	o, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if o != treeprint.DefaultOptions() {
		t.Errorf("Decode(\"\") = %+v, want defaults", o)
	}
}

func TestDecode(t *testing.T) {
	input := `
square      = true
lr_agnostic = true
label_gap   = 1
col_gap     = 4
row_gap     = 0
placeholder = false
flush       = false
glyph_set   = "ascii"
`
	o, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := treeprint.Options{
		SquareBranches: true,
		LRAgnostic:     true,
		LabelGap:       1,
		ColGap:         4,
		RowGap:         0,
		Placeholder:    false,
		Flush:          false,
		Glyphs:         treeprint.ASCIIGlyphs,
	}
	if o != want {
		t.Errorf("Decode() = %+v, want %+v", o, want)
	}
}

func TestDecodePartial(t *testing.T) {
	o, err := Decode(strings.NewReader("label_gap = 5\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := treeprint.DefaultOptions()
	want.LabelGap = 5
	if o != want {
		t.Errorf("Decode() = %+v, want %+v", o, want)
	}
}

func TestDecodeGlyphTable(t *testing.T) {
	var b strings.Builder
	b.WriteString("[glyphs]\n")
	for _, s := range treeprint.Segments() {
		b.WriteString(s.String() + " = \"" + treeprint.DoubleGlyphs.Glyph(s) + "\"\n")
	}

	o, err := Decode(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if o.Glyphs != treeprint.DoubleGlyphs {
		t.Errorf("Glyphs = %v, want double set", o.Glyphs)
	}
}

// glyphTable returns a complete [glyphs] table of the default set with the
// glyph for seg replaced.
func glyphTable(seg treeprint.Segment, glyph string) string {
	var b strings.Builder
	b.WriteString("[glyphs]\n")
	for _, s := range treeprint.Segments() {
		g := treeprint.DefaultGlyphs.Glyph(s)
		if s == seg {
			g = glyph
		}
		b.WriteString(s.String() + " = \"" + g + "\"\n")
	}
	return b.String()
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "square = \n"},
		{"wrong type", `label_gap = "wide"`},
		{"unknown key", "sqaure = true\n"},
		{"unknown table", "[page]\nwidth = 80\n"},
		{"negative gap", "row_gap = -1\n"},
		{"unknown glyph set", `glyph_set = "fancy"`},
		{"partial glyph table", "[glyphs]\nsplit = \"+\"\n"},
		{"unknown segment", "[glyphs]\nsplat = \"+\"\n"},
		{"multi-char glyph", "[glyphs]\nsplit = \"++\"\n"},
		{"double-width glyph", glyphTable(treeprint.Horizontal, "日")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
			if o != treeprint.DefaultOptions() {
				t.Errorf("failed decode should return defaults, got %+v", o)
			}
		})
	}
}

func TestUnknownKeysAreListed(t *testing.T) {
	_, err := Decode(strings.NewReader("zeta = 1\nalpha = 2\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "alpha, zeta") {
		t.Errorf("message %q should list sorted keys", msg)
	}
}

func TestDecodeOver(t *testing.T) {
	base := treeprint.DefaultOptions()
	base.SquareBranches = true
	base.LabelGap = 7

	o, err := DecodeOver(strings.NewReader("label_gap = 3\n"), base)
	if err != nil {
		t.Fatalf("DecodeOver: %v", err)
	}
	if !o.SquareBranches || o.LabelGap != 3 {
		t.Errorf("DecodeOver() = %+v, want square with gap 3", o)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("square = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !o.SquareBranches {
		t.Error("square should be set")
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("nope = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad file: code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q should name the file", err)
	}
}

func TestDefaultPathAndLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if filepath.Base(path) != "config.toml" || filepath.Base(filepath.Dir(path)) != "treeprinter" {
		t.Errorf("DefaultPath() = %q", path)
	}

	o, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault without file: %v", err)
	}
	if o != treeprint.DefaultOptions() {
		t.Errorf("LoadDefault() = %+v, want defaults", o)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("col_gap = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if o.ColGap != 9 {
		t.Errorf("ColGap = %d, want 9", o.ColGap)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	custom := treeprint.ASCIIGlyphs
	custom[treeprint.Split] = '+'

	tests := []struct {
		name string
		opts treeprint.Options
	}{
		{"defaults", treeprint.DefaultOptions()},
		{"double square", treeprint.Options{SquareBranches: true, LabelGap: 1, Glyphs: treeprint.DoubleGlyphs}},
		{"custom glyphs", treeprint.Options{LabelGap: 3, ColGap: 2, RowGap: 2, Placeholder: true, Glyphs: custom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.opts); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			if got != tt.opts {
				t.Errorf("round trip = %+v, want %+v", got, tt.opts)
			}
		})
	}
}

func TestFromOptionsNamesGlyphSet(t *testing.T) {
	f := FromOptions(treeprint.DefaultOptions())
	if f.GlyphSet != treeprint.GlyphSetDefault || f.Glyphs != nil {
		t.Errorf("FromOptions() glyphs = %q %v, want named default set", f.GlyphSet, f.Glyphs)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	opts := treeprint.DefaultOptions()
	opts.SquareBranches = true

	if err := Write(path, opts, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != opts {
		t.Errorf("Load() = %+v, want %+v", got, opts)
	}

	if err := Write(path, treeprint.DefaultOptions(), false); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("existing file without force: err = %v", err)
	}
	if err := Write(path, treeprint.DefaultOptions(), true); err != nil {
		t.Fatalf("Write with force: %v", err)
	}
	if got, _ := Load(path); got != treeprint.DefaultOptions() {
		t.Errorf("forced write not applied: %+v", got)
	}
}
