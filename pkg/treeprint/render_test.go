package treeprint

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tperrors "github.com/matzehuels/treeprinter/pkg/errors"
)

func TestRenderWritesLines(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter().SetWriter(&buf).SetSquareBranches(true)

	require.NoError(t, p.Render(n("A", nil, leaf("B"))))
	assert.Equal(t, "A \n└┐\n B\n", buf.String())
	assert.Equal(t, buf.String(), p.String(n("A", nil, leaf("B"))))
}

func TestRenderAbsentRootWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter().SetWriter(&buf)

	require.NoError(t, p.Render(nil))
	assert.Zero(t, buf.Len())
}

func TestRenderFlush(t *testing.T) {
	var sink bytes.Buffer
	w := bufio.NewWriter(&sink)

	p := newTestPrinter().SetWriter(w).SetFlush(false)
	require.NoError(t, p.Render(leaf("5")))
	assert.Zero(t, sink.Len(), "output should stay buffered without flush")

	p.SetFlush(true)
	require.NoError(t, p.Render(leaf("6")))
	assert.Equal(t, "5\n6\n", sink.String())
}

func TestRenderValidatesOptions(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter().SetWriter(&buf).SetLabelGap(-1)

	err := p.Render(leaf("x"))
	require.Error(t, err)
	assert.True(t, tperrors.Is(err, tperrors.ErrCodeInvalidInput))
	assert.Zero(t, buf.Len())

	g := DefaultGlyphs
	g[Split] = 0
	p.SetLabelGap(1).SetGlyphs(g)
	err = p.Render(leaf("x"))
	require.Error(t, err)
	assert.True(t, tperrors.Is(err, tperrors.ErrCodeInvalidGlyphs))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	p := newTestPrinter().SetWriter(failingWriter{})

	err := p.Render(leaf("x"))
	require.Error(t, err)
	assert.True(t, tperrors.Is(err, tperrors.ErrCodeIO))
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	for _, mutate := range []func(*Options){
		func(o *Options) { o.LabelGap = -1 },
		func(o *Options) { o.ColGap = -2 },
		func(o *Options) { o.RowGap = -3 },
		func(o *Options) { o.Glyphs = Glyphs{} },
	} {
		o := DefaultOptions()
		mutate(&o)
		assert.Error(t, o.Validate())
	}
}

func TestSetOptions(t *testing.T) {
	o := DefaultOptions()
	o.SquareBranches = true
	o.LabelGap = 1

	p := newTestPrinter().SetOptions(o)
	assert.Equal(t, o, p.Options())
	assert.Equal(t, []string{" A ", "┌┴┐", "B C"}, p.Lines(n("A", leaf("B"), leaf("C"))))
}
