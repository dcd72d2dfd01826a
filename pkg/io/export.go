package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// node is the JSON form of a tree node.
type node struct {
	Label label `json:"label"`
	Left  *node `json:"left,omitempty"`
	Right *node `json:"right,omitempty"`
}

func (n *node) tree() *tree.Node {
	if n == nil {
		return nil
	}
	return tree.New(string(n.Label), n.Left.tree(), n.Right.tree())
}

func fromTree(t *tree.Node) *node {
	if t == nil {
		return nil
	}
	return &node{Label: label(t.Text), Left: fromTree(t.L), Right: fromTree(t.R)}
}

// label accepts JSON strings and numbers. Numbers keep their literal text,
// so 1.50 stays "1.50".
type label string

func (l *label) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = label(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "label must be a string or number, got %s", data)
	}
	*l = label(n.String())
	return nil
}

// WriteJSON encodes trees as JSON and writes them to w. A single tree is
// written as an object, several as an array. The output can be re-imported
// with [ReadJSON].
func WriteJSON(trees []*tree.Node, w io.Writer) error {
	var out any
	if len(trees) == 1 {
		out = fromTree(trees[0])
	} else {
		nodes := make([]*node, len(trees))
		for i, t := range trees {
			nodes[i] = fromTree(t)
		}
		out = nodes
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode")
	}
	return nil
}

// ExportJSON writes trees to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(trees []*tree.Node, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WriteJSON(trees, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
