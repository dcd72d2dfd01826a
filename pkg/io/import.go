package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// ReadJSON decodes one tree or an array of trees from r.
//
// A single object yields a slice of length one. The literal null yields a
// single absent tree. Unknown object keys are rejected so that typos such
// as "lef" do not silently drop subtrees.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]*tree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input")
	}
	return DecodeJSON(data)
}

// DecodeJSON is [ReadJSON] for input already in memory.
func DecodeJSON(data []byte) ([]*tree.Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty input")
	}

	if data[0] == '[' {
		var nodes []*node
		if err := decodeStrict(data, &nodes); err != nil {
			return nil, err
		}
		trees := make([]*tree.Node, len(nodes))
		for i, n := range nodes {
			trees[i] = n.tree()
		}
		return trees, nil
	}

	var n *node
	if err := decodeStrict(data, &n); err != nil {
		return nil, err
	}
	return []*tree.Node{n.tree()}, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode tree")
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidInput, "decode tree: unexpected data after top-level value")
	}
	return nil
}

// ImportJSON reads the trees in the JSON file at path.
//
// A missing file is reported with code FILE_NOT_FOUND. Decoding errors are
// the same as for [ReadJSON].
func ImportJSON(path string) ([]*tree.Node, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ImportLevelOrder reads the level-order trees in the file at path.
func ImportLevelOrder(path string) ([]*tree.Node, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLevelOrder(f)
}

func openFile(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	return f, nil
}

// absentTokens mark a missing node in level-order input.
var absentTokens = map[string]bool{
	"null": true,
	"nil":  true,
	"#":    true,
	"-":    true,
}

// ReadLevelOrder decodes level-order trees from r, one per non-blank line.
// Surrounding brackets are ignored, so "[1,2,null,3]" and "1 2 # 3" describe
// the same tree.
//
// Trailing absent tokens are allowed. A present token left over after every
// node has received its children is an error.
func ReadLevelOrder(r io.Reader) ([]*tree.Node, error) {
	var trees []*tree.Node
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		tokens := levelOrderTokens(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		t, err := parseLevelOrder(tokens)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", lineNo)
		}
		trees = append(trees, t)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input")
	}
	if len(trees) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no trees in input")
	}
	return trees, nil
}

func levelOrderTokens(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseLevelOrder(tokens []string) (*tree.Node, error) {
	nodeFor := func(tok string) *tree.Node {
		if absentTokens[tok] {
			return nil
		}
		return tree.Leaf(unquote(tok))
	}

	root := nodeFor(tokens[0])
	queue := []*tree.Node{}
	if root != nil {
		queue = append(queue, root)
	}

	i := 1
	for len(queue) > 0 && i < len(tokens) {
		parent := queue[0]
		queue = queue[1:]

		parent.L = nodeFor(tokens[i])
		i++
		if i < len(tokens) {
			parent.R = nodeFor(tokens[i])
			i++
		}
		for _, child := range []*tree.Node{parent.L, parent.R} {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}

	for ; i < len(tokens); i++ {
		if !absentTokens[tokens[i]] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "token %q at position %d has no parent", tokens[i], i+1)
		}
	}
	return root, nil
}

// unquote strips one pair of matching double or single quotes.
func unquote(tok string) string {
	if len(tok) >= 2 {
		if q := tok[0]; (q == '"' || q == '\'') && tok[len(tok)-1] == q {
			return tok[1 : len(tok)-1]
		}
	}
	return tok
}
