package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/displaytree/pkg/errors"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// Document formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Formats lists the supported document formats.
var Formats = []string{FormatJSON, FormatTOML}

// document is the on-disk shape of one node.
type document struct {
	Value    any        `json:"value" toml:"value"`
	Padding  *int       `json:"padding,omitempty" toml:"padding,omitempty"`
	Branches string     `json:"branches,omitempty" toml:"branches,omitempty"`
	Children []document `json:"children,omitempty" toml:"children,omitempty"`
}

// Style holds the settings applied to nodes that don't carry their own.
type Style struct {
	Padding  int
	Branches tree.Branches
}

// DefaultStyle returns the tree package defaults.
func DefaultStyle() Style {
	return Style{Padding: tree.DefaultPadding, Branches: tree.DefaultBranches}
}

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if err := errors.ValidateFormat(ext, Formats...); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "cannot infer format of %s", path)
	}
	return ext, nil
}

// Read decodes a tree document in the given format from r.
// Read does not close r.
func Read(r io.Reader, format string, style Style) (*tree.Node, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r, style)
	case FormatTOML:
		return ReadTOML(r, style)
	}
	return nil, errors.ValidateFormat(format, Formats...)
}

// ReadJSON decodes a JSON tree document from r. Numbers keep their literal
// text, so 122 is labelled "122" and 1.50 is labelled "1.50".
func ReadJSON(r io.Reader, style Style) (*tree.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON tree")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "decode JSON tree: unexpected data after root object")
	}
	return build(doc, style, "root")
}

// ReadTOML decodes a TOML tree document from r.
func ReadTOML(r io.Reader, style Style) (*tree.Node, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML tree")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown key %q in TOML tree", undecoded[0].String())
	}
	return build(doc, style, "root")
}

// Import reads a tree document from path, inferring the format from the
// file extension.
func Import(path string, style Style) (*tree.Node, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format, style)
}

// build constructs the subtree for doc bottom-up.
func build(doc document, style Style, path string) (*tree.Node, error) {
	if doc.Value == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: missing value", path)
	}
	switch doc.Value.(type) {
	case string, json.Number, int64, float64, bool:
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%s: value must be a string, number or boolean, got %T", path, doc.Value)
	}

	padding := style.Padding
	if doc.Padding != nil {
		padding = *doc.Padding
	}
	branches := style.Branches
	if doc.Branches != "" {
		b, err := tree.ParseBranches(doc.Branches)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfiguration, err, "%s", path)
		}
		branches = b
	}

	children := make([]*tree.Node, 0, len(doc.Children))
	for i, c := range doc.Children {
		child, err := build(c, style, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	n, err := tree.New(doc.Value,
		tree.WithPadding(padding),
		tree.WithBranches(branches),
		tree.WithChildren(children...),
	)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return n, nil
}
