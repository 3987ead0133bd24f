package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/displaytree/pkg/errors"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// toDocument converts the subtree rooted at n. Padding and branches are
// written only where they differ from style, so a document read with one
// style and written with the same style comes out unchanged.
func toDocument(n *tree.Node, style Style) document {
	doc := document{Value: exportValue(n)}
	if p := n.Padding(); p != style.Padding {
		doc.Padding = &p
	}
	if b := n.Branches(); b != style.Branches {
		doc.Branches = b.String()
	}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, toDocument(c, style))
	}
	return doc
}

// exportValue keeps scalar payloads typed and falls back to the label for
// anything a document cannot hold.
func exportValue(n *tree.Node) any {
	switch v := n.Value().(type) {
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	}
	return n.Label()
}

// tomlNumbers turns JSON number literals back into TOML integers or floats.
func tomlNumbers(doc *document) {
	if num, ok := doc.Value.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			doc.Value = i
		} else if f, err := num.Float64(); err == nil {
			doc.Value = f
		}
	}
	for i := range doc.Children {
		tomlNumbers(&doc.Children[i])
	}
}

// WriteJSON encodes the tree rooted at n as an indented JSON document.
func WriteJSON(n *tree.Node, w io.Writer, style Style) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(n, style)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes the tree rooted at n as a TOML document.
func WriteTOML(n *tree.Node, w io.Writer, style Style) error {
	doc := toDocument(n, style)
	tomlNumbers(&doc)
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write encodes the tree in the given format.
func Write(n *tree.Node, w io.Writer, format string, style Style) error {
	switch format {
	case FormatJSON:
		return WriteJSON(n, w, style)
	case FormatTOML:
		return WriteTOML(n, w, style)
	}
	return errors.ValidateFormat(format, Formats...)
}

// Export writes the tree to path, inferring the format from the extension.
func Export(n *tree.Node, path string, style Style) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Write(n, f, format, style)
}
