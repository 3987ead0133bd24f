// Package render groups the graphical renderers of a tree.
//
// The text diagram itself is produced by [tree.Node.Render]; the
// subpackages here draw the same tree in other notations:
//
//   - [nodelink]: Graphviz DOT, rendered to SVG in-process
//
// [tree.Node.Render]: github.com/matzehuels/displaytree/pkg/tree.Node.Render
// [nodelink]: github.com/matzehuels/displaytree/pkg/render/nodelink
package render
