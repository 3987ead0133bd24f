// Package nodelink renders display trees as node-link diagrams.
//
// # Overview
//
// The text renderer in [tree] draws a tree with ASCII connectors. This
// package draws the same tree with Graphviz, where nodes appear as boxes
// connected by arrows. It is meant for trees too wide for a terminal and for
// embedding in documents.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels include the layout metrics (height, width,
//     subtree width and pads) computed by [tree.Node.Layout]
//
// # DOT Format
//
// Nodes get pre-order identifiers n0, n1, ... so the output is stable for a
// given tree. The graph uses top-to-bottom layout (rankdir=TB) and
// ordering=out, which keeps children in their left-to-right order.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
//
// [tree]: github.com/matzehuels/displaytree/pkg/tree
// [tree.Node.Layout]: github.com/matzehuels/displaytree/pkg/tree.Node.Layout
package nodelink
