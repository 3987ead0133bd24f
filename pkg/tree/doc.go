// Package tree lays out and renders an arbitrary-arity tree as a rectangular
// block of text.
//
// # Overview
//
// Each [Node] holds a value, its ordered children, a sibling padding and a
// set of three branch glyphs. Rendering draws the node's label, one connector
// glyph above each child, and the children's own blocks below, with every
// parent centered over the combined span of its children:
//
//	abdcaddashdo
//	    /   \
//	    b   c
//	   /  \
//	  122 2
//
// # Layout
//
// [Node.Render] runs three passes over the tree:
//
//  1. Upward (post-order): each node's height and width. A leaf is as wide
//     as its label; an internal node is as wide as the larger of its label
//     and the sum of its children's widths plus the padding between them.
//  2. Downward (pre-order): when a label is wider than the children below
//     it, the excess is split into left and right pad, with the right side
//     taking the odd column.
//  3. Composition (post-order): each node becomes a rectangular [block] of
//     rows, all exactly as wide as the node. Children of differing depth are
//     padded with blank rows at the bottom so shallow subtrees stay close
//     to their connector.
//
// Layout is recomputed on every call. Nodes can be attached with [Node.Add]
// between renders; metrics read in between are stale until the next
// [Node.Layout] or [Node.Render].
//
// # Widths
//
// Label widths are terminal display columns as measured by
// [github.com/mattn/go-runewidth], so labels with wide characters stay
// aligned. Branch glyphs must be exactly one column wide.
//
// # Errors
//
// Construction fails with an [errors.ErrCodeConfiguration] error for a
// negative padding, a malformed glyph set, a multi-line or empty label, or
// an invalid parent/child wiring. Rendering fails only with
// [errors.ErrCodeBlockConsistency], which signals a defect in the layout
// passes and is never expected for a tree built through this package.
//
// # Concurrency
//
// A Node is not safe for concurrent use. Render writes cached metrics into
// every node of the tree, so two renders of the same tree must not overlap.
//
// [errors.ErrCodeConfiguration]: github.com/matzehuels/displaytree/pkg/errors.ErrCodeConfiguration
// [errors.ErrCodeBlockConsistency]: github.com/matzehuels/displaytree/pkg/errors.ErrCodeBlockConsistency
package tree
