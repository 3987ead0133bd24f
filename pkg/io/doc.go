// Package io provides JSON and TOML import and export for display trees.
//
// # Overview
//
// A tree document describes one node and, recursively, its children. The
// format is designed for:
//
//   - Rendering trees produced by other tools without writing Go
//   - Keeping hand-written trees under version control (TOML reads well)
//   - Round-trip preservation: import, export, and re-import identically
//
// # JSON Format
//
//	{
//	  "value": "abdcaddashdo",
//	  "children": [
//	    {"value": "b", "children": [{"value": 122}, {"value": 2}]},
//	    {"value": "c"}
//	  ]
//	}
//
// # TOML Format
//
// The same keys, with children as arrays of tables:
//
//	value = "abdcaddashdo"
//
//	[[children]]
//	value = "b"
//
//	  [[children.children]]
//	  value = 122
//
//	  [[children.children]]
//	  value = 2
//
//	[[children]]
//	value = "c"
//
// # Node Fields
//
// Required:
//   - value: string, number or boolean; its text is the node's label
//
// Optional:
//   - padding: columns between this node's child blocks
//   - branches: three connector glyphs, left/middle/right (e.g. "/|\\")
//   - children: ordered child nodes
//
// Nodes without padding or branches use the [Style] passed to [Read],
// which the CLI fills from its --padding and --branches flags.
//
// # Errors
//
// Malformed documents fail with an INVALID_INPUT error, and settings the
// tree rejects with a CONFIGURATION error. Both name the offending node by
// its path from the root, e.g. "root.children[1].children[0]".
package io
