// Package pkg provides the libraries behind displaytree.
//
// # Overview
//
// displaytree draws an arbitrary-arity tree as a block of text: each label
// is centered over the span of its children and joined to them by branch
// glyphs. The pkg directory is organized as follows:
//
//   - [tree] - Nodes, the layout passes and text rendering
//   - [io] - JSON and TOML tree documents
//   - [render/nodelink] - DOT and SVG output
//   - [pipeline] - Orchestration (parse → layout → render) with caching
//   - [cache], [observability], [errors], [buildinfo] - Infrastructure
//
// # Quick Start
//
//	root := tree.MustNew("root", tree.WithChildren(
//	    tree.MustNew("left"),
//	    tree.MustNew("right"),
//	))
//	fmt.Println(root)
//
// Output:
//
//	   root
//	 /     \
//	left right
//
// Reading a document from disk:
//
//	root, err := io.Import("tree.toml", io.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	text, err := root.Render()
//
// [tree]: github.com/matzehuels/displaytree/pkg/tree
// [io]: github.com/matzehuels/displaytree/pkg/io
// [render/nodelink]: github.com/matzehuels/displaytree/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/displaytree/pkg/pipeline
// [cache]: github.com/matzehuels/displaytree/pkg/cache
// [observability]: github.com/matzehuels/displaytree/pkg/observability
// [errors]: github.com/matzehuels/displaytree/pkg/errors
// [buildinfo]: github.com/matzehuels/displaytree/pkg/buildinfo
package pkg
