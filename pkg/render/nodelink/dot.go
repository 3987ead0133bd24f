package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/displaytree/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes layout metrics in node labels.
	// When false, only the node label is shown.
	Detailed bool
}

// ToDOT converts the tree rooted at root to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(root *tree.Node, opts Options) string {
	if opts.Detailed {
		root.Layout()
	}

	ids := make(map[*tree.Node]string)
	var nodes []*tree.Node
	root.Walk(func(n *tree.Node, _ int) bool {
		ids[n] = "n" + strconv.Itoa(len(nodes))
		nodes = append(nodes, n)
		return true
	})

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", ids[n], fmtLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[n], ids[c])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *tree.Node, detailed bool) string {
	if !detailed {
		return n.Label()
	}
	m, err := n.Metrics()
	if err != nil {
		return n.Label()
	}
	parts := []string{
		fmt.Sprintf("h: %d  w: %d", m.Height, m.Width),
		fmt.Sprintf("sw: %d  pad: %d/%d", m.SubWidth, m.PadLeft, m.PadRight),
	}
	return n.Label() + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with one
// whose width and height match the viewBox, so the SVG scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
