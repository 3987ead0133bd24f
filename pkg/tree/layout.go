package tree

import (
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/displaytree/pkg/errors"
)

// Metrics are the layout values computed for one node.
type Metrics struct {
	// Height counts node levels from this node down to its deepest leaf.
	// A leaf has height 1.
	Height int
	// Width is the node's final rendered span in columns: the larger of
	// its label width and SubWidth.
	Width int
	// SubWidth is the span its children need side by side, including the
	// padding between them. For a leaf it equals the label width.
	SubWidth int
	// PadLeft and PadRight split Width-SubWidth around the children.
	// PadRight takes the odd column.
	PadLeft  int
	PadRight int
}

// Layout computes the metrics of every node in the subtree rooted at n,
// discarding whatever a previous layout left behind. Render calls it
// implicitly; call it directly to inspect metrics without composing text.
func (n *Node) Layout() {
	n.layoutUp()
	n.layoutDown()
}

// layoutUp computes heights and widths bottom-up.
func (n *Node) layoutUp() {
	n.laidOut = true
	labelWidth := runewidth.StringWidth(n.label)
	if n.IsLeaf() {
		n.m = Metrics{Height: 1, Width: labelWidth, SubWidth: labelWidth}
		return
	}

	height, sub := 0, 0
	for _, c := range n.children {
		c.layoutUp()
		height = max(height, c.m.Height)
		sub += c.m.Width
	}
	sub += n.padding * (len(n.children) - 1)

	n.m = Metrics{
		Height:   height + 1,
		Width:    max(sub, labelWidth),
		SubWidth: sub,
	}
}

// layoutDown distributes each node's excess width top-down. A node's excess
// depends only on its own label and children, so the recursion carries no
// state from parent to child.
func (n *Node) layoutDown() {
	n.m.PadLeft, n.m.PadRight = 0, 0
	if excess := n.m.Width - n.m.SubWidth; excess > 0 {
		n.m.PadLeft = excess / 2
		n.m.PadRight = excess - n.m.PadLeft
	}
	for _, c := range n.children {
		c.layoutDown()
	}
}

// Height returns the node's height from the most recent layout, or 0 if
// the node has never been laid out.
func (n *Node) Height() int { return n.m.Height }

// Width returns the node's rendered width from the most recent layout, or
// 0 if the node has never been laid out.
func (n *Node) Width() int { return n.m.Width }

// Metrics returns all layout values from the most recent layout. It fails
// with an [errors.ErrCodeNotRendered] error when no layout has run yet.
func (n *Node) Metrics() (Metrics, error) {
	if !n.laidOut {
		return Metrics{}, errors.New(errors.ErrCodeNotRendered, "node %q has not been laid out", n.label)
	}
	return n.m, nil
}
