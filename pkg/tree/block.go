package tree

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/displaytree/pkg/errors"
)

// block is a rectangular grid of text rows. Every row of a well-formed
// block has the same display width.
type block []string

// blank returns height rows of width spaces.
func blank(height, width int) block {
	row := strings.Repeat(" ", width)
	b := make(block, height)
	for i := range b {
		b[i] = row
	}
	return b
}

// padBottom appends blank rows of the given width until b has height rows.
func (b block) padBottom(height, width int) block {
	for len(b) < height {
		b = append(b, strings.Repeat(" ", width))
	}
	return b
}

// hstack joins blocks side by side row by row. All blocks must have the
// given height.
func hstack(height int, blocks ...block) block {
	rows := make([]strings.Builder, height)
	for _, b := range blocks {
		for i, row := range b {
			rows[i].WriteString(row)
		}
	}
	out := make(block, height)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// center places s in the middle of width columns. The left side gets the
// floor of the slack. Text wider than width is returned unchanged so the
// consistency check can report it.
func center(s string, width int) string {
	slack := width - runewidth.StringWidth(s)
	if slack <= 0 {
		return s
	}
	left := slack / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", slack-left)
}

// verify checks that b has the row count and width a node's metrics call for.
func (b block) verify(n *Node) error {
	if want := 2*n.m.Height - 1; len(b) != want {
		return errors.New(errors.ErrCodeBlockConsistency,
			"block for %q has %d rows, want %d", n.label, len(b), want)
	}
	for i, row := range b {
		if w := runewidth.StringWidth(row); w != n.m.Width {
			return errors.New(errors.ErrCodeBlockConsistency,
				"block for %q: row %d has width %d, want %d", n.label, i, w, n.m.Width)
		}
	}
	return nil
}

// compose renders the subtree rooted at n. Metrics must be current.
func (n *Node) compose() (block, error) {
	if n.IsLeaf() {
		row := strings.Repeat(" ", n.m.PadLeft) + n.label + strings.Repeat(" ", n.m.PadRight)
		b := block{row}
		return b, b.verify(n)
	}

	bodyHeight := 2 * (n.m.Height - 1)
	parts := make([]block, 0, 2*len(n.children)+1)
	parts = append(parts, blank(bodyHeight, n.m.PadLeft))
	for i, c := range n.children {
		cb, err := c.compose()
		if err != nil {
			return nil, err
		}
		if i > 0 {
			parts = append(parts, blank(bodyHeight, n.padding))
		}
		connector := center(string(n.branches.glyph(i, len(n.children))), c.m.Width)
		child := append(block{connector}, cb...)
		if len(child) > bodyHeight {
			return nil, errors.New(errors.ErrCodeBlockConsistency,
				"child %q of %q needs %d rows, parent has %d", c.label, n.label, len(child), bodyHeight)
		}
		parts = append(parts, child.padBottom(bodyHeight, c.m.Width))
	}
	parts = append(parts, blank(bodyHeight, n.m.PadRight))

	b := append(block{center(n.label, n.m.Width)}, hstack(bodyHeight, parts...)...)
	return b, b.verify(n)
}
