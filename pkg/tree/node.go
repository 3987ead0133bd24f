package tree

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/displaytree/pkg/errors"
)

// DefaultPadding is the number of blank columns between sibling blocks.
const DefaultPadding = 1

// DefaultBranches are the connector glyphs used when none are configured.
var DefaultBranches = Branches{Left: '/', Middle: '|', Right: '\\'}

// Branches holds the connector glyphs drawn above a node's children. The
// leftmost child gets Left, the rightmost gets Right, and every other child,
// including a sole child, gets Middle.
type Branches struct {
	Left   rune
	Middle rune
	Right  rune
}

// ParseBranches reads a glyph set from a three-character string such as
// "/|\". Anything other than exactly three one-column glyphs is rejected.
func ParseBranches(s string) (Branches, error) {
	runes := []rune(s)
	if len(runes) != 3 {
		return Branches{}, errors.New(errors.ErrCodeConfiguration,
			"branch glyphs must be exactly 3 characters, got %d in %q", len(runes), s)
	}
	b := Branches{Left: runes[0], Middle: runes[1], Right: runes[2]}
	if err := b.Validate(); err != nil {
		return Branches{}, err
	}
	return b, nil
}

// Validate checks that every glyph occupies exactly one terminal column.
func (b Branches) Validate() error {
	for _, r := range []rune{b.Left, b.Middle, b.Right} {
		if err := errors.ValidateGlyph(r); err != nil {
			return err
		}
	}
	return nil
}

// String returns the glyphs in left, middle, right order.
func (b Branches) String() string {
	return string([]rune{b.Left, b.Middle, b.Right})
}

// glyph selects the connector for child i of n.
func (b Branches) glyph(i, n int) rune {
	switch {
	case n == 1:
		return b.Middle
	case i == 0:
		return b.Left
	case i == n-1:
		return b.Right
	default:
		return b.Middle
	}
}

// Option configures a Node during [New].
type Option func(*Node)

// WithChildren attaches children in rendering order, left to right.
func WithChildren(children ...*Node) Option {
	return func(n *Node) { n.pending = append(n.pending, children...) }
}

// WithPadding sets the blank columns inserted between adjacent child blocks.
func WithPadding(p int) Option {
	return func(n *Node) { n.padding = p }
}

// WithBranches sets the connector glyphs drawn above the node's children.
func WithBranches(b Branches) Option {
	return func(n *Node) { n.branches = b }
}

// Node is a tree vertex: a value, its ordered children, display settings
// and the layout metrics computed by the most recent [Node.Layout].
//
// The zero value is not usable; create nodes with [New] or [MustNew].
type Node struct {
	value    any
	label    string
	children []*Node
	parent   *Node // non-owning, bookkeeping only
	padding  int
	branches Branches

	// pending collects WithChildren arguments until New validates them.
	pending []*Node

	m       Metrics
	laidOut bool
}

// New creates a node holding value. Children passed through [WithChildren]
// have their parent set to the new node.
//
// New returns an [errors.ErrCodeConfiguration] error, and no node, when the
// padding is negative, a glyph is not one column wide, the value's label is
// empty or spans several lines, or a child is nil, repeated, or already
// attached elsewhere.
func New(value any, opts ...Option) (*Node, error) {
	n := &Node{
		value:    value,
		label:    fmt.Sprint(value),
		children: []*Node{},
		padding:  DefaultPadding,
		branches: DefaultBranches,
	}
	for _, opt := range opts {
		opt(n)
	}

	if err := validateLabel(n.label); err != nil {
		return nil, err
	}
	if err := errors.ValidatePadding(n.padding); err != nil {
		return nil, err
	}
	if err := n.branches.Validate(); err != nil {
		return nil, err
	}

	pending := n.pending
	n.pending = nil
	if err := n.Add(pending...); err != nil {
		return nil, err
	}
	return n, nil
}

// MustNew is like [New] but panics on error. It is meant for trees written
// as nested literals, where a construction error is a programming mistake.
func MustNew(value any, opts ...Option) *Node {
	n, err := New(value, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Add appends children after construction. Either all children are attached
// or, on error, none are.
func (n *Node) Add(children ...*Node) error {
	seen := make(map[*Node]bool, len(children))
	for i, c := range children {
		switch {
		case c == nil:
			return errors.New(errors.ErrCodeConfiguration, "child %d of %q is nil", i, n.label)
		case seen[c]:
			return errors.New(errors.ErrCodeConfiguration, "child %q given twice to %q", c.label, n.label)
		case c.parent != nil:
			return errors.New(errors.ErrCodeConfiguration,
				"child %q already has parent %q", c.label, c.parent.label)
		case c.isAncestorOf(n):
			return errors.New(errors.ErrCodeConfiguration,
				"attaching %q under %q would create a cycle", c.label, n.label)
		}
		seen[c] = true
	}

	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return nil
}

// isAncestorOf reports whether n is other or lies on other's parent chain.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func validateLabel(label string) error {
	if label == "" {
		return errors.New(errors.ErrCodeConfiguration, "node label must not be empty")
	}
	if strings.ContainsAny(label, "\n\r\t\v\f") {
		return errors.New(errors.ErrCodeConfiguration, "node label %q must be a single line", label)
	}
	if strings.IndexFunc(label, unicode.IsControl) >= 0 {
		return errors.New(errors.ErrCodeConfiguration, "node label %q contains control characters", label)
	}
	if runewidth.StringWidth(label) == 0 {
		return errors.New(errors.ErrCodeConfiguration, "node label %q has no display width", label)
	}
	return nil
}

// Value returns the payload the node was created with.
func (n *Node) Value() any { return n.value }

// Label returns the text drawn for the node.
func (n *Node) Label() string { return n.label }

// Children returns the node's children in rendering order. The returned
// slice is a copy.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Parent returns the node this node is attached to, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Padding returns the blank columns placed between child blocks.
func (n *Node) Padding() int { return n.padding }

// Branches returns the node's connector glyphs.
func (n *Node) Branches() Branches { return n.branches }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Len returns the number of nodes in the subtree rooted at n.
func (n *Node) Len() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Walk visits the subtree rooted at n in pre-order, passing each node's
// depth relative to n. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}
