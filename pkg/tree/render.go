package tree

import "strings"

// Render lays out the tree rooted at n and returns it as newline-separated
// rows. Every row is exactly [Node.Width] columns wide; trailing spaces are
// kept so the result stays rectangular.
//
// Render has no side effects beyond refreshing the cached metrics of each
// node. Calling it twice on an unchanged tree returns the same string.
func (n *Node) Render() (string, error) {
	rows, err := n.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}

// Lines is like [Node.Render] but returns the rows unjoined.
func (n *Node) Lines() ([]string, error) {
	n.Layout()
	b, err := n.compose()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// String implements [fmt.Stringer]. A consistency failure is a bug in this
// package rather than in the tree, so String panics instead of returning
// partial output.
func (n *Node) String() string {
	s, err := n.Render()
	if err != nil {
		panic(err)
	}
	return s
}
