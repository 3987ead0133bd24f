package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/displaytree/pkg/errors"
)

// Field selects one column of the [Node.Dump] trace.
type Field string

// Fields understood by Dump. The string values are the keys printed in the
// trace.
const (
	FieldValue    Field = "v"
	FieldPadding  Field = "p"
	FieldBranches Field = "b"
	FieldHeight   Field = "h"
	FieldWidth    Field = "w"
	FieldSubWidth Field = "sw"
	FieldPadLeft  Field = "pl"
	FieldPadRight Field = "pr"
)

// DefaultFields is the field list used when Dump is called without one.
var DefaultFields = []Field{
	FieldValue, FieldPadding, FieldBranches,
	FieldHeight, FieldWidth, FieldSubWidth, FieldPadLeft, FieldPadRight,
}

var fieldNames = map[string]Field{
	"value":    FieldValue,
	"padding":  FieldPadding,
	"branches": FieldBranches,
	"height":   FieldHeight,
	"width":    FieldWidth,
	"subwidth": FieldSubWidth,
	"padleft":  FieldPadLeft,
	"padright": FieldPadRight,
}

// ParseFields reads a comma-separated field list. Both long names
// ("height") and trace keys ("h") are accepted. An empty string yields
// [DefaultFields].
func ParseFields(s string) ([]Field, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultFields, nil
	}
	var out []Field
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if f, ok := fieldNames[name]; ok {
			out = append(out, f)
			continue
		}
		if f := Field(name); f.known() {
			out = append(out, f)
			continue
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown dump field %q", part)
	}
	return out, nil
}

func (f Field) known() bool {
	for _, d := range DefaultFields {
		if d == f {
			return true
		}
	}
	return false
}

// Name returns the long name of f, as accepted by [ParseFields].
func (f Field) Name() string {
	for name, field := range fieldNames {
		if field == f {
			return name
		}
	}
	return string(f)
}

// Format returns the field's value for n as printed in the trace.
func (f Field) Format(n *Node) string {
	switch f {
	case FieldValue:
		return n.label
	case FieldPadding:
		return strconv.Itoa(n.padding)
	case FieldBranches:
		return n.branches.String()
	case FieldHeight:
		return strconv.Itoa(n.m.Height)
	case FieldWidth:
		return strconv.Itoa(n.m.Width)
	case FieldSubWidth:
		return strconv.Itoa(n.m.SubWidth)
	case FieldPadLeft:
		return strconv.Itoa(n.m.PadLeft)
	case FieldPadRight:
		return strconv.Itoa(n.m.PadRight)
	}
	return ""
}

// Dump lays out the tree and writes one line per node in pre-order:
//
//	v:abdcaddashdo; p:1; b:/|\; h:3; w:12; sw:7; pl:2; pr:3
//	L v:b; p:1; b:/|\; h:2; w:5; sw:5; pl:0; pr:0
//	  L v:122; ...
//
// Without fields, [DefaultFields] are printed.
func (n *Node) Dump(w io.Writer, fields ...Field) error {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	n.Layout()

	var err error
	n.Walk(func(node *Node, depth int) bool {
		if err != nil {
			return false
		}
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = string(f) + ":" + f.Format(node)
		}
		_, err = fmt.Fprintln(w, dumpIndent(depth)+strings.Join(parts, "; "))
		return err == nil
	})
	return err
}

func dumpIndent(depth int) string {
	if depth == 0 {
		return ""
	}
	return strings.Repeat("  ", depth-1) + "L "
}
