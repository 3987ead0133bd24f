package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/displaytree/pkg/tree"
)

func sample() *tree.Node {
	return tree.MustNew("abdcaddashdo", tree.WithChildren(
		tree.MustNew("b", tree.WithChildren(tree.MustNew(122), tree.MustNew(2))),
		tree.MustNew("c"),
	))
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	wantLines := []string{
		`n0 [label="abdcaddashdo"];`,
		`n1 [label="b"];`,
		`n2 [label="122"];`,
		`n3 [label="2"];`,
		`n4 [label="c"];`,
		"n0 -> n1;",
		"n1 -> n2;",
		"n1 -> n3;",
		"n0 -> n4;",
		"ordering=out;",
	}
	for _, want := range wantLines {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("DOT output not a digraph:\n%s", dot)
	}
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("edge count = %d, want 4", got)
	}
}

func TestToDOTEdgeOrder(t *testing.T) {
	dot := ToDOT(sample(), Options{})
	if strings.Index(dot, "n1 -> n2;") > strings.Index(dot, "n1 -> n3;") {
		t.Error("edges should follow child order")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sample(), Options{Detailed: true})
	if !strings.Contains(dot, `abdcaddashdo\nh: 3  w: 12\nsw: 7  pad: 2/3`) {
		t.Errorf("detailed label missing metrics:\n%s", dot)
	}
}

func TestToDOTEscapesLabels(t *testing.T) {
	dot := ToDOT(tree.MustNew(`say "hi"`), Options{})
	if !strings.Contains(dot, `label="say \"hi\""`) {
		t.Errorf("label not escaped:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites header",
			in:   `<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	root := tree.MustNew("ü→", tree.WithChildren(tree.MustNew(`a\b`), tree.MustNew("c")))
	svg, err := RenderSVG(context.Background(), ToDOT(root, Options{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	out := string(svg)
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("RenderSVG() header not normalized:\n%s", out)
	}
	if got := strings.Count(out, `<g id="node`); got != root.Len() {
		t.Errorf("node groups = %d, want %d", got, root.Len())
	}
	if !strings.Contains(out, "ü→") {
		t.Error("RenderSVG() output missing root label")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph G { n0 -> "); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
