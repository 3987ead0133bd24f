package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/displaytree/pkg/errors"
	"github.com/matzehuels/displaytree/pkg/tree"
)

const sampleJSON = `{
  "value": "abdcaddashdo",
  "children": [
    {"value": "b", "children": [{"value": 122}, {"value": 2}]},
    {"value": "c"}
  ]
}`

const sampleTOML = `
value = "abdcaddashdo"

[[children]]
value = "b"

  [[children.children]]
  value = 122

  [[children.children]]
  value = 2

[[children]]
value = "c"
`

const sampleRender = "abdcaddashdo\n" +
	"    /   \\   \n" +
	"    b   c   \n" +
	"   /  \\     \n" +
	"  122 2     "

func render(t *testing.T, n *tree.Node) string {
	t.Helper()
	out, err := n.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return out
}

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
	}{
		{"json", FormatJSON, sampleJSON},
		{"toml", FormatTOML, sampleTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Read(strings.NewReader(tt.input), tt.format, DefaultStyle())
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if root.Len() != 5 {
				t.Errorf("Len() = %d, want 5", root.Len())
			}
			if got := render(t, root); got != sampleRender {
				t.Errorf("render =\n%q\nwant\n%q", got, sampleRender)
			}
		})
	}
}

func TestReadNodeSettings(t *testing.T) {
	input := `{"value": "p", "padding": 3, "branches": "<^>", "children": [{"value": "x"}, {"value": "y"}]}`
	root, err := ReadJSON(strings.NewReader(input), DefaultStyle())
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	want := "  p  \n<   >\nx   y"
	if got := render(t, root); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestReadStyleDefaults(t *testing.T) {
	style := Style{Padding: 0, Branches: tree.Branches{Left: '+', Middle: '+', Right: '+'}}
	input := `{"value": "p", "children": [{"value": "x"}, {"value": "y", "padding": 2}]}`
	root, err := ReadJSON(strings.NewReader(input), style)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if root.Padding() != 0 || root.Branches() != style.Branches {
		t.Errorf("root style = %d %v, want 0 %v", root.Padding(), root.Branches(), style.Branches)
	}
	if got := root.Children()[1].Padding(); got != 2 {
		t.Errorf("explicit padding = %d, want 2", got)
	}
}

func TestReadNumberLabels(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(`{"value": 1.50, "children": [{"value": true}]}`), DefaultStyle())
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if root.Label() != "1.50" {
		t.Errorf("Label() = %q, want %q", root.Label(), "1.50")
	}
	if got := root.Children()[0].Label(); got != "true" {
		t.Errorf("child Label() = %q, want %q", got, "true")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		code   errors.Code
		path   string
	}{
		{"malformed json", FormatJSON, `{"value": `, errors.ErrCodeInvalidInput, ""},
		{"unknown json field", FormatJSON, `{"value": "a", "colour": "red"}`, errors.ErrCodeInvalidInput, ""},
		{"missing value", FormatJSON, `{"children": []}`, errors.ErrCodeInvalidInput, "root"},
		{"object value", FormatJSON, `{"value": {"a": 1}}`, errors.ErrCodeInvalidInput, "root"},
		{"nested missing value", FormatJSON, `{"value": "r", "children": [{"value": "a"}, {}]}`, errors.ErrCodeInvalidInput, "root.children[1]"},
		{"bad branches", FormatJSON, `{"value": "r", "branches": "/|"}`, errors.ErrCodeConfiguration, "root"},
		{"negative padding", FormatJSON, `{"value": "r", "children": [{"value": "a", "padding": -1}]}`, errors.ErrCodeConfiguration, "root.children[0]"},
		{"empty label", FormatJSON, `{"value": ""}`, errors.ErrCodeConfiguration, "root"},
		{"zero-width label", FormatJSON, `{"value": "r", "children": [{"value": "\u200b"}]}`, errors.ErrCodeConfiguration, "root.children[0]"},
		{"second json document", FormatJSON, `{"value": "a"} {"value": "b"}`, errors.ErrCodeInvalidInput, "after root"},
		{"trailing json garbage", FormatJSON, `{"value": "a"}]`, errors.ErrCodeInvalidInput, ""},
		{"malformed toml", FormatTOML, `value = `, errors.ErrCodeInvalidInput, ""},
		{"unknown toml key", FormatTOML, "value = \"a\"\ncolour = \"red\"", errors.ErrCodeInvalidInput, "colour"},
		{"array value", FormatTOML, `value = [1, 2]`, errors.ErrCodeInvalidInput, "root"},
		{"unsupported format", "yaml", `value: a`, errors.ErrCodeInvalidFormat, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format, DefaultStyle())
			if err == nil {
				t.Fatal("Read() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
			if tt.path != "" && !strings.Contains(err.Error(), tt.path) {
				t.Errorf("error %q should mention %q", err.Error(), tt.path)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			orig := tree.MustNew("root", tree.WithPadding(2), tree.WithChildren(
				tree.MustNew("a", tree.WithBranches(tree.Branches{Left: '<', Middle: '^', Right: '>'}),
					tree.WithChildren(tree.MustNew(1), tree.MustNew(2))),
				tree.MustNew(3.5),
			))

			var first bytes.Buffer
			if err := Write(orig, &first, format, DefaultStyle()); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			back, err := Read(bytes.NewReader(first.Bytes()), format, DefaultStyle())
			if err != nil {
				t.Fatalf("Read() error: %v\n%s", err, first.String())
			}
			if render(t, back) != render(t, orig) {
				t.Errorf("round trip changed rendering:\n%s\nvs\n%s", render(t, back), render(t, orig))
			}

			var second bytes.Buffer
			if err := Write(back, &second, format, DefaultStyle()); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			if first.String() != second.String() {
				t.Errorf("re-export differs:\n%s\nvs\n%s", first.String(), second.String())
			}
		})
	}
}

func TestWriteJSONOmitsDefaults(t *testing.T) {
	var buf bytes.Buffer
	root := tree.MustNew("r", tree.WithChildren(tree.MustNew("a")))
	if err := WriteJSON(root, &buf, DefaultStyle()); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "padding") || strings.Contains(out, "branches") {
		t.Errorf("default settings should be omitted:\n%s", out)
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(src, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := Import(src, DefaultStyle())
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	dst := filepath.Join(dir, "sample.toml")
	if err := Export(root, dst, DefaultStyle()); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	back, err := Import(dst, DefaultStyle())
	if err != nil {
		t.Fatalf("Import(toml) error: %v", err)
	}
	if got := render(t, back); got != sampleRender {
		t.Errorf("render after export =\n%q\nwant\n%q", got, sampleRender)
	}
}

func TestReadJSONTrailingWhitespace(t *testing.T) {
	root, err := ReadJSON(strings.NewReader("{\"value\": \"a\"}\n\n  "), DefaultStyle())
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if root.Label() != "a" {
		t.Errorf("root = %q, want a", root.Label())
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	root := tree.MustNew("r")

	if err := Export(root, filepath.Join(dir, "missing", "tree.json"), DefaultStyle()); err == nil {
		t.Error("Export() into a missing directory should fail")
	}
	err := Export(root, filepath.Join(dir, "tree.yaml"), DefaultStyle())
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Export(yaml) error = %v, want code %v", err, errors.ErrCodeInvalidFormat)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "tree.yaml")); !os.IsNotExist(statErr) {
		t.Error("Export() should not create a file for an unsupported format")
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing file", filepath.Join(dir, "missing.json"), errors.ErrCodeFileNotFound},
		{"unknown extension", filepath.Join(dir, "tree.yaml"), errors.ErrCodeInvalidFormat},
		{"empty path", "", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.path, DefaultStyle())
			if !errors.Is(err, tt.code) {
				t.Errorf("Import(%q) error = %v, want code %v", tt.path, err, tt.code)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"tree.json", FormatJSON, false},
		{"dir/Tree.TOML", FormatTOML, false},
		{"tree", "", true},
		{"tree.txt", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q, wantErr %v", tt.path, got, err, tt.want, tt.wantErr)
		}
	}
}
