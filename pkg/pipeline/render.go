package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/displaytree/pkg/errors"
	dtio "github.com/matzehuels/displaytree/pkg/io"
	"github.com/matzehuels/displaytree/pkg/render/nodelink"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// Render generates one output artifact for root. Text output ends with a
// newline so it can be written to a terminal or file unchanged.
func Render(ctx context.Context, root *tree.Node, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		s, err := root.Render()
		if err != nil {
			return nil, err
		}
		return []byte(s + "\n"), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		dot := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed})
		return nodelink.RenderSVG(ctx, dot)
	case FormatJSON, FormatTOML:
		var buf bytes.Buffer
		if err := dtio.Write(root, &buf, format, opts.Style()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
