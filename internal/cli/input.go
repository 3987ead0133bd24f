package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/displaytree/pkg/pipeline"
)

// demoDocument is the sample tree used by --demo.
const demoDocument = `{
  "value": "abdcaddashdo",
  "children": [
    {"value": "b", "children": [{"value": 122}, {"value": 2}]},
    {"value": "c"}
  ]
}`

// inputOpts holds the flags shared by every command that reads a tree.
type inputOpts struct {
	format   string // input format; inferred from the extension when empty
	padding  int
	branches string
	demo     bool
}

// register adds the input flags to cmd.
func (o *inputOpts) register(cmd *cobra.Command) {
	o.padding = pipeline.DefaultPadding
	o.branches = pipeline.DefaultBranches
	cmd.Flags().StringVar(&o.format, "input-format", "", "input format: json, toml (default: from extension, json for stdin)")
	cmd.Flags().IntVar(&o.padding, "padding", o.padding, "blank columns between siblings")
	cmd.Flags().StringVar(&o.branches, "branches", o.branches, "left, middle and right branch glyphs")
	cmd.Flags().BoolVar(&o.demo, "demo", false, "use the built-in sample tree instead of a file")
}

// options builds pipeline options for the tree named by args: a file path,
// "-" for stdin, or nothing with --demo.
func (o *inputOpts) options(cmd *cobra.Command, args []string) (pipeline.Options, error) {
	padding := o.padding
	opts := pipeline.Options{
		InputFormat: o.format,
		Padding:     &padding,
		Branches:    o.branches,
	}

	switch {
	case o.demo:
		if len(args) > 0 {
			return opts, fmt.Errorf("--demo takes no file argument")
		}
		opts.Path = "demo"
		opts.Input = []byte(demoDocument)
		opts.InputFormat = pipeline.DefaultInputFormat
	case len(args) == 0:
		return opts, fmt.Errorf("a tree file, - for stdin, or --demo is required")
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return opts, fmt.Errorf("read stdin: %w", err)
		}
		opts.Path = "-"
		opts.Input = data
	default:
		opts.Path = args[0]
	}
	return opts, nil
}
