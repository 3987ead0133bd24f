package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/displaytree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input    inputOpts
	output   string   // output file (single format) or base path (multiple)
	formats  []string // text, dot, svg, json, toml
	detailed bool     // include layout metrics in dot/svg node labels
	frame    bool     // draw a rounded border around text output
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a tree document",
		Long: `Render a tree document as a text diagram or in another format.

With a single format and no --output, the result is written to stdout.
With several formats, one file per format is written next to the input
(or next to --output, which then names the base path).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			pOpts, err := opts.input.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), pOpts, &opts)
		},
	}

	opts.input.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), dot, svg, json, toml (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show layout metrics in dot/svg nodes")
	cmd.Flags().BoolVar(&opts.frame, "frame", false, "draw a border around text output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

// runRender executes the pipeline and writes its artifacts.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, pOpts pipeline.Options, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pOpts.Formats = opts.formats
	pOpts.Detailed = opts.detailed
	pOpts.Refresh = opts.refresh
	pOpts.Logger = logger

	result, err := runner.Execute(ctx, pOpts)
	if err != nil {
		return err
	}
	if opts.frame {
		if text, ok := result.Artifacts[pipeline.FormatText]; ok {
			result.Artifacts[pipeline.FormatText] = framed(text)
		}
	}

	if len(opts.formats) == 1 && opts.output == "" {
		_, err := stdout.Write(result.Artifacts[opts.formats[0]])
		return err
	}

	paths := outputPaths(opts.formats, opts.output, pOpts.Path)
	for _, format := range opts.formats {
		if paths[format] == pOpts.Path {
			return fmt.Errorf("refusing to overwrite input %s with %s output", pOpts.Path, format)
		}
	}
	for _, format := range opts.formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
	}

	prog.done("Rendered tree")
	printSuccess(stdout, "Rendered %s", sourceName(pOpts.Path))
	printStats(stdout, result.Stats, result.CacheInfo.RenderHit)
	for _, format := range opts.formats {
		printFile(stdout, paths[format])
	}
	return nil
}

// framed draws StyleFrame around a text artifact.
func framed(text []byte) []byte {
	return []byte(StyleFrame.Render(strings.TrimSuffix(string(text), "\n")) + "\n")
}

// extension returns the file extension used for a format.
func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

// outputPaths maps each format to the file it is written to. A single
// format with an explicit output is written there verbatim; otherwise
// files share a base path derived from output or the input name.
func outputPaths(formats []string, output, input string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + extension(f)
	}
	return paths
}

// basePath derives the base output path from the output and input paths.
// Known format extensions are stripped from output; without output the
// input's extension is stripped. Stdin falls back to "tree".
func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		for _, f := range pipeline.Formats {
			if ext == "."+extension(f) {
				return strings.TrimSuffix(output, ext)
			}
		}
		return output
	}
	if input == "" || input == "-" {
		return "tree"
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// sourceName is how the input is named in status output.
func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
