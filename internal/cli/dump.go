package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/displaytree/pkg/pipeline"
	"github.com/matzehuels/displaytree/pkg/tree"
)

// dumpCommand creates the dump command, which prints the layout metrics of
// every node.
func (c *CLI) dumpCommand() *cobra.Command {
	var (
		input     inputOpts
		fieldsStr string
		asTable   bool
	)

	cmd := &cobra.Command{
		Use:   "dump [file|-]",
		Short: "Print the layout metrics of every node",
		Long: `Print the layout metrics of every node in pre-order.

Fields (long name or key): value (v), padding (p), branches (b), height (h),
width (w), subwidth (sw), padleft (pl), padright (pr).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := tree.ParseFields(fieldsStr)
			if err != nil {
				return err
			}
			opts, err := input.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runDump(cmd.Context(), cmd.OutOrStdout(), opts, fields, asTable)
		},
	}

	input.register(cmd)
	cmd.Flags().StringVar(&fieldsStr, "fields", "", "comma-separated fields to print (default: all)")
	cmd.Flags().BoolVar(&asTable, "table", false, "print a table instead of the indented trace")

	return cmd
}

// runDump parses and lays out the tree, then writes its metrics.
func (c *CLI) runDump(ctx context.Context, w io.Writer, opts pipeline.Options, fields []tree.Field, asTable bool) error {
	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	input, err := pipeline.LoadInput(opts)
	if err != nil {
		return err
	}
	root, err := pipeline.Parse(input, opts)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	opts.Logger.Debug("parsed tree", "source", opts.Source(), "nodes", root.Len())

	if !asTable {
		return root.Dump(w, fields...)
	}
	_, err = fmt.Fprintln(w, metricsTable(root, fields).Render())
	return err
}

// metricsTable builds a lipgloss table with one row per node. The value
// column is indented by depth so the tree shape stays visible.
func metricsTable(root *tree.Node, fields []tree.Field) *table.Table {
	root.Layout()

	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Name()
	}

	var rows [][]string
	root.Walk(func(n *tree.Node, depth int) bool {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = f.Format(n)
			if f == tree.FieldValue {
				row[i] = strings.Repeat("  ", depth) + row[i]
			}
		}
		rows = append(rows, row)
		return true
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			return styleTableCell
		})
}
