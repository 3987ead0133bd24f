package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/displaytree/pkg/pipeline"
)

// viewCommand creates the view command, an interactive pager for trees too
// wide or tall for the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		input   inputOpts
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Scroll through a rendered tree",
		Long: `Render a tree and open it in a scrollable pager.

Rendered trees are never wrapped, so wide trees overflow the terminal.
Use the arrow keys or h/j/k/l to scroll, g/G to jump to the top or
bottom, and q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := input.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runView(cmd.Context(), opts, noCache)
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runView renders the tree as text and runs the pager.
func (c *CLI) runView(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Formats = []string{pipeline.FormatText}
	opts.Logger = loggerFromContext(ctx)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	text := strings.TrimSuffix(string(result.Artifacts[pipeline.FormatText]), "\n")
	model := newPagerModel(sourceName(opts.Path), strings.Split(text, "\n"))
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// pagerModel - two-axis scrolling over fixed-width rows
// =============================================================================

// pagerChrome is the number of terminal rows used by the title and footer.
const pagerChrome = 3

var pagerDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// pagerModel is the bubbletea model for the view command.
type pagerModel struct {
	title  string
	lines  []string
	cols   int // display width of the widest line
	row    int // first visible line
	col    int // first visible column
	width  int // viewport width
	height int // viewport height, excluding chrome
}

func newPagerModel(title string, lines []string) pagerModel {
	cols := 0
	for _, l := range lines {
		cols = max(cols, runewidth.StringWidth(l))
	}
	return pagerModel{title: title, lines: lines, cols: cols, width: 80, height: 20}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.row--
		case "down", "j":
			m.row++
		case "left", "h":
			m.col -= 4
		case "right", "l":
			m.col += 4
		case "pgup":
			m.row -= m.height
		case "pgdown", " ":
			m.row += m.height
		case "home", "g":
			m.row, m.col = 0, 0
		case "end", "G":
			m.row = len(m.lines)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height-pagerChrome, 1)
	}
	m.clamp()
	return m, nil
}

// clamp keeps the offsets inside the content.
func (m *pagerModel) clamp() {
	m.row = min(m.row, max(len(m.lines)-m.height, 0))
	m.row = max(m.row, 0)
	m.col = min(m.col, max(m.cols-m.width, 0))
	m.col = max(m.col, 0)
}

func (m pagerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n\n")

	end := min(m.row+m.height, len(m.lines))
	for _, line := range m.lines[m.row:end] {
		b.WriteString(slice(line, m.col, m.width))
		b.WriteString("\n")
	}

	b.WriteString(pagerDimStyle.Render(fmt.Sprintf("rows %d-%d/%d  cols %d-%d/%d  ←↓↑→ scroll  q quit",
		m.row+1, end, len(m.lines), m.col+1, min(m.col+m.width, m.cols), m.cols)))
	return b.String()
}

// slice returns the part of s between display columns from and from+width.
func slice(s string, from, width int) string {
	s = runewidth.TruncateLeft(s, from, "")
	return runewidth.Truncate(s, width, "")
}
