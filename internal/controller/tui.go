package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "gooze.dev/pkg/survivors/internal/model"
)

const (
	// header, table border, detail pane and footer.
	reservedLines = 14
	minTableRows  = 3
)

var (
	colorAccent = lipgloss.Color("#7B68EE")
	colorMuted  = lipgloss.Color("#888888")
	colorBorder = lipgloss.Color("#444444")
	colorGood   = lipgloss.Color("#00AF5F")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleSummary = lipgloss.NewStyle().Foreground(colorGood).Bold(true)

	styleDetail = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
)

type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TUI implements UI for interactive terminals.
type TUI struct {
	output io.Writer
	simple *SimpleUI
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{output: cmd.OutOrStdout(), simple: NewSimpleUI(cmd)}
}

// DisplaySummary prints the generation summary highlighted.
func (t *TUI) DisplaySummary(ctx context.Context, groups int, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(t.output, styleSummary.Render(summaryLine(groups, output)))

	return err
}

// DisplaySurvivors opens a browsable table of survivors. Lists that fit on
// screen, and non-table formats, are printed like SimpleUI does.
func (t *TUI) DisplaySurvivors(ctx context.Context, groups *m.PromptGroups, format ListFormat) error {
	if format != FormatTable && format != "" {
		return t.simple.DisplaySurvivors(ctx, groups, format)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	width, height := t.terminalSize()
	if groups.Total()+reservedLines <= height {
		return t.simple.DisplaySurvivors(ctx, groups, format)
	}

	model := newSurvivorsModel(groups, width, height)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run survivor browser: %w", err)
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 80, 24
}

// survivorsModel is the Bubble Tea model browsing survived mutants.
type survivorsModel struct {
	prompts  []m.Prompt
	mutators int
	table    table.Model
	width    int
	height   int
	quitting bool
}

func newSurvivorsModel(groups *m.PromptGroups, width, height int) survivorsModel {
	var prompts []m.Prompt
	for _, group := range groups.Groups() {
		prompts = append(prompts, group.Prompts...)
	}

	rows := make([]table.Row, 0, len(prompts))
	for _, p := range prompts {
		rows = append(rows, table.Row{p.Mutator, p.File, strconv.Itoa(p.Line)})
	}

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mutator", Width: 28},
			{Title: "File", Width: 48},
			{Title: "Line", Width: 6},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	tbl.SetStyles(styles)

	return survivorsModel{
		prompts:  prompts,
		mutators: groups.Len(),
		table:    tbl,
		width:    width,
		height:   height,
	}
}

func tableHeight(height int) int {
	if h := height - reservedLines; h > minTableRows {
		return h
	}

	return minTableRows
}

func (sm survivorsModel) Init() tea.Cmd {
	return nil
}

func (sm survivorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.table.SetWidth(msg.Width)
		sm.table.SetHeight(tableHeight(msg.Height))

		return sm, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			sm.quitting = true
			return sm, tea.Quit
		}
	}

	var cmd tea.Cmd
	sm.table, cmd = sm.table.Update(msg)

	return sm, cmd
}

func (sm survivorsModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("Survived mutants: %d across %d mutators", len(sm.prompts), sm.mutators)))
	b.WriteString("\n")
	b.WriteString(sm.table.View())
	b.WriteString("\n")

	if selected, ok := sm.selected(); ok {
		b.WriteString(styleDetail.Width(sm.width).Render(selected.Text))
		b.WriteString("\n")
	}

	b.WriteString(styleFooter.Render("↑/↓ move • " + keys.Quit.Help().Key + " " + keys.Quit.Help().Desc))

	return b.String()
}

func (sm survivorsModel) selected() (m.Prompt, bool) {
	i := sm.table.Cursor()
	if i < 0 || i >= len(sm.prompts) {
		return m.Prompt{}, false
	}

	return sm.prompts[i], true
}
