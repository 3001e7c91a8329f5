package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "gooze.dev/pkg/survivors/internal/model"
)

// SimpleUI implements UI by writing plain text to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary prints the one-line generation summary.
func (s *SimpleUI) DisplaySummary(ctx context.Context, groups int, output m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s\n", summaryLine(groups, output))
}

// DisplaySurvivors prints survivors as a table, JSON or YAML.
func (s *SimpleUI) DisplaySurvivors(ctx context.Context, groups *m.PromptGroups, format ListFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(survivorGroups(groups), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return s.printf("%s\n", data)

	case FormatYAML:
		data, err := yaml.Marshal(survivorGroups(groups))
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return s.printf("%s", data)

	case FormatTable, "":
		if groups.Total() == 0 {
			return s.printf("No survived mutants found\n")
		}

		return s.printf("\n%s", renderSurvivorTable(groups))

	default:
		return fmt.Errorf("unknown list format %q", format)
	}
}

// survivorGroups never returns nil so empty reports encode as [].
func survivorGroups(groups *m.PromptGroups) []m.PromptGroup {
	out := groups.Groups()
	if out == nil {
		return []m.PromptGroup{}
	}

	return out
}

func survivorRows(groups *m.PromptGroups) [][]string {
	rows := make([][]string, 0, groups.Total())

	for _, group := range groups.Groups() {
		for _, p := range group.Prompts {
			rows = append(rows, []string{p.Mutator, p.File, strconv.Itoa(p.Line), p.Original})
		}
	}

	return rows
}

func renderSurvivorTable(groups *m.PromptGroups) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mutator", "File", "Line", "Original Code"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	table.AppendBulk(survivorRows(groups))

	table.SetFooter([]string{
		fmt.Sprintf("Total Mutators %d", groups.Len()),
		"",
		strconv.Itoa(groups.Total()),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
