// Package controller provides output adapters for displaying prompt
// generation results.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "gooze.dev/pkg/survivors/internal/model"
)

// ListFormat selects how survivors are listed.
type ListFormat string

// Supported list formats.
const (
	FormatTable ListFormat = "table"
	FormatJSON  ListFormat = "json"
	FormatYAML  ListFormat = "yaml"
)

// ParseListFormat validates a user supplied list format.
func ParseListFormat(value string) (ListFormat, error) {
	switch format := ListFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown list format %q (want table, json or yaml)", value)
	}
}

// UI defines how results are shown to the operator.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplaySummary reports how many mutator files were written and where.
	DisplaySummary(ctx context.Context, groups int, output m.Path) error
	// DisplaySurvivors shows survived mutants grouped by mutator.
	DisplaySurvivors(ctx context.Context, groups *m.PromptGroups, format ListFormat) error
}

// NewUI returns the TUI when attached to a terminal, SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func summaryLine(groups int, output m.Path) string {
	return fmt.Sprintf("Generated prompts for %d mutators in '%s'", groups, output)
}
