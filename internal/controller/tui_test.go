package controller

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/survivors/internal/model"
)

func TestTUI_DisplaySummary(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, NewTUI(cmd).DisplaySummary(context.Background(), 2, "out"))
	assert.Contains(t, out.String(), "Generated prompts for 2 mutators in 'out'")
}

func TestTUI_ShortListPrintsTable(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, NewTUI(cmd).DisplaySurvivors(context.Background(), sampleGroups(), FormatTable))
	assert.Contains(t, out.String(), "TOTAL MUTATORS 2")
}

func TestTUI_StructuredFormatsBypassBrowser(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	groups := m.NewPromptGroups()
	for i := range 100 {
		groups.Add(m.Prompt{File: fmt.Sprintf("f%d.js", i), Line: i + 1, Mutator: "M", Text: "t"})
	}

	require.NoError(t, NewTUI(cmd).DisplaySurvivors(context.Background(), groups, FormatJSON))
	assert.Contains(t, out.String(), `"f99.js"`)
}

func TestSurvivorsModel_ViewShowsSelectedPrompt(t *testing.T) {
	model := newSurvivorsModel(sampleGroups(), 120, 40)

	view := model.View()
	assert.Contains(t, view, "Survived mutants: 3 across 2 mutators")
	assert.Contains(t, view, "prompt one")
	assert.Contains(t, view, "q quit")
}

func TestSurvivorsModel_MovesSelection(t *testing.T) {
	model := newSurvivorsModel(sampleGroups(), 120, 40)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	sm := updated.(survivorsModel)

	selected, ok := sm.selected()
	require.True(t, ok)
	assert.Equal(t, "src/c.js", selected.File)
}

func TestSurvivorsModel_Quit(t *testing.T) {
	model := newSurvivorsModel(sampleGroups(), 120, 40)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestSurvivorsModel_WindowResize(t *testing.T) {
	model := newSurvivorsModel(sampleGroups(), 80, 24)

	updated, cmd := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Nil(t, cmd)

	sm := updated.(survivorsModel)
	assert.Equal(t, 100, sm.width)
	assert.Equal(t, 50, sm.height)
}

func TestTableHeight_Minimum(t *testing.T) {
	assert.Equal(t, minTableRows, tableHeight(5))
	assert.Equal(t, 26, tableHeight(40))
}
