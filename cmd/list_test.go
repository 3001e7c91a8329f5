package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/survivors/internal/controller"
	"gooze.dev/pkg/survivors/internal/domain"
	m "gooze.dev/pkg/survivors/internal/model"
)

func TestListCmd_DefaultsToTable(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Format == controller.FormatTable && args.Report == ""
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--log-file", filepath.Join(t.TempDir(), "test.log")})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestListCmd_FormatAndReportArePassedThrough(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Format == controller.FormatYAML && args.Report == m.Path("r.json")
	})).Return(nil)

	cmd.SetArgs([]string{"--report", "r.json", "list", "--format", "yaml", "--log-file", filepath.Join(t.TempDir(), "test.log")})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestListCmd_RejectsUnknownFormat(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "--format", "xml", "--log-file", filepath.Join(t.TempDir(), "test.log")})
	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown list format")
}
