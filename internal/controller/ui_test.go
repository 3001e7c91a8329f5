package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListFormat(t *testing.T) {
	tests := []struct {
		in   string
		want ListFormat
	}{
		{"", FormatTable},
		{"table", FormatTable},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseListFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListFormat_Unknown(t *testing.T) {
	_, err := ParseListFormat("csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"csv"`)
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
