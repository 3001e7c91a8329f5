package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "survivors\t "), output)
	assert.Contains(t, output, readBuildVersion().Version)
}

func TestVersionCmd_Short(t *testing.T) {
	cmd := newVersionCmd()
	t.Cleanup(func() { versionShortFlag = false })

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--short"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, readBuildVersion().Version+"\n", out.String())
}

func TestReadBuildVersion_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, readBuildVersion().Version)
}
