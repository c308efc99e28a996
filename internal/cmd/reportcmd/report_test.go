package reportcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/kindaxml/internal/config"
)

func withTempConfig(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Cleanup(func() { os.Setenv("XDG_CONFIG_HOME", origXDG) })

	xdgDir := filepath.Join(tmpDir, "kindaxml")
	require.NoError(t, os.MkdirAll(xdgDir, 0755))
	require.NoError(t, config.Default().Save(filepath.Join(xdgDir, "config.yml")))
}

func TestRunReport_Markdown(t *testing.T) {
	withTempConfig(t)

	var buf bytes.Buffer
	opts := &reportOptions{format: "markdown"}
	err := runReport(opts, &buf, strings.NewReader("See <cite id=3>the results"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "# Parse Report")
	assert.Contains(t, buf.String(), "| Text | Annotations |")
}

func TestRunReport_HTML(t *testing.T) {
	withTempConfig(t)

	var buf bytes.Buffer
	opts := &reportOptions{format: "html"}
	err := runReport(opts, &buf, strings.NewReader("See <cite id=3>the results"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<table>")
}

func TestRunReport_InvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	opts := &reportOptions{format: "pdf"}
	err := runReport(opts, &buf, strings.NewReader("text"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report format")
}

func TestNewCmdReport_Flags(t *testing.T) {
	cmd := NewCmdReport()
	assert.Equal(t, "report", cmd.Use)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "markdown", formatFlag.DefValue)
}
