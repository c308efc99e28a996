package parsecmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/kindaxml/internal/config"
)

func withTempConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	tmpDir := t.TempDir()
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Cleanup(func() { os.Setenv("XDG_CONFIG_HOME", origXDG) })

	xdgDir := filepath.Join(tmpDir, "kindaxml")
	require.NoError(t, os.MkdirAll(xdgDir, 0755))
	require.NoError(t, cfg.Save(filepath.Join(xdgDir, "config.yml")))
}

func TestRunParse_FromStdin(t *testing.T) {
	withTempConfig(t, config.Default())

	opts := &parseOptions{output: "plain", noColor: true}
	err := runParse(opts, strings.NewReader("See <cite id=3>the results above"))
	require.NoError(t, err)
}

func TestRunParse_FromFile(t *testing.T) {
	withTempConfig(t, config.Default())

	tmpFile := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("A <note>quick note</note> here."), 0644))

	opts := &parseOptions{output: "json", noColor: true, file: tmpFile}
	err := runParse(opts, nil)
	require.NoError(t, err)
}

func TestRunParse_InvalidFormat(t *testing.T) {
	opts := &parseOptions{output: "bogus"}
	err := runParse(opts, strings.NewReader("text"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunParse_MissingFile(t *testing.T) {
	withTempConfig(t, config.Default())

	opts := &parseOptions{output: "plain", file: filepath.Join(t.TempDir(), "missing.txt")}
	err := runParse(opts, nil)
	require.Error(t, err)
}

func TestNewCmdParse_Flags(t *testing.T) {
	cmd := NewCmdParse()
	assert.Equal(t, "parse", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	fileFlag := cmd.Flags().Lookup("file")
	require.NotNil(t, fileFlag)
}
