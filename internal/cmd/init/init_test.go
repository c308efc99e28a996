package init

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"cite", "note", "todo"}, splitAndTrim("cite, note ,todo"))
	assert.Equal(t, []string{"cite"}, splitAndTrim("cite"))
	assert.Empty(t, splitAndTrim(""))
	assert.Empty(t, splitAndTrim(" , , "))
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	tagsFlag := cmd.Flags().Lookup("tags")
	require.NotNil(t, tagsFlag)
	assert.Equal(t, "", tagsFlag.DefValue)
}
