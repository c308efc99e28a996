package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			config: *Default(),
		},
		{
			name:    "no recognized tags",
			config:  Config{},
			wantErr: true,
			errMsg:  "recognized_tags must list at least one tag",
		},
		{
			name: "invalid unknown mode",
			config: Config{
				RecognizedTags: []string{"cite"},
				UnknownMode:    "explode",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Build(t *testing.T) {
	cfg := Default()
	parsed, err := cfg.Build()
	require.NoError(t, err)
	require.NotNil(t, parsed)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	defer func() {
		os.Unsetenv("KINDAXML_OUTPUT_FORMAT")
		os.Unsetenv("KINDAXML_UNKNOWN_MODE")
		os.Unsetenv("KINDAXML_DEFAULT_RECOVERY")
	}()

	os.Setenv("KINDAXML_OUTPUT_FORMAT", "json")
	os.Setenv("KINDAXML_UNKNOWN_MODE", "passthrough")
	os.Setenv("KINDAXML_DEFAULT_RECOVERY", "noop")

	cfg := &Config{}
	cfg.LoadFromEnv()

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "passthrough", cfg.UnknownMode)
	assert.Equal(t, "noop", cfg.DefaultRecovery)
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, home))
	assert.Contains(t, path, "kindaxml")
	assert.True(t, filepath.Ext(path) == ".yml" || filepath.Ext(path) == ".yaml")
}

func TestConfig_Save_and_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	original := Default()

	err := original.Save(configPath)
	require.NoError(t, err)

	loaded, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, original.RecognizedTags, loaded.RecognizedTags)
	assert.Equal(t, original.UnknownMode, loaded.UnknownMode)
	assert.Equal(t, original.DefaultRecovery, loaded.DefaultRecovery)
	assert.Equal(t, original.PerTagRecovery, loaded.PerTagRecovery)
	assert.Equal(t, original.OutputFormat, loaded.OutputFormat)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	require.Error(t, err)
}

func TestLoadWithEnv_MissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default().RecognizedTags, cfg.RecognizedTags)
}
