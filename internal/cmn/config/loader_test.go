package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func testLoad(t *testing.T, opts ...ConfigLoaderOption) *Config {
	t.Helper()
	cfg, err := NewConfigLoader(viper.New(), opts...).Load()
	require.NoError(t, err)
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	configFile := writeConfig(t, "# minimal config")

	cfg := testLoad(t, WithConfigFile(configFile))

	assert.False(t, cfg.Core.Debug)
	assert.Equal(t, "text", cfg.Core.LogFormat)
	assert.Equal(t, DefaultDataDir(), cfg.Paths.DataDir)
	assert.Equal(t, DefaultConfigDir(), cfg.Paths.ConfigDir)
	assert.Equal(t, configFile, cfg.Paths.ConfigFileUsed)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_YAML(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	configFile := writeConfig(t, `
debug: true
logFormat: json
paths:
  dataDir: `+dataDir+`
`)

	cfg := testLoad(t, WithConfigFile(configFile))

	assert.True(t, cfg.Core.Debug)
	assert.Equal(t, "json", cfg.Core.LogFormat)
	assert.Equal(t, dataDir, cfg.Paths.DataDir)
}

func TestLoad_Env(t *testing.T) {
	configFile := writeConfig(t, `
logFormat: text
paths:
  dataDir: /from/file
`)
	dataDir := filepath.Join(t.TempDir(), "env-data")

	t.Setenv("RINGLITE_DEBUG", "true")
	t.Setenv("RINGLITE_LOG_FORMAT", "json")
	t.Setenv("RINGLITE_DATA_DIR", dataDir)

	cfg := testLoad(t, WithConfigFile(configFile))

	assert.True(t, cfg.Core.Debug)
	assert.Equal(t, "json", cfg.Core.LogFormat)
	assert.Equal(t, dataDir, cfg.Paths.DataDir)
}

func TestLoad_WithDataDir(t *testing.T) {
	configFile := writeConfig(t, "paths:\n  dataDir: /from/file\n")
	t.Setenv("RINGLITE_DATA_DIR", filepath.Join(t.TempDir(), "env"))
	flagDir := filepath.Join(t.TempDir(), "flag")

	cfg := testLoad(t, WithConfigFile(configFile), WithDataDir(flagDir))

	assert.Equal(t, flagDir, cfg.Paths.DataDir)
}

func TestLoad_DataDirTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	configFile := writeConfig(t, "paths:\n  dataDir: ~/ringlite-data\n")

	cfg := testLoad(t, WithConfigFile(configFile))

	assert.Equal(t, filepath.Join(home, "ringlite-data"), cfg.Paths.DataDir)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	configFile := writeConfig(t, "logFormat: xml\n")

	cfg := testLoad(t, WithConfigFile(configFile))

	assert.Equal(t, "text", cfg.Core.LogFormat)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "xml")
}

func TestLoad_InvalidYAML(t *testing.T) {
	configFile := writeConfig(t, "debug: [unclosed\n")

	_, err := Load(WithConfigFile(configFile))

	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Core: Core{LogFormat: "text"}, Paths: PathsConfig{DataDir: "/tmp/x"}}
	require.NoError(t, cfg.Validate())

	cfg.Paths.DataDir = ""
	require.Error(t, cfg.Validate())

	cfg.Paths.DataDir = "/tmp/x"
	cfg.Core.LogFormat = "yaml"
	require.Error(t, cfg.Validate())
}
