package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
log_level = "debug"
show_log = true
export_path = "dev_1rm.csv"

[production]
log_level = "warn"
logs_path = "/var/log/fitlog"
log_to_stdout = true
sentry_enabled = true
export_exercise = "Squat"
export_path = "squat.csv"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeConfig(t, testToml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ShowLog)
	assert.Equal(t, "dev_1rm.csv", cfg.ExportPath)
	// not set in the file
	assert.Equal(t, DefaultExportExercise, cfg.ExportExercise)
	assert.Empty(t, cfg.LogsPath)
	assert.False(t, cfg.SentryEnabled)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("production", writeConfig(t, testToml))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/var/log/fitlog", cfg.LogsPath)
	assert.True(t, cfg.LogToStdout)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, "Squat", cfg.ExportExercise)
	assert.Equal(t, "squat.csv", cfg.ExportPath)
	assert.False(t, cfg.ShowLog)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultExportExercise, cfg.ExportExercise)
	assert.Equal(t, DefaultExportPath, cfg.ExportPath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_UnknownEnv(t *testing.T) {
	cfg, err := Load("staging", writeConfig(t, testToml))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EnvSectionMissing(t *testing.T) {
	cfg, err := Load("prod", writeConfig(t, "[development]\nlog_level = \"info\"\n"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidToml(t *testing.T) {
	cfg, err := Load("dev", writeConfig(t, "[development\nlog_level = "))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestToml_Get(t *testing.T) {
	dev := &Config{LogLevel: "debug"}
	prod := &Config{LogLevel: "error"}
	tml := &Toml{Development: dev, Production: prod}

	for _, env := range []string{"dev", "development", "DEV"} {
		cfg, err := tml.Get(env)
		require.NoError(t, err)
		assert.Same(t, dev, cfg)
	}
	for _, env := range []string{"prod", "production", "Production"} {
		cfg, err := tml.Get(env)
		require.NoError(t, err)
		assert.Same(t, prod, cfg)
	}

	_, err := tml.Get("")
	assert.Error(t, err)
}
