package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/arthur-debert/stepkit/pkg/filecmd"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadDefaults()
	require.NoError(t, err)

	assert.Equal(t, "GITHUB_", cfg.FileCommands.Prefix)
	assert.Equal(t, filecmd.DefaultDelimiter, cfg.FileCommands.Delimiter)
	assert.Equal(t, "fixed", cfg.FileCommands.DelimiterMode)
	assert.Equal(t, "STEP_SUMMARY", cfg.Summary.Command)
	assert.Equal(t, "RUNNER_DEBUG", cfg.Runner.DebugVariable)
	assert.Equal(t, "INPUT_", cfg.Runner.InputPrefix)
	assert.Equal(t, "STATE_", cfg.Runner.StatePrefix)
	assert.Equal(t, "auto", cfg.Output.EOL)
}

func TestLoad(t *testing.T) {
	t.Run("no_config_file_uses_defaults", func(t *testing.T) {
		isolate(t)

		cfg, err := Load("")
		require.NoError(t, err)
		defaults, err := LoadDefaults()
		require.NoError(t, err)
		assert.Equal(t, defaults, cfg)
	})

	t.Run("user_config_file", func(t *testing.T) {
		dir := isolate(t)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "stepkit"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stepkit", "config.toml"), []byte(`
[output]
eol = "crlf"
`), 0644))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "crlf", cfg.Output.EOL)
		assert.Equal(t, "\r\n", cfg.EOLSequence())
		assert.Equal(t, "GITHUB_", cfg.FileCommands.Prefix)
	})

	t.Run("explicit_file_and_env_override", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "stepkit.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[file_commands]
prefix = "RUNNER_FILE_"
delimiter_mode = "random"
`), 0644))
		t.Setenv("STEPKIT_FILE_COMMANDS__DELIMITER_MODE", "FIXED")
		t.Setenv("STEPKIT_SUMMARY__COMMAND", "JOB_SUMMARY")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "RUNNER_FILE_", cfg.FileCommands.Prefix)
		assert.Equal(t, "fixed", cfg.FileCommands.DelimiterMode)
		assert.Equal(t, "JOB_SUMMARY", cfg.Summary.Command)

		opts := cfg.FileCommandOptions()
		assert.Equal(t, filecmd.DelimiterFixed, opts.Mode)
		assert.Equal(t, filecmd.DefaultDelimiter, opts.Delimiter)
	})

	t.Run("explicit_missing_file", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
	})

	t.Run("invalid_values", func(t *testing.T) {
		isolate(t)
		t.Setenv("STEPKIT_OUTPUT__EOL", "cr")

		_, err := Load("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
	})
}

func TestValidate(t *testing.T) {
	cfg, err := LoadDefaults()
	require.NoError(t, err)

	cfg.FileCommands.DelimiterMode = "sometimes"
	assert.True(t, errors.IsErrorCode(cfg.Validate(), errors.ErrValidation))

	cfg.FileCommands.DelimiterMode = "random"
	cfg.Runner.InputPrefix = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runner.input_prefix must not be empty")
}

func TestGenerate(t *testing.T) {
	cfg, err := LoadDefaults()
	require.NoError(t, err)

	out, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "[file_commands]")

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, *cfg, parsed)
}

func TestGetDefaultsContent(t *testing.T) {
	assert.Contains(t, GetDefaultsContent(), "delimiter_mode")
}
