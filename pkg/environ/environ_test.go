package environ

import (
	"testing"

	"github.com/arthur-debert/stepkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	seed := map[string]string{"INPUT_MY_INPUT": "val"}
	m := NewMap(seed)

	// seed is copied
	seed["INPUT_MY_INPUT"] = "changed"
	assert.Equal(t, "val", m.Get("INPUT_MY_INPUT"))

	require.NoError(t, m.Set("my var", "var val"))
	v, ok := m.Lookup("my var")
	assert.True(t, ok)
	assert.Equal(t, "var val", v)

	require.NoError(t, m.Unset("my var"))
	_, ok = m.Lookup("my var")
	assert.False(t, ok)

	snapshot := m.Environ()
	snapshot["INPUT_MY_INPUT"] = "mutated"
	assert.Equal(t, "val", m.Get("INPUT_MY_INPUT"))
}

func TestOS(t *testing.T) {
	t.Setenv("STEPKIT_TEST_VAR", "a=b")
	e := OS()

	assert.Equal(t, "a=b", e.Get("STEPKIT_TEST_VAR"))
	assert.Equal(t, "a=b", e.Environ()["STEPKIT_TEST_VAR"])

	require.NoError(t, e.Set("STEPKIT_TEST_VAR", "c"))
	assert.Equal(t, "c", e.Get("STEPKIT_TEST_VAR"))
}

func TestEnvResolver(t *testing.T) {
	env := NewMap(map[string]string{
		"GITHUB_ENV":  "/runner/env",
		"GITHUB_PATH": "",
	})
	r := NewResolver(env, "")

	t.Run("resolves_configured_command", func(t *testing.T) {
		path, err := r.Resolve("ENV")
		require.NoError(t, err)
		assert.Equal(t, "/runner/env", path)
		assert.True(t, r.Configured("ENV"))
	})

	t.Run("empty_variable_is_not_configured", func(t *testing.T) {
		assert.False(t, r.Configured("PATH"))
		_, err := r.Resolve("PATH")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfiguration))
		assert.Contains(t, err.Error(), "Unable to find environment variable for file command PATH")
		assert.Equal(t, "GITHUB_PATH", errors.GetErrorDetails(err)["variable"])
	})

	t.Run("custom_prefix", func(t *testing.T) {
		custom := NewResolver(NewMap(map[string]string{"RUNNER_FILE_ENV": "/x"}), "RUNNER_FILE_")
		assert.Equal(t, "RUNNER_FILE_ENV", custom.Variable("ENV"))
		path, err := custom.Resolve("ENV")
		require.NoError(t, err)
		assert.Equal(t, "/x", path)
	})
}

func TestLoadRunnerInfo(t *testing.T) {
	t.Run("decodes_runner_variables", func(t *testing.T) {
		info, err := LoadRunnerInfo(NewMap(map[string]string{
			"RUNNER_DEBUG":     "1",
			"RUNNER_OS":        "Linux",
			"GITHUB_ACTIONS":   "true",
			"GITHUB_WORKSPACE": "/home/runner/work",
		}))
		require.NoError(t, err)
		assert.True(t, info.Debug)
		assert.Equal(t, "Linux", info.OS)
		assert.True(t, info.Actions)
		assert.Equal(t, "/home/runner/work", info.Workspace)
	})

	t.Run("empty_environment", func(t *testing.T) {
		info, err := LoadRunnerInfo(NewMap(nil))
		require.NoError(t, err)
		assert.Equal(t, RunnerInfo{}, info)
	})

	t.Run("invalid_boolean", func(t *testing.T) {
		_, err := LoadRunnerInfo(NewMap(map[string]string{"RUNNER_DEBUG": "maybe"}))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))
	})
}
