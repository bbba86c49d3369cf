package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoscore/isolation"
)

// runCLI executes the root command with a config path inside a temp dir so
// the user's own configuration never leaks into tests.
func runCLI(t *testing.T, configBody string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	configPath := filepath.Join(t.TempDir(), "isoscore.toml")
	if configBody != "" {
		require.NoError(t, os.WriteFile(configPath, []byte(configBody), 0o644))
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeChannel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ch1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDemoJSON(t *testing.T) {
	out, stderr, err := runCLI(t, "",
		"demo", "--json", "--units", "2", "--spikes", "5", "--dim", "8", "--separation", "100", "--lambda", "10")
	require.NoError(t, err)
	assert.Contains(t, stderr, "run_id", "log records carry the run id")

	var view reportView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "demo", view.Channel)
	assert.Equal(t, "complete", view.Status)
	require.Len(t, view.Units, 2)
	for _, u := range view.Units {
		require.NotNil(t, u.Score)
		assert.Greater(t, *u.Score, 0.9)
		assert.Equal(t, "scored", u.State)
	}
}

func TestScoreTable(t *testing.T) {
	path := writeChannel(t, `
units:
  - label: alpha
    waveforms: [[0, 0], [1, 0], [0, 1]]
  - label: beta
    waveforms: [[40, 40], [41, 40], [40, 41]]
  - label: junk
    class: noise
    waveforms: [[3]]
`)
	out, _, err := runCLI(t, "", "score", path)
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "scored")
	assert.Contains(t, out, "noise")
	assert.Contains(t, out, "ch1")
}

func TestScoreUsesConfigAndFlags(t *testing.T) {
	path := writeChannel(t, `
units:
  - waveforms: [[0], [1], [2], [3]]
  - waveforms: [[10], [11], [12], [13]]
`)
	out, _, err := runCLI(t, "[scoring]\nlambda = 2.5\nspeed = 2\n", "score", "--json", "--speed", "1", path)
	require.NoError(t, err)

	var view reportView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 2.5, view.Lambda, "lambda from config")
	assert.Equal(t, 1, view.Speed, "flag overrides config")
	assert.Equal(t, 4, view.Units[0].Spikes)
}

func TestScoreNotComputable(t *testing.T) {
	path := writeChannel(t, `
units:
  - waveforms: [[0], [1]]
  - class: unclassified
    waveforms: [[5], [6]]
`)
	_, _, err := runCLI(t, "", "score", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, isolation.ErrInsufficientUnits)
	assert.Contains(t, err.Error(), "not computable")
}

func TestScoreRejectsBadFlags(t *testing.T) {
	path := writeChannel(t, "units:\n  - waveforms: [[0], [1]]\n  - waveforms: [[5], [6]]\n")
	_, _, err := runCLI(t, "", "score", "--speed", "0", path)
	assert.ErrorIs(t, err, isolation.ErrOptionViolation)
}

func TestConfigShow(t *testing.T) {
	out, _, err := runCLI(t, "[scoring]\nlambda = 2.5\n", "--log-level", "debug", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "lambda = 2.5")
	assert.Contains(t, out, "level = 'debug'")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := runCLI(t, "[scoring]\nspeed = 0\n", "version")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "isoscore dev\n", out)
}
