package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoscore/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "isoscore.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NotEmpty(t, resolved)
	assert.Equal(t, config.Default(), *cfg)
	assert.Equal(t, 10.0, cfg.Scoring.Lambda)
	assert.Equal(t, 1, cfg.Scoring.Speed)
	assert.Equal(t, "auto", cfg.Logging.Format)
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, `
[scoring]
lambda = 4.5
speed = 3
workers = 2

[logging]
level = " DEBUG "
format = "json"
`)
	cfg, resolved, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, 4.5, cfg.Scoring.Lambda)
	assert.Equal(t, 3, cfg.Scoring.Speed)
	assert.Equal(t, 2, cfg.Scoring.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level, "level is normalized")
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[scoring]\nspeed = 2\n")
	cfg, _, _, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Scoring.Lambda)
	assert.Equal(t, 2, cfg.Scoring.Speed)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "isoscore.toml"), []byte("[scoring]\nlambda = 2.0\n"), 0o644))
	t.Chdir(dir)

	cfg, _, exists, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 2.0, cfg.Scoring.Lambda)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero lambda":      "[scoring]\nlambda = 0.0\n",
		"zero speed":       "[scoring]\nspeed = 0\n",
		"negative workers": "[scoring]\nworkers = -1\n",
		"bad level":        "[logging]\nlevel = \"loud\"\n",
		"bad format":       "[logging]\nformat = \"xml\"\n",
		"unknown key":      "[scoring]\nlamda = 1.0\n",
		"malformed":        "[scoring\n",
	}
	for name, body := range cases {
		_, _, _, err := config.Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.Speed = 4
	out, err := cfg.Encode()
	require.NoError(t, err)

	var back config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &back))
	assert.Equal(t, cfg, back)
}
