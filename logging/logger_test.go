package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoscore/config"
	"github.com/katalvlaran/isoscore/logging"
)

func TestNew_AutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "auto", Output: &buf})
	require.NoError(t, err)

	logger.Info("scored", "unit", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "scored", rec["msg"])
	assert.Equal(t, float64(3), rec["unit"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg, &buf)
	require.NoError(t, err)
	logger.Debug("phase")
	assert.True(t, strings.Contains(buf.String(), `"level":"DEBUG"`))

	_, err = logging.NewFromConfig(nil, &buf)
	require.NoError(t, err)
}
