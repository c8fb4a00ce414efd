package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuild_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := build(Config{Level: "warn"}, zapcore.AddSync(&buf))

	log.Info("hidden")
	log.Warn("⚠️ shown")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "⚠️ shown")
}

func TestBuild_BadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := build(Config{Level: "loud"}, zapcore.AddSync(&buf))

	log.Debug("debug line")
	log.Info("info line")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestBuild_FileOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "scraper.log")
	log := build(Config{Level: "info", File: path}, zapcore.AddSync(&buf))

	log.Infow("✅ Logged in", "page", 1)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"✅ Logged in"`)
	assert.Contains(t, string(data), `"page":1`)
}
