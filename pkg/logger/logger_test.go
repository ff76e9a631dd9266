package logger

import (
	"path/filepath"
	"testing"

	"nurvo_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	assert.True(t, SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, Level())

	assert.False(t, SetLevel("loud"))
	assert.Equal(t, zapcore.WarnLevel, Level())
}

func TestInitLogger_DebugModeLowersLevel(t *testing.T) {
	defer SetLevel("info")

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Log.Level = "error"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")

	InitLogger(cfg)

	assert.NotNil(t, Log)
	assert.Equal(t, zapcore.DebugLevel, Level())
}
