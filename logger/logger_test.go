package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getLoggerLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, getLoggerLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, getLoggerLevel("verbose"))
}

func TestNewZapLogger(t *testing.T) {
	dir := t.TempDir()
	l := New("test.log", Config{
		LogDir:         dir,
		LogLevel:       "warn",
		MaxLogfileSize: 1,
		MaxAge:         1,
		MaxBackups:     1,
	})

	l.Info("dropped by level")
	l.Warn("kept by level")
	l.Sync()

	b, err := os.ReadFile(filepath.Join(dir, "test.log"))
	assert.Nil(t, err)
	s := string(b)
	assert.False(t, strings.Contains(s, "dropped by level"))
	assert.True(t, strings.Contains(s, "kept by level"))
	assert.True(t, strings.Contains(s, "\twarn\t"))
}

func TestNopBeforeInit(t *testing.T) {
	assert.NotNil(t, GetLogger())
	assert.NotNil(t, GetSugar())
	GetSugar().Infof("nobody listens %d", 1)
}
