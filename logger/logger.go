package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the [Log] section of the demo's toml file.
type Config struct {
	LogDir         string
	LogLevel       string
	MaxLogfileSize int //MB
	MaxAge         int //days
	MaxBackups     int
	EnableStdout   bool
}

type stdoutWriteSyncer struct {
}

func (s stdoutWriteSyncer) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

func (s stdoutWriteSyncer) Sync() error {
	return nil
}

var levelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func getLoggerLevel(lvl string) zapcore.Level {
	if level, ok := levelMap[lvl]; ok {
		return level
	}
	return zapcore.InfoLevel
}

func TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func NewZapLogger(name string, path string, level string, maxLogfileSize int, maxAge int, maxBackups int, enableLogStdout bool) *zap.Logger {
	syncWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(path, name),
		MaxSize:    maxLogfileSize,
		MaxAge:     maxAge,
		MaxBackups: maxBackups,
		LocalTime:  true,
	})

	var w zapcore.WriteSyncer

	encoder := zap.NewProductionEncoderConfig()

	encoder.EncodeTime = TimeEncoder

	if enableLogStdout {
		w = zap.CombineWriteSyncers(syncWriter, stdoutWriteSyncer{})
	} else {
		w = zap.CombineWriteSyncers(syncWriter)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), w, zap.NewAtomicLevelAt(getLoggerLevel(level)))

	return zap.New(core, zap.AddCaller())
}

func New(name string, c Config) *zap.Logger {
	return NewZapLogger(name, c.LogDir, c.LogLevel, c.MaxLogfileSize, c.MaxAge, c.MaxBackups, c.EnableStdout)
}

var initOnce sync.Once
var zapLogger *zap.Logger
var sugaredLogger *zap.SugaredLogger

func InitLogger(logger *zap.Logger) {
	initOnce.Do(func() {
		zapLogger = logger
		sugaredLogger = zapLogger.Sugar()
	})
}

// GetLogger returns the logger set by InitLogger, or a no-op logger when
// InitLogger has not been called.
func GetLogger() *zap.Logger {
	if nil == zapLogger {
		return zap.NewNop()
	}
	return zapLogger
}

func GetSugar() *zap.SugaredLogger {
	if nil == sugaredLogger {
		return zap.NewNop().Sugar()
	}
	return sugaredLogger
}
