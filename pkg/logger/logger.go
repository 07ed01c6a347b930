package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// LoggerI is the logging surface used across the service.
type LoggerI interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Panic(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) LoggerI
}

type Field = zap.Field

var (
	Int      = zap.Int
	Int64    = zap.Int64
	String   = zap.String
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Error    = zap.Error
)

type loggerImpl struct {
	zap *zap.Logger
}

func NewLogger(namespace string, level string) LoggerI {
	if level == "" {
		level = LevelInfo
	}

	return &loggerImpl{zap: newZapLogger(level, zapcore.ISO8601TimeEncoder).Named(namespace)}
}

// Nop returns a logger that discards everything.
func Nop() LoggerI {
	return &loggerImpl{zap: zap.NewNop()}
}

func (l *loggerImpl) Debug(msg string, fields ...Field) { l.zap.Debug(msg, fields...) }
func (l *loggerImpl) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l *loggerImpl) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l *loggerImpl) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }
func (l *loggerImpl) Panic(msg string, fields ...Field) { l.zap.Panic(msg, fields...) }
func (l *loggerImpl) Fatal(msg string, fields ...Field) { l.zap.Fatal(msg, fields...) }

func (l *loggerImpl) With(fields ...Field) LoggerI {
	return &loggerImpl{zap: l.zap.With(fields...)}
}

// Cleanup flushes buffered entries.
func Cleanup(l LoggerI) error {
	switch v := l.(type) {
	case *loggerImpl:
		return v.zap.Sync()
	default:
		return nil
	}
}

func newZapLogger(level string, timeEncoder zapcore.TimeEncoder) *zap.Logger {
	globalLevel := parseLevel(level)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel && lvl >= globalLevel
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl < zapcore.ErrorLevel && lvl >= globalLevel
	})

	consoleInfos := zapcore.Lock(os.Stdout)
	consoleErrors := zapcore.Lock(os.Stderr)

	ecfg := zap.NewProductionEncoderConfig()
	ecfg.EncodeTime = timeEncoder
	encoder := zapcore.NewJSONEncoder(ecfg)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, consoleErrors, highPriority),
		zapcore.NewCore(encoder, consoleInfos, lowPriority),
	)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
