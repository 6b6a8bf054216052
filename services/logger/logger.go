package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level adalah ambang batas log.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger adalah pembungkus tipis di atas zap dengan API leveled sederhana.
type Logger struct {
	zl *zap.SugaredLogger
}

func zapLevel(l Level) zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewDefaultLogger membuat logger production dengan level minimum yang diberikan.
func NewDefaultLogger(level Level) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		zl = zap.NewNop()
	}

	return &Logger{zl: zl.Sugar()}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.zl.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.zl.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.zl.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.zl.Errorf(format, args...) }

// Sync membuang buffer log yang tersisa.
func (l *Logger) Sync() error { return l.zl.Sync() }
