package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger struct {
	*zap.Logger
}

type options struct {
	noStdout bool
}

type Option func(*options)

func NoStdout(o *options) {
	o.noStdout = true
}

// NewLogger writes JSON logs to filePath, and to stdout unless NoStdout is
// given.
func NewLogger(filePath string, level Level, opts ...Option) (*Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file failed")
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	writeSyncers := []zapcore.WriteSyncer{zapcore.AddSync(file)}
	if !o.noStdout {
		writeSyncers = append(writeSyncers, zapcore.AddSync(os.Stdout))
	}
	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writeSyncers...), level)

	return &Logger{Logger: zap.New(core)}, nil
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}
