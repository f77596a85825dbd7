package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
)

type Fields map[string]interface{}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	CRITICAL
)

var levelNames = map[LogLevel]string{
	DEBUG:    "DEBUG",
	INFO:     "INFO",
	WARNING:  "WARNING",
	ERROR:    "ERROR",
	CRITICAL: "CRITICAL",
}

func (l LogLevel) String() string {
	return levelNames[l]
}

type Logger struct {
	level       LogLevel
	zl          *zap.Logger
	serviceName string
	closers     []func() error
}

// New builds a logger writing JSON lines to stdout and, when logDir is set,
// to a rotated app.log inside it.
func New(logDir, serviceName, level string) (*Logger, error) {
	lvl := parseLevel(level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "msg"
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	enabler := zap.NewAtomicLevelAt(toZapLevel(lvl))
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), enabler),
	}

	var closers []func() error
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "app.log"),
			MaxSize:    constants.LoggerMaxSize,
			MaxBackups: constants.LoggerMaxBackups,
			MaxAge:     constants.LoggerMaxAge,
			Compress:   true,
		}
		closers = append(closers, fileWriter.Close)
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(fileWriter), enabler))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2))
	if serviceName != "" {
		zl = zl.With(zap.String("service", serviceName))
	}

	return &Logger{
		level:       lvl,
		zl:          zl,
		serviceName: serviceName,
		closers:     closers,
	}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{level: CRITICAL + 1, zl: zap.NewNop()}
}

func (l *Logger) ShouldLog(level LogLevel) bool {
	return level >= l.level
}

func (l *Logger) Sync() error {
	_ = l.zl.Sync()
	var firstErr error
	for _, c := range l.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *Logger) write(level LogLevel, ctx context.Context, msg string, fields Fields) {
	if !l.ShouldLog(level) {
		return
	}

	zfields := make([]zap.Field, 0, len(fields)+2)
	if level == CRITICAL {
		zfields = append(zfields, zap.String("severity", levelNames[CRITICAL]))
	}

	if ctx != nil {
		if traceID, ok := ctx.Value(constants.TraceIDKey).(string); ok && traceID != "" {
			if _, dup := fields["trace_id"]; !dup {
				zfields = append(zfields, zap.String("trace_id", traceID))
			}
		}
	}

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			zfields = append(zfields, zap.Any(k, fields[k]))
		}
	}

	if ce := l.zl.Check(toZapLevel(level), msg); ce != nil {
		ce.Write(zfields...)
	}
}

func (l *Logger) Debug(msg string)    { l.write(DEBUG, nil, msg, nil) }
func (l *Logger) Info(msg string)     { l.write(INFO, nil, msg, nil) }
func (l *Logger) Warn(msg string)     { l.write(WARNING, nil, msg, nil) }
func (l *Logger) Error(msg string)    { l.write(ERROR, nil, msg, nil) }
func (l *Logger) Critical(msg string) { l.write(CRITICAL, nil, msg, nil) }

func (l *Logger) Debugf(format string, args ...any) {
	l.write(DEBUG, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Infof(format string, args ...any) {
	l.write(INFO, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write(WARNING, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write(ERROR, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Criticalf(format string, args ...any) {
	l.write(CRITICAL, nil, fmt.Sprintf(format, args...), nil)
}

func (l *Logger) Fatal(msg string) {
	l.write(CRITICAL, nil, msg, nil)
	_ = l.Sync()
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.write(CRITICAL, nil, fmt.Sprintf(format, args...), nil)
	_ = l.Sync()
	os.Exit(1)
}

func (l *Logger) WithFields(ctx context.Context, fields Fields) *Entry {
	return &Entry{
		logger: l,
		ctx:    ctx,
		fields: fields,
	}
}

type Entry struct {
	logger *Logger
	ctx    context.Context
	fields Fields
}

func (e *Entry) Debug(msg string)    { e.logger.write(DEBUG, e.ctx, msg, e.fields) }
func (e *Entry) Info(msg string)     { e.logger.write(INFO, e.ctx, msg, e.fields) }
func (e *Entry) Warn(msg string)     { e.logger.write(WARNING, e.ctx, msg, e.fields) }
func (e *Entry) Error(msg string)    { e.logger.write(ERROR, e.ctx, msg, e.fields) }
func (e *Entry) Critical(msg string) { e.logger.write(CRITICAL, e.ctx, msg, e.fields) }

func (e *Entry) Debugf(format string, args ...any) {
	e.logger.write(DEBUG, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Infof(format string, args ...any) {
	e.logger.write(INFO, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Warnf(format string, args ...any) {
	e.logger.write(WARNING, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.logger.write(ERROR, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func (e *Entry) Criticalf(format string, args ...any) {
	e.logger.write(CRITICAL, e.ctx, fmt.Sprintf(format, args...), e.fields)
}

func toZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARNING:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func parseLevel(value string) LogLevel {
	value = strings.TrimSpace(strings.ToUpper(value))
	switch value {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	case "CRITICAL":
		return CRITICAL
	default:
		return INFO
	}
}
