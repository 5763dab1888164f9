package utils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger configures the global logger. When file is non-empty, output is
// written through a size-rotated log file instead of stdout.
func InitLogger(file string, maxSizeMB, maxBackups, maxAgeDays int, compress bool, level string) {
	var out io.Writer = os.Stdout
	if file != "" {
		out = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	logger = zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}

// SetLogLevel changes the level of the configured logger.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)
}

// SetLoggerForTest replaces the global logger so tests can capture output.
func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}

func withFields(e *zerolog.Event, kv []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}

// Info logs an info message with alternating key/value pairs.
func Info(msg string, kv ...interface{}) {
	withFields(logger.Info(), kv).Msg(msg)
}

// Warn logs a warning message with alternating key/value pairs.
func Warn(msg string, kv ...interface{}) {
	withFields(logger.Warn(), kv).Msg(msg)
}

// Error logs an error message with alternating key/value pairs.
func Error(msg string, kv ...interface{}) {
	withFields(logger.Error(), kv).Msg(msg)
}
