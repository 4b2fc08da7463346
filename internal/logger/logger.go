// Package logger configures zerolog diagnostics for the CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables consulted when no flag or config value is set.
const (
	EnvLevel = "WORDSHUF_LOG_LEVEL"
	EnvFile  = "WORDSHUF_LOG_FILE"
)

const defaultLevel = zerolog.WarnLevel

// Options selects the log level and destination.
type Options struct {
	Level string
	// File enables a rotating log file instead of the console writer.
	File string
	// Console is the console destination; stderr when nil.
	Console io.Writer
}

// Setup builds a logger for opts. The returned closer releases the log file, if any.
func Setup(opts Options) (zerolog.Logger, io.Closer) {
	level := ParseLevel(opts.Level)

	var output io.Writer
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
		output = rotating
		closer = rotating
	} else {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		output = zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: "2006-01-02 15:04:05.000",
		}
	}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return log, closer
}

// ParseLevel parses a level name; unknown or empty names map to warn.
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG", "DBG":
		return zerolog.DebugLevel
	case "INFO", "INF":
		return zerolog.InfoLevel
	case "WARNING", "WARN":
		return zerolog.WarnLevel
	case "ERROR", "ERR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF", "NONE":
		return zerolog.Disabled
	default:
		return defaultLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
