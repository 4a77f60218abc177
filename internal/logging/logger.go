// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/fyyur/backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init builds the application logger from cfg and installs it as the global
// and default context logger. The returned closer flushes the log file.
func Init(cfg *config.Config) (zerolog.Logger, io.Closer) {
	var console io.Writer = os.Stderr
	if !cfg.IsProduction() {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	logger, closer := New(cfg, console)

	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return logger, closer
}

// New builds a logger writing to console. Outside development records are
// also appended to the rotating file named by cfg.LogFile.
func New(cfg *config.Config, console io.Writer) (zerolog.Logger, io.Closer) {
	var out io.Writer = console
	var closer io.Closer = nopCloser{}

	if cfg.Env != "development" && cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(console, file)
		closer = file
	}

	logger := zerolog.New(out).
		Level(ParseLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("service", "fyyur").
		Logger()
	return logger, closer
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
