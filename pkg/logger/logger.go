// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logger. Console output goes to stderr so the
// MCP binary keeps stdout clean for the protocol transport; a non-empty
// file path switches to a rotating JSON log instead.
func Setup(level, file string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if file != "" {
		w = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
