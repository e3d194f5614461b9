// Package logging configures the zerolog logger shared by the application
// and bridges gorm's statement logger onto it.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

// New returns a console logger writing to w at the named level. Unknown or
// empty level names fall back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name onto a zerolog level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}

// gormWriter adapts zerolog to gorm's logger.Writer.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Info().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// GormLogger returns a gorm logger backed by l. Statements are only logged
// when sqlDebug is set; errors are logged otherwise.
func GormLogger(l zerolog.Logger, sqlDebug bool) logger.Interface {
	level := logger.Error
	if sqlDebug {
		level = logger.Info
	}
	return logger.New(gormWriter{log: l}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
