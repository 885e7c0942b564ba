package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger provides structured, leveled logging throughout the application.
// Errors are written to their own stream so they stay visible when stdout
// is redirected.
type Logger struct {
	out zerolog.Logger
	err zerolog.Logger
}

// NewLoggerTo creates a Logger writing to the given streams. Unknown level
// names fall back to info.
func NewLoggerTo(out, errOut io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return &Logger{
		out: zerolog.New(console(out)).Level(lvl).With().Timestamp().Logger(),
		err: zerolog.New(console(errOut)).Level(lvl).With().Timestamp().Logger(),
	}
}

// NewNopLogger discards everything.
func NewNopLogger() *Logger {
	return &Logger{out: zerolog.Nop(), err: zerolog.Nop()}
}

func console(w io.Writer) zerolog.ConsoleWriter {
	_, isFile := w.(*os.File)
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    !isFile,
	}
}

// WithField returns a child logger that stamps key=value on every line.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{
		out: l.out.With().Str(key, value).Logger(),
		err: l.err.With().Str(key, value).Logger(),
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.out.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.out.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Error().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.out.Debug().Msg(fmt.Sprintf(format, args...))
}
