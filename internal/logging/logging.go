package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a console logger at the given level. An unknown level string
// falls back to info.
func New(level string) zerolog.Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter is New with an explicit output, used by tests.
func NewWithWriter(level string, out io.Writer) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).
		With().Timestamp().Logger().
		Level(lvl)
	return logger
}
