package commandinit

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger writes human readable logs to w, tagged with the command name.
func NewLogger(w io.Writer, level zerolog.Level, command string) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
	})).
		Level(level).
		With().
		Timestamp().
		Str("command", command).
		Logger()
}
