package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

// Level returns the zerolog level named by s, or info when s is unknown.
func Level(s string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(s)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// Setup points the global logger at stderr, human readable when it is a
// terminal, and sets the global level.
func Setup(level string) {
	configure(os.Stderr, isTerminalAttached(), level)
}

func configure(w io.Writer, console bool, level string) {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(Level(level))
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) && runtime.GOOS != "windows"
}
