// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"fmt"
	"io"
	"log/slog"
)

var _ = fmt.Print

// LevelFromFlags returns the log level for the --verbose and --quiet
// flags, verbose wins.
func LevelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SetupLogging makes a text logger writing to w the default logger and
// returns it.
func SetupLogging(w io.Writer, level slog.Level) *slog.Logger {
	ans := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(ans)
	return ans
}
