// Package logging sets up the default log/slog logger. Diagnostics are
// discarded unless JVX_DEBUG is set or the user asks for verbose output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DebugEnv enables debug logging when set to "1" or "true".
const DebugEnv = "JVX_DEBUG"

// Init installs the default logger writing to stderr.
func Init(verbose bool) {
	slog.SetDefault(New(os.Stderr, verbose || debugFromEnv()))
}

// New returns a text logger at debug level, or a discarding logger when
// enabled is false.
func New(w io.Writer, enabled bool) *slog.Logger {
	if !enabled {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func debugFromEnv() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(DebugEnv)))
	return v == "1" || v == "true"
}
