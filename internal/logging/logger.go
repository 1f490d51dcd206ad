package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// Output formats accepted by New.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrUnknownLevel is returned for a level name slog does not know.
	ErrUnknownLevel = errors.New("logging: unknown level")
	// ErrUnknownFormat is returned for a format other than auto, text or json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a slog level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}

	return lvl, nil
}

// ValidFormat reports whether f is a format New accepts.
func ValidFormat(f string) bool {
	switch strings.ToLower(f) {
	case "", FormatAuto, FormatText, FormatJSON:
		return true
	}

	return false
}

// New creates the application logger writing to w.
// Format "auto" (or empty) selects text when w is a terminal and JSON otherwise.
// The "error" key is standardized to "err".
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !ValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	var h slog.Handler
	switch strings.ToLower(format) {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	case FormatText:
		h = slog.NewTextHandler(w, opts)
	default:
		if isTerminal(w) {
			h = slog.NewTextHandler(w, opts)
		} else {
			h = slog.NewJSONHandler(w, opts)
		}
	}

	return slog.New(h), nil
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
