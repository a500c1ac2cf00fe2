// Package logging installs the process wide slog logger.
package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var ErrBadLevel = errors.New("unknown log level")

// See https://github.com/golang/go/issues/62005 for details about why
// we have this. When that issue is closed, we should be able to use
// slog's built in discard handler.
type discardHandler struct {
	slog.JSONHandler
}

func (d *discardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

// ParseLevel accepts debug, info, warn or error in any case. The
// empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%q: %w", s, ErrBadLevel)
	}
	return l, nil
}

// Setup sends log records at level and above to logfile, or throws
// everything away when logfile is empty. The terminal owns stdout and
// stderr while we run, so there is no console option.
func Setup(logfile string, level slog.Level) error {
	var l *slog.Logger

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("couldn't open logfile %q: %w", logfile, err)
		}

		l = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	} else {
		l = slog.New(&discardHandler{})
	}

	slog.SetDefault(l)
	return nil
}
