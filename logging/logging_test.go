package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    slog.Level
		wantErr error
	}{
		{"", slog.LevelInfo, nil},
		{"debug", slog.LevelDebug, nil},
		{"WARN", slog.LevelWarn, nil},
		{"Error", slog.LevelError, nil},
		{"loud", slog.LevelInfo, ErrBadLevel},
	}

	for i, c := range cases {
		got, err := ParseLevel(c.in)
		if !errors.Is(err, c.wantErr) {
			t.Errorf("%d: Got error %v, wanted %v", i, err, c.wantErr)
		}
		if got != c.want {
			t.Errorf("%d: Got %s, wanted %s", i, got, c.want)
		}
	}
}

func TestSetup(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logfile := filepath.Join(t.TempDir(), "vt.log")
	if err := Setup(logfile, slog.LevelWarn); err != nil {
		t.Fatal(err)
	}
	slog.Info("dropped")
	slog.Warn("kept", "k", 1)

	b, err := os.ReadFile(logfile)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); strings.Contains(got, "dropped") || !strings.Contains(got, "msg=kept k=1") {
		t.Errorf("Got log %q", got)
	}

	if err := Setup("", slog.LevelDebug); err != nil {
		t.Fatal(err)
	}
	if slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("Discard logger is enabled")
	}
}

func TestSetupBadPath(t *testing.T) {
	if err := Setup(filepath.Join(t.TempDir(), "missing", "vt.log"), slog.LevelInfo); err == nil {
		t.Errorf("Got no error for an unwritable log file")
	}
}
