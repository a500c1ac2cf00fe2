package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bdwalton/vtcons/recording"
	"github.com/bdwalton/vtcons/render"
	"github.com/bdwalton/vtcons/vt"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, "vtreplay.toml", `
mode = "play"
rows = 30
eight_bit = true
speed = 2.5
profile = "ansi"
`)

	got, err := loadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Mode, want.Rows, want.EightBit, want.Speed, want.Profile = MODE_PLAY, 30, true, 2.5, "ansi"
	if got != want {
		t.Errorf("Got %+v, wanted %+v", got, want)
	}

	if got, err := loadConfig(""); err != nil || got != defaultConfig() {
		t.Errorf("Got %+v (%v), wanted defaults", got, err)
	}
	if _, err := loadConfig(writeFile(t, "bad.toml", "rows = [")); err == nil {
		t.Errorf("Got no error for malformed TOML")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got %v, wanted %v", err, os.ErrNotExist)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		change func(*Config)
		want   error
	}{
		{func(c *Config) {}, nil},
		{func(c *Config) { c.Mode = "rewind" }, ErrBadMode},
		{func(c *Config) { c.Rows = -1 }, ErrBadConfig},
		{func(c *Config) { c.Speed = 0 }, ErrBadConfig},
		{func(c *Config) { c.MaxDelay = -2 }, ErrBadConfig},
		{func(c *Config) { c.Profile = "sepia" }, render.ErrUnknownProfile},
		{func(c *Config) { c.Profile = "auto" }, nil},
	}

	for i, c := range cases {
		cfg := defaultConfig()
		c.change(&cfg)
		if err := cfg.validate(); !errors.Is(err, c.want) {
			t.Errorf("%d: Got %v, wanted %v", i, err, c.want)
		}
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	var fv flagValues
	cmd := &cobra.Command{}
	fv.register(cmd)
	if err := cmd.Flags().Parse([]string{"--rows", "10", "--speed", "3", "-m", "live"}); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Mode: MODE_PLAY, Rows: 5, Cols: 7, Speed: 1, Profile: "ansi"}
	fv.apply(cmd, &cfg)
	want := Config{Mode: MODE_LIVE, Rows: 10, Cols: 7, Speed: 3, Profile: "ansi"}
	if cfg != want {
		t.Errorf("Got %+v, wanted %+v", cfg, want)
	}
}

func TestLoadChunks(t *testing.T) {
	ts := writeFile(t, "typescript", "Script started on today\nab\r\ncd\nScript done on today\n")
	timing := writeFile(t, "timing", "0.5 2\n0.25 2\n")

	chunks, err := loadChunks(ts, timing, defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := []recording.Chunk{
		{Delay: 500 * time.Millisecond, Data: []byte("ab")},
		{Delay: 250 * time.Millisecond, Data: []byte("\r\n")},
		{Data: []byte("cd\n")},
	}
	if len(chunks) != len(want) {
		t.Fatalf("Got %d chunks, wanted %d", len(chunks), len(want))
	}
	for i := range want {
		if chunks[i].Delay != want[i].Delay || !bytes.Equal(chunks[i].Data, want[i].Data) {
			t.Errorf("%d: Got %v, wanted %v", i, chunks[i], want[i])
		}
	}

	cfg := defaultConfig()
	cfg.Mode, cfg.Chunk, cfg.FrameDelay = MODE_PLAY, 3, 0.1
	chunks, err = loadChunks(ts, "", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 || chunks[0].Delay != 100*time.Millisecond || string(chunks[0].Data) != "ab\r" {
		t.Errorf("Got %v, wanted 3 chunks of 3 bytes 100ms apart", chunks)
	}

	if _, err := loadChunks(filepath.Join(t.TempDir(), "nope"), "", cfg); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got %v, wanted %v", err, os.ErrNotExist)
	}
}

func TestWindowSize(t *testing.T) {
	cases := []struct {
		rows, cols int
		want       vt.Pos
	}{
		{0, 0, vt.Pos{Row: vt.DEF_ROWS, Col: vt.DEF_COLS}},
		{10, 0, vt.Pos{Row: 10, Col: vt.DEF_COLS}},
		{5, 40, vt.Pos{Row: 5, Col: 40}},
	}

	for i, c := range cases {
		cfg := Config{Rows: c.rows, Cols: c.cols}
		if got := windowSize(cfg, &bytes.Buffer{}, false); got != c.want {
			t.Errorf("%d: Got %v, wanted %v", i, got, c.want)
		}
	}
}

func TestDump(t *testing.T) {
	cases := []struct {
		input    string
		eightBit bool
		want     string
	}{
		{"hello\r\nworld", false, "hello\nworld\n"},
		{"\x1b[2J\x1b[3;2Hx", false, "\n\n x\n"},
		{"\x1b(0lqk", true, "┌─┐\n"},
		{"\x1b[31mred\x1b[m\x07", false, "red\n"},
	}

	for i, c := range cases {
		cfg := defaultConfig()
		cfg.EightBit = c.eightBit
		var out bytes.Buffer
		chunks := []recording.Chunk{{Data: []byte(c.input)}}
		if err := dump(&out, cfg, vt.Pos{Row: 4, Col: 10}, chunks, false); err != nil {
			t.Fatalf("%d: Got error %v", i, err)
		}
		if out.String() != c.want {
			t.Errorf("%d: Got %q, wanted %q", i, out.String(), c.want)
		}
	}
}

func TestDumpStyled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Profile = "ascii"
	var out bytes.Buffer
	chunks := []recording.Chunk{{Data: []byte("hi")}}
	if err := dump(&out, cfg, vt.Pos{Row: 2, Col: 4}, chunks, false); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\x1b[0m\x1b[2J\x1b[1;1H") || !strings.Contains(got, "hi") || !strings.HasSuffix(got, "\r\n") {
		t.Errorf("Got %q, wanted a full styled frame", got)
	}
}

func TestPlay(t *testing.T) {
	cfg := defaultConfig()
	chunks := []recording.Chunk{{Data: []byte("ab")}, {Data: []byte("c")}}

	var out bytes.Buffer
	if err := play(context.Background(), &out, cfg, vt.Pos{Row: 2, Col: 4}, chunks, false); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if strings.Count(got, "\x1b[2J") != 1 {
		t.Errorf("Got %q, wanted exactly one full redraw", got)
	}
	if !strings.Contains(got, "\x1b[1;3H\x1b[0mc") {
		t.Errorf("Got %q, wanted only the new cell redrawn", got)
	}
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := defaultConfig()
	cfg.Mode = MODE_PLAY
	var out bytes.Buffer
	chunks := []recording.Chunk{{Delay: time.Hour, Data: []byte("x")}}
	if err := run(ctx, &out, cfg, chunks); err != nil {
		t.Errorf("Got %v, wanted a quiet stop", err)
	}
	if out.Len() != 0 {
		t.Errorf("Got %q written", out.String())
	}
}

func TestLive(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(6, 2)

	chunks := []recording.Chunk{{Data: []byte("hi\r\nyo\x1b[6n")}}
	if err := live(context.Background(), s, defaultConfig(), chunks, false); err != nil {
		t.Fatal(err)
	}

	for i, want := range []string{"hi", "yo"} {
		var got []rune
		for col := 0; col < len(want); col++ {
			mainc, _, _, _ := s.GetContent(col, i) //nolint:staticcheck
			got = append(got, mainc)
		}
		if string(got) != want {
			t.Errorf("%d: Got %q, wanted %q", i, string(got), want)
		}
	}
}

func TestRootCommand(t *testing.T) {
	ts := writeFile(t, "typescript", "one\r\ntwo")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--rows", "3", "--cols", "8", ts})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "one\ntwo\n"; out.String() != want {
		t.Errorf("Got %q, wanted %q", out.String(), want)
	}

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--mode", "rewind", ts})
	if err := cmd.Execute(); !errors.Is(err, ErrBadMode) {
		t.Errorf("Got %v, wanted %v", err, ErrBadMode)
	}
}
