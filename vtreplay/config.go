package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bdwalton/vtcons/logging"
	"github.com/bdwalton/vtcons/render"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	MODE_DUMP = "dump"
	MODE_PLAY = "play"
	MODE_LIVE = "live"
)

var (
	ErrBadMode   = errors.New("unknown replay mode")
	ErrBadConfig = errors.New("invalid configuration")
)

// Config holds everything that shapes a replay. Zero rows or cols
// mean "use the size of the controlling terminal".
type Config struct {
	Mode     string `toml:"mode"`
	Rows     int    `toml:"rows"`
	Cols     int    `toml:"cols"`
	EightBit bool   `toml:"eight_bit"`
	Cons25   bool   `toml:"cons25"`
	Profile  string `toml:"profile"`

	// Speed divides every recorded delay.
	Speed float64 `toml:"speed"`
	// MaxDelay caps any single pause, in seconds. 0 disables it.
	MaxDelay float64 `toml:"max_delay"`
	// Chunk and FrameDelay pace playback of recordings that have
	// no timing file.
	Chunk      int     `toml:"chunk"`
	FrameDelay float64 `toml:"frame_delay"`

	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Mode:       MODE_DUMP,
		Speed:      1,
		Chunk:      64,
		FrameDelay: 0.02,
		LogLevel:   "info",
	}
}

// loadConfig returns the defaults overlaid with the TOML file at
// path, if one is given.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("couldn't read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("couldn't parse config %q: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case MODE_DUMP, MODE_PLAY, MODE_LIVE:
	default:
		return fmt.Errorf("%q: %w", c.Mode, ErrBadMode)
	}
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrBadConfig, c.Rows, c.Cols)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrBadConfig, c.Speed)
	}
	if c.MaxDelay < 0 || c.FrameDelay < 0 {
		return fmt.Errorf("%w: delays can't be negative", ErrBadConfig)
	}
	if _, _, err := render.ParseProfile(c.Profile); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// flagValues mirrors Config for the command line. A flag only
// overrides the config file when it was given explicitly.
type flagValues struct {
	config string
	timing string
	cfg    Config
}

func (f *flagValues) register(cmd *cobra.Command) {
	d := defaultConfig()
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML file to read settings from")
	fs.StringVarP(&f.timing, "timing", "t", "", "scriptreplay timing file for the recording")
	fs.StringVarP(&f.cfg.Mode, "mode", "m", d.Mode, "How to replay: dump, play or live")
	fs.IntVar(&f.cfg.Rows, "rows", 0, "Terminal rows (0 means the current terminal's)")
	fs.IntVar(&f.cfg.Cols, "cols", 0, "Terminal columns (0 means the current terminal's)")
	fs.BoolVar(&f.cfg.EightBit, "eight_bit", false, "Treat input as 8-bit code page 437 instead of UTF-8")
	fs.BoolVar(&f.cfg.Cons25, "cons25", false, "Use the cons25 control profile")
	fs.StringVar(&f.cfg.Profile, "profile", "", "Output colour profile: ascii, ansi, ansi256, truecolor or auto")
	fs.Float64Var(&f.cfg.Speed, "speed", d.Speed, "Playback speed multiplier")
	fs.Float64Var(&f.cfg.MaxDelay, "max_delay", 0, "Longest pause in seconds (0 for no limit)")
	fs.IntVar(&f.cfg.Chunk, "chunk", d.Chunk, "Bytes per frame when there is no timing file")
	fs.Float64Var(&f.cfg.FrameDelay, "frame_delay", d.FrameDelay, "Seconds between frames when there is no timing file")
	fs.StringVar(&f.cfg.LogFile, "logfile", "", "If set, logs will be written to this file.")
	fs.StringVar(&f.cfg.LogLevel, "log_level", d.LogLevel, "Log level: debug, info, warn or error")
}

// apply copies every explicitly set flag over cfg.
func (f *flagValues) apply(cmd *cobra.Command, cfg *Config) {
	fs := cmd.Flags()
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}

	set("mode", func() { cfg.Mode = f.cfg.Mode })
	set("rows", func() { cfg.Rows = f.cfg.Rows })
	set("cols", func() { cfg.Cols = f.cfg.Cols })
	set("eight_bit", func() { cfg.EightBit = f.cfg.EightBit })
	set("cons25", func() { cfg.Cons25 = f.cfg.Cons25 })
	set("profile", func() { cfg.Profile = f.cfg.Profile })
	set("speed", func() { cfg.Speed = f.cfg.Speed })
	set("max_delay", func() { cfg.MaxDelay = f.cfg.MaxDelay })
	set("chunk", func() { cfg.Chunk = f.cfg.Chunk })
	set("frame_delay", func() { cfg.FrameDelay = f.cfg.FrameDelay })
	set("logfile", func() { cfg.LogFile = f.cfg.LogFile })
	set("log_level", func() { cfg.LogLevel = f.cfg.LogLevel })
}
