package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bdwalton/vtcons/console"
	"github.com/bdwalton/vtcons/recording"
	"github.com/bdwalton/vtcons/render"
	"github.com/bdwalton/vtcons/screen"
	"github.com/bdwalton/vtcons/vt"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// loadChunks reads the recording at path and cuts it up for playback.
// With a timing file the recorded pacing is used. Otherwise dump mode
// takes it in one piece and the other modes in evenly spaced frames.
func loadChunks(path, timing string, cfg Config) ([]recording.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open recording: %w", err)
	}
	defer f.Close()

	data, err := recording.Load(f)
	if err != nil {
		return nil, err
	}
	data = recording.StripTypescript(data)

	if timing != "" {
		tf, err := os.Open(timing)
		if err != nil {
			return nil, fmt.Errorf("couldn't open timing: %w", err)
		}
		defer tf.Close()
		return recording.ParseTiming(tf, data)
	}

	if cfg.Mode == MODE_DUMP {
		return []recording.Chunk{{Data: data}}, nil
	}
	chunks := recording.Split(data, cfg.Chunk)
	for i := range chunks {
		chunks[i].Delay = seconds(cfg.FrameDelay)
	}
	return chunks, nil
}

func run(ctx context.Context, w io.Writer, cfg Config, chunks []recording.Chunk) error {
	isTTY := isTerminal(w)

	switch cfg.Mode {
	case MODE_DUMP:
		return dump(w, cfg, windowSize(cfg, w, isTTY), chunks, isTTY)
	case MODE_PLAY:
		err := play(ctx, w, cfg, windowSize(cfg, w, isTTY), chunks, isTTY)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case MODE_LIVE:
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("couldn't create screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("couldn't initialise screen: %w", err)
		}
		defer s.Fini()
		return live(ctx, s, cfg, chunks, true)
	}

	return fmt.Errorf("%q: %w", cfg.Mode, ErrBadMode)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// windowSize fills in any dimension the config leaves at zero from
// the terminal behind w, or the defaults when there isn't one.
func windowSize(cfg Config, w io.Writer, isTTY bool) vt.Pos {
	size := vt.Pos{Row: cfg.Rows, Col: cfg.Cols}
	if (size.Row == 0 || size.Col == 0) && isTTY {
		cols, rows, err := term.GetSize(int(w.(*os.File).Fd()))
		if err != nil {
			slog.Debug("couldn't get terminal size", "err", err)
		} else {
			if size.Row == 0 {
				size.Row = rows
			}
			if size.Col == 0 {
				size.Col = cols
			}
		}
	}
	if size.Row == 0 {
		size.Row = vt.DEF_ROWS
	}
	if size.Col == 0 {
		size.Col = vt.DEF_COLS
	}
	return size
}

// outputProfile picks the colour profile for w. styled is false when
// nothing asked for escape sequences and w isn't a terminal.
func outputProfile(cfg Config, w io.Writer, isTTY bool) (p termenv.Profile, styled bool) {
	if p, ok, _ := render.ParseProfile(cfg.Profile); ok {
		return p, true
	}
	if !isTTY {
		return termenv.Ascii, false
	}
	return termenv.NewOutput(w).EnvColorProfile(), true
}

func newTerminal(cfg Config, e vt.Emitter, size vt.Pos) *vt.Terminal {
	t := vt.New(e)
	if cfg.EightBit {
		t.Enable8Bit()
	}
	if cfg.Cons25 {
		t.EnableCons25()
	}
	t.SetWindowSize(size)
	return t
}

// dropResponses discards the replies a terminal generated. Nothing
// is listening on a recording's input side.
func dropResponses(b *screen.Buffer) {
	for _, r := range b.TakeResponses() {
		slog.Debug("dropping reply", "reply", fmt.Sprintf("%q", r))
	}
}

// dump runs every chunk through a terminal and writes the final
// screen, styled for a terminal or as plain text.
func dump(w io.Writer, cfg Config, size vt.Pos, chunks []recording.Chunk, isTTY bool) error {
	buf := screen.New(size.Row, size.Col)
	t := newTerminal(cfg, buf, size)
	for _, c := range chunks {
		t.Input(c.Data)
	}
	dropResponses(buf)
	slog.Debug("dumping screen", "terminal", t.String(), "bells", buf.Bells())

	if p, styled := outputProfile(cfg, w, isTTY); styled {
		if err := render.New(p, cfg.EightBit).Full(w, buf); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\r\n")
		return err
	}

	_, err := io.WriteString(w, plainText(buf, cfg.EightBit))
	return err
}

func plainText(b *screen.Buffer, eightBit bool) string {
	lines := make([]string, b.Rows())
	for r := range lines {
		lines[r] = b.Line(r)
		if eightBit {
			lines[r] = strings.Map(func(c rune) rune {
				return vt.DisplayRune(true, c)
			}, lines[r])
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// play redraws w after every chunk with just the cells that changed.
func play(ctx context.Context, w io.Writer, cfg Config, size vt.Pos, chunks []recording.Chunk, isTTY bool) error {
	buf := screen.New(size.Row, size.Col)
	t := newTerminal(cfg, buf, size)

	p, _ := outputProfile(cfg, w, isTTY)
	r := render.New(p, cfg.EightBit)

	var prev *screen.Buffer
	pl := &recording.Player{
		Speed:    cfg.Speed,
		MaxDelay: seconds(cfg.MaxDelay),
		After: func() error {
			dropResponses(buf)
			if err := r.Diff(w, prev, buf); err != nil {
				return err
			}
			prev = buf.Clone()
			return nil
		},
	}

	return pl.Play(ctx, t, chunks)
}

// live plays the chunks onto s through a Console. With wait set it
// then holds the final screen until a key is pressed or ctx is done.
// The caller owns s and must Fini it.
func live(ctx context.Context, s tcell.Screen, cfg Config, chunks []recording.Chunk, wait bool) error {
	c := console.New(s, cfg.EightBit)
	c.OnRespond = func(b []byte) {
		slog.Debug("dropping reply", "reply", fmt.Sprintf("%q", b))
	}

	rows, cols := c.Size()
	size := vt.Pos{Row: rows, Col: cols}
	if cfg.Rows > 0 {
		size.Row = cfg.Rows
	}
	if cfg.Cols > 0 {
		size.Col = cfg.Cols
	}
	t := newTerminal(cfg, c, size)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go pollEvents(s, c, cancel)

	pl := &recording.Player{
		Speed:    cfg.Speed,
		MaxDelay: seconds(cfg.MaxDelay),
		After: func() error {
			c.Show()
			return nil
		},
	}
	err := pl.Play(ctx, t, chunks)
	switch {
	case errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return err
	}

	if wait {
		<-ctx.Done()
	}
	return nil
}

// pollEvents handles screen events until the screen is finalised.
func pollEvents(s tcell.Screen, c *console.Console, quit func()) {
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			c.Sync()
		case *tcell.EventKey:
			slog.Debug("key pressed, stopping", "key", ev.Name())
			quit()
		}
	}
}
