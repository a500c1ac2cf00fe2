// Package recording loads captured terminal output, such as a
// script(1) typescript with or without its timing file, and plays it
// back into a writer.
package recording

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrBadTiming = errors.New("malformed timing line")
	ErrShortData = errors.New("timing runs past the end of the data")
)

var gzipMagic = []byte{0x1f, 0x8b}

// Chunk is a piece of output and how long to wait before writing it.
type Chunk struct {
	Delay time.Duration
	Data  []byte
}

func decompress(buf []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewBuffer(buf))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	var obuf bytes.Buffer
	if _, err := io.Copy(&obuf, gz); err != nil {
		return nil, err
	}

	return obuf.Bytes(), nil
}

// Load reads a whole recording from r, decompressing it if it was
// gzipped.
func Load(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't read recording: %w", err)
	}

	if bytes.HasPrefix(buf, gzipMagic) {
		buf, err = decompress(buf)
		if err != nil {
			return nil, fmt.Errorf("couldn't decompress recording: %w", err)
		}
	}

	return buf, nil
}

// StripTypescript removes the header and trailer lines script(1)
// wraps around what it captured. Data without them is returned as
// is.
func StripTypescript(buf []byte) []byte {
	if bytes.HasPrefix(buf, []byte("Script started on ")) {
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			buf = buf[i+1:]
		} else {
			buf = nil
		}
	}

	trimmed := bytes.TrimRight(buf, "\r\n")
	if i := bytes.LastIndex(trimmed, []byte("\nScript done on ")); i >= 0 {
		buf = buf[:i+1]
	} else if bytes.HasPrefix(trimmed, []byte("Script done on ")) {
		buf = nil
	}

	return buf
}

// Split cuts buf into pieces of at most size bytes.
func Split(buf []byte, size int) []Chunk {
	if size <= 0 || len(buf) == 0 {
		return []Chunk{{Data: buf}}
	}

	total := int(math.Ceil(float64(len(buf)) / float64(size)))
	chunks := make([]Chunk, total)
	for i := 0; i < total; i++ {
		s, e := i*size, min(i*size+size, len(buf))
		chunks[i] = Chunk{Data: buf[s:e]}
	}

	return chunks
}

// ParseTiming pairs a scriptreplay timing file with the data it
// describes. Each line is a delay in seconds and a byte count.
// Bytes left over after the last line become a final chunk.
func ParseTiming(timing io.Reader, data []byte) ([]Chunk, error) {
	var chunks []Chunk

	sc := bufio.NewScanner(timing)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d %q: %w", n, line, ErrBadTiming)
		}
		secs, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || secs < 0 {
			return nil, fmt.Errorf("line %d delay %q: %w", n, fields[0], ErrBadTiming)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 0 {
			return nil, fmt.Errorf("line %d count %q: %w", n, fields[1], ErrBadTiming)
		}
		if count > len(data) {
			return nil, fmt.Errorf("line %d wants %d bytes, %d left: %w", n, count, len(data), ErrShortData)
		}

		chunks = append(chunks, Chunk{
			Delay: time.Duration(secs * float64(time.Second)),
			Data:  data[:count],
		})
		data = data[count:]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read timing: %w", err)
	}

	if len(data) > 0 {
		slog.Debug("timing file ended early", "remaining", len(data))
		chunks = append(chunks, Chunk{Data: data})
	}

	return chunks, nil
}

// Player writes chunks out in real time.
type Player struct {
	// Speed divides every delay; values <= 0 mean 1.
	Speed float64
	// MaxDelay caps a single pause, if non-zero.
	MaxDelay time.Duration
	// After, if set, runs once each chunk has been written. An
	// error stops playback.
	After func() error
}

// Play writes each chunk to w after its delay. It stops early, with
// ctx's error, when ctx is done.
func (p *Player) Play(ctx context.Context, w io.Writer, chunks []Chunk) error {
	for i, c := range chunks {
		if d := p.delay(c.Delay); d > 0 {
			t := time.NewTimer(d)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := w.Write(c.Data); err != nil {
			return fmt.Errorf("couldn't write chunk %d: %w", i, err)
		}
		if p.After != nil {
			if err := p.After(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *Player) delay(d time.Duration) time.Duration {
	if p.Speed > 0 {
		d = time.Duration(float64(d) / p.Speed)
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}
