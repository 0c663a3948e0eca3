package sink

import (
	"fmt"
	"os"

	"github.com/teenjuna/segbuf"
)

// Spill accumulates writes in a byte collector until the total would exceed
// a size threshold, then creates a file, drains the collector into it and
// routes all further writes to the file. The in-memory collector is
// discarded once spilled.
//
// Not safe for concurrent use.
type Spill struct {
	threshold int
	dir       string
	pattern   string

	buf    *segbuf.ByteBuffer
	file   *os.File
	closed bool
}

// NewSpill returns a spill writer. Writes stay in memory while the total
// size is at most threshold bytes; the spill file is created with
// os.CreateTemp(dir, pattern). Collector options apply to the in-memory
// stage.
func NewSpill(threshold int, dir, pattern string, options ...segbuf.Option) *Spill {
	if threshold < 0 {
		panic("threshold can't be < 0")
	}
	return &Spill{
		threshold: threshold,
		dir:       dir,
		pattern:   pattern,
		buf:       segbuf.NewBytes(options...),
	}
}

func (s *Spill) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.file == nil && s.buf.Len()+len(p) > s.threshold {
		if err := s.spill(); err != nil {
			return 0, err
		}
	}
	if s.file != nil {
		return s.file.Write(p)
	}
	return s.buf.Write(p)
}

func (s *Spill) spill() error {
	f, err := os.CreateTemp(s.dir, s.pattern)
	if err != nil {
		return fmt.Errorf("create spill file: %w", err)
	}
	if _, err := s.buf.WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("drain collector: %w", err)
	}
	s.file = f
	s.buf = nil
	return nil
}

// InMemory reports whether the content still lives in the collector.
func (s *Spill) InMemory() bool {
	return s.file == nil
}

// Name returns the spill file's name, or "" while in memory.
func (s *Spill) Name() string {
	if s.file == nil {
		return ""
	}
	return s.file.Name()
}

// Bytes returns a copy of everything written, reading the spill file when
// the threshold has been crossed.
func (s *Spill) Bytes() ([]byte, error) {
	if s.file == nil {
		return s.buf.Bytes(), nil
	}
	data, err := os.ReadFile(s.file.Name())
	if err != nil {
		return nil, fmt.Errorf("read spill file: %w", err)
	}
	return data, nil
}

// Close closes the spill file if one was created. The writer rejects writes
// afterwards; Bytes stays usable until the file is removed.
func (s *Spill) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			return fmt.Errorf("close spill file: %w", err)
		}
	}
	return nil
}
