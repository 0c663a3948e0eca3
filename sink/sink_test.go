package sink_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/teenjuna/segbuf"
	"github.com/teenjuna/segbuf/internal/testing/require"
	"github.com/teenjuna/segbuf/sink"
)

func TestTee(t *testing.T) {
	var dst, branch bytes.Buffer

	tee := sink.NewTee(&dst, &branch)
	n, err := tee.Write([]byte("duplicated"))
	require.Nil(t, err)
	require.Equal(t, n, 10)
	require.Equal(t, dst.String(), "duplicated")
	require.Equal(t, branch.String(), "duplicated")
}

func TestTeeBranchError(t *testing.T) {
	var dst bytes.Buffer

	tee := sink.NewTee(&dst, sink.NewBroken(nil))
	_, err := tee.Write([]byte("x"))
	require.ErrorIs(t, err, sink.ErrBroken)
	// The destination write had already happened.
	require.Equal(t, dst.String(), "x")
}

func TestDiscard(t *testing.T) {
	n, err := sink.Discard{}.Write([]byte("gone"))
	require.Nil(t, err)
	require.Equal(t, n, 4)
}

func TestBroken(t *testing.T) {
	boom := errors.New("boom")
	_, err := sink.NewBroken(boom).Write([]byte("x"))
	require.ErrorIs(t, err, boom)

	_, err = sink.NewBroken(nil).Write([]byte("x"))
	require.ErrorIs(t, err, sink.ErrBroken)
}

func TestBrokenStopsWriteTo(t *testing.T) {
	b := segbuf.NewBytes(segbuf.WithInitialCapacity(8))
	_, err := b.WriteString("some accumulated content")
	require.Nil(t, err)

	n, err := b.WriteTo(sink.NewBroken(nil))
	require.ErrorIs(t, err, sink.ErrBroken)
	require.Equal(t, n, int64(0))
	// The collector is unaffected by the failed push.
	require.Equal(t, b.Len(), 24)
}

func TestCounting(t *testing.T) {
	c := sink.NewCounting(sink.Discard{})
	_, err := c.Write([]byte("12345"))
	require.Nil(t, err)
	_, err = c.Write([]byte("678"))
	require.Nil(t, err)
	require.Equal(t, c.Count(), int64(8))
}

func TestSpillStaysInMemory(t *testing.T) {
	s := sink.NewSpill(16, t.TempDir(), "spill-*")

	_, err := s.Write([]byte("under the limit!"))
	require.Nil(t, err)
	require.True(t, s.InMemory())
	require.Equal(t, s.Name(), "")

	data, err := s.Bytes()
	require.Nil(t, err)
	require.Equal(t, data, []byte("under the limit!"))

	require.Nil(t, s.Close())
}

func TestSpillCrossesThreshold(t *testing.T) {
	dir := t.TempDir()
	content := strings.Repeat("spilled content ", 10)

	s := sink.NewSpill(32, dir, "spill-*", segbuf.WithInitialCapacity(8))

	// First write fits, second pushes the total past the threshold.
	_, err := s.Write([]byte(content[:30]))
	require.Nil(t, err)
	require.True(t, s.InMemory())

	_, err = s.Write([]byte(content[30:]))
	require.Nil(t, err)
	require.True(t, !s.InMemory())
	require.True(t, strings.HasPrefix(s.Name(), dir))

	data, err := s.Bytes()
	require.Nil(t, err)
	require.Equal(t, string(data), content)

	require.Nil(t, s.Close())

	// The file outlives the writer until removed.
	onDisk, err := os.ReadFile(s.Name())
	require.Nil(t, err)
	require.Equal(t, string(onDisk), content)
}

func TestSpillClosed(t *testing.T) {
	s := sink.NewSpill(8, t.TempDir(), "spill-*")
	require.Nil(t, s.Close())

	_, err := s.Write([]byte("late"))
	require.ErrorIs(t, err, sink.ErrClosed)
	require.ErrorIs(t, s.Close(), sink.ErrClosed)
}

func TestSpillThresholdOption(t *testing.T) {
	require.PanicWithError(t, "threshold can't be < 0", func() {
		sink.NewSpill(-1, t.TempDir(), "spill-*")
	})
}
