package segbuf_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/teenjuna/segbuf"
	"github.com/teenjuna/segbuf/internal/testing/require"
)

var _ io.Reader = (*segbuf.View[byte])(nil)

func TestViewSequentialRead(t *testing.T) {
	content := []byte(strings.Repeat("0123456789", 10))

	b := segbuf.NewBytes(segbuf.WithInitialCapacity(4))
	_, err := b.Write(content)
	require.Nil(t, err)

	v := b.View()
	require.Equal(t, v.Len(), len(content))

	// Tiny reads must walk segment boundaries transparently.
	out := make([]byte, 0, len(content))
	p := make([]byte, 3)
	for {
		n, err := v.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		require.Nil(t, err)
		require.Equal(t, v.Len(), len(content)-len(out))
	}
	require.Equal(t, out, content)
	require.Equal(t, v.Len(), 0)
}

func TestViewReadOnce(t *testing.T) {
	b := segbuf.NewBytes(segbuf.WithInitialCapacity(4))
	_, err := b.Write([]byte("read me once"))
	require.Nil(t, err)

	v := b.View()
	first, err := io.ReadAll(v)
	require.Nil(t, err)
	require.Equal(t, first, []byte("read me once"))

	second, err := io.ReadAll(v)
	require.Nil(t, err)
	require.Equal(t, second, []byte{})
}

func TestViewWithIOCopy(t *testing.T) {
	content := []byte(strings.Repeat("zero-copy ", 200))

	b := segbuf.NewBytes(segbuf.WithInitialCapacity(16))
	_, err := b.Write(content)
	require.Nil(t, err)

	var out bytes.Buffer
	n, err := io.Copy(&out, b.View())
	require.Nil(t, err)
	require.Equal(t, n, int64(len(content)))
	require.Equal(t, out.Bytes(), content)
}

func TestViewEmptyRead(t *testing.T) {
	b := segbuf.NewBytes(segbuf.WithInitialCapacity(4))
	_, err := b.Write([]byte("x"))
	require.Nil(t, err)

	v := b.View()

	// A zero-length destination reports neither progress nor EOF.
	n, err := v.Read(nil)
	require.Equal(t, n, 0)
	require.Nil(t, err)
	require.Equal(t, v.Len(), 1)

	n, err = v.Read(make([]byte, 4))
	require.Nil(t, err)
	require.Equal(t, n, 1)

	_, err = v.Read(make([]byte, 4))
	require.ErrorIs(t, err, io.EOF)
}

func TestViewZeroValueExhausted(t *testing.T) {
	var v segbuf.View[byte]
	require.Equal(t, v.Len(), 0)
	_, err := v.Read(make([]byte, 1))
	require.ErrorIs(t, err, io.EOF)
}

func TestViewSurvivesManyWriteResetCycles(t *testing.T) {
	b := segbuf.NewBytes(segbuf.WithInitialCapacity(4))

	_, err := b.Write([]byte("generation-0"))
	require.Nil(t, err)
	v := b.View()

	for i := 0; i < 10; i++ {
		b.Reset()
		_, err := b.Write(bytes.Repeat([]byte{byte('a' + i)}, 20))
		require.Nil(t, err)
	}

	got, err := io.ReadAll(v)
	require.Nil(t, err)
	require.Equal(t, got, []byte("generation-0"))
}
