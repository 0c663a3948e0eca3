package segbuf

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
)

var (
	emptyBytes     = []byte{}
	exhaustedBytes = &View[byte]{}
)

var _ interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	io.ReaderFrom
	io.WriterTo
} = (*ByteBuffer)(nil)

// ByteBuffer is a byte-output collector backed by the segmented chain. It
// satisfies io.Writer, io.ByteWriter, io.StringWriter and io.ReaderFrom.
// Not safe for concurrent use; see SyncByteBuffer.
type ByteBuffer struct {
	buffer[byte]
}

// NewBytes returns an empty byte collector. The first segment is allocated
// lazily on the first write.
func NewBytes(options ...Option) *ByteBuffer {
	return &ByteBuffer{buffer: newBuffer[byte](newConfig(options...))}
}

// WriteByte appends a single byte. It never fails; the error return
// satisfies io.ByteWriter.
func (b *ByteBuffer) WriteByte(c byte) error {
	b.writeOne(c)
	return nil
}

// WriteString appends the bytes of s without an intermediate copy.
func (b *ByteBuffer) WriteString(s string) (int, error) {
	written := len(s)
	need := b.count + written
	for len(s) > 0 {
		seg := b.active(need)
		n := copy(seg[b.count-b.filledBefore:], s)
		s = s[n:]
		b.count += n
	}
	b.metrics.wrote(written)
	return written, nil
}

// ReadFrom pulls bytes from r directly into the chain's backing storage
// until r reports io.EOF. Bytes read before a mid-read failure stay
// committed and the failure propagates.
func (b *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	return b.readFrom(r)
}

// WriteTo pushes the accumulated bytes into w segment by segment. It copies
// into no intermediate slice and leaves the collector's state untouched,
// including the view-export flag.
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	return b.writeTo(w)
}

// Bytes returns a fresh copy of the accumulated content, independent of any
// further writes or resets.
func (b *ByteBuffer) Bytes() []byte {
	if b.count == 0 {
		return emptyBytes
	}
	return b.slice()
}

// View exports the accumulated content as a zero-copy read-once view and
// disables segment reuse until the next Reset. An empty collector yields
// the canonical exhausted view and stays reusable.
func (b *ByteBuffer) View() *View[byte] {
	if b.count == 0 {
		return exhaustedBytes
	}
	return b.view()
}

// String returns the accumulated bytes interpreted as UTF-8.
func (b *ByteBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.count)
	for _, seg := range b.occupied() {
		sb.Write(seg)
	}
	return sb.String()
}

// Text decodes the accumulated bytes with enc. A nil encoding means the
// bytes are already UTF-8 and are returned as-is.
func (b *ByteBuffer) Text(enc encoding.Encoding) (string, error) {
	if enc == nil {
		return b.String(), nil
	}
	decoded, err := enc.NewDecoder().Bytes(b.Bytes())
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(decoded), nil
}
