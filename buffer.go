package segbuf

import (
	"errors"
	"fmt"
	"io"
)

// DefaultSegmentSize is the capacity of the first segment when no initial
// capacity is configured.
const DefaultSegmentSize = 1024

var (
	ErrRange = errors.New("write range out of bounds")
)

// Element constrains the element types a collector can accumulate.
type Element interface {
	~byte | ~rune
}

// Source is the pull side of a collector: Read fills p with up to len(p)
// elements and reports how many it produced, signalling exhaustion with
// io.EOF. For byte elements io.Reader has exactly this shape.
type Source[E Element] interface {
	Read(p []E) (n int, err error)
}

// Sink accepts pushed elements. For byte elements io.Writer has exactly
// this shape.
type Sink[E Element] interface {
	Write(p []E) (n int, err error)
}

// buffer is the segmented accumulation core shared by ByteBuffer and
// CharBuffer. Content lives in a chain of fixed-capacity segments; growth
// appends segments and never reallocates or copies existing ones. Not safe
// for concurrent use.
type buffer[E Element] struct {
	segments [][]E
	initial  int

	count        int // elements written since the last reset
	filledBefore int // elements in segments preceding the current one
	current      int // index of the active segment

	// reuse is cleared when a zero-copy view is exported. While clear,
	// Reset must not recycle segments the view may still be reading.
	reuse bool

	metrics *metrics
}

func newBuffer[E Element](cfg *config) buffer[E] {
	return buffer[E]{
		initial: cfg.initial,
		reuse:   true,
		metrics: cfg.metrics,
	}
}

// Len returns the number of elements accumulated since the last reset.
func (b *buffer[E]) Len() int {
	return b.count
}

// Write appends all of p, growing the chain as needed. The returned error
// is always nil; the signature matches io.Writer for byte collectors.
func (b *buffer[E]) Write(p []E) (int, error) {
	b.append(p)
	return len(p), nil
}

// WriteRange appends n elements of src starting at off. The range is
// validated before any element is copied: an invalid offset or length
// reports ErrRange and leaves the collector untouched.
func (b *buffer[E]) WriteRange(src []E, off, n int) (int, error) {
	if off < 0 || n < 0 || off+n > len(src) {
		return 0, fmt.Errorf("%w: offset %d, length %d, source %d", ErrRange, off, n, len(src))
	}
	b.append(src[off : off+n])
	return n, nil
}

// Reset returns the collector to zero length. While no view has been
// exported the chain is kept and reused, so resetting costs no allocation.
// After a view export the whole chain is abandoned to the view and one
// fresh segment of the original initial capacity takes its place.
func (b *buffer[E]) Reset() {
	if b.reuse {
		b.metrics.resets.WithLabelValues("reuse").Inc()
	} else {
		b.segments = [][]E{make([]E, b.initial)}
		b.reuse = true
		b.metrics.segments.Inc()
		b.metrics.resets.WithLabelValues("discard").Inc()
	}
	b.count = 0
	b.filledBefore = 0
	b.current = 0
}

func (b *buffer[E]) append(p []E) {
	if len(p) == 0 {
		return
	}
	written := len(p)
	need := b.count + written
	for len(p) > 0 {
		seg := b.active(need)
		n := copy(seg[b.count-b.filledBefore:], p)
		p = p[n:]
		b.count += n
	}
	b.metrics.wrote(written)
}

func (b *buffer[E]) writeOne(e E) {
	seg := b.active(b.count + 1)
	seg[b.count-b.filledBefore] = e
	b.count++
	b.metrics.wrote(1)
}

// readFrom pulls elements from src directly into the active segment's
// backing storage until src reports io.EOF. Elements copied before a
// mid-read failure stay committed; the failure propagates as-is.
func (b *buffer[E]) readFrom(src Source[E]) (int64, error) {
	var total int64
	for {
		seg := b.active(b.count + 1)
		n, err := src.Read(seg[b.count-b.filledBefore:])
		if n > 0 {
			b.count += n
			total += int64(n)
			b.metrics.wrote(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// active returns the segment the cursor points at, guaranteed to have room
// for at least one more element. When the current segment is full the
// cursor moves on, reusing an already-allocated successor if the chain has
// one and allocating otherwise. need is the total element count the chain
// must eventually hold; it sets the floor for a fresh segment's size.
func (b *buffer[E]) active(need int) []E {
	if len(b.segments) == 0 {
		b.alloc(need)
		return b.segments[0]
	}
	seg := b.segments[b.current]
	if b.count-b.filledBefore < len(seg) {
		return seg
	}
	b.filledBefore += len(seg)
	b.current++
	if b.current == len(b.segments) {
		b.alloc(need)
	}
	return b.segments[b.current]
}

// alloc appends a segment to the chain. The first segment gets the
// configured initial capacity. Later segments double the previous size,
// with a floor that fits the outstanding need into this one segment.
func (b *buffer[E]) alloc(need int) {
	size := b.initial
	if n := len(b.segments); n > 0 {
		size = 2 * len(b.segments[n-1])
		if short := need - b.Cap(); short > size {
			size = short
		}
	}
	b.segments = append(b.segments, make([]E, size))
	b.metrics.segments.Inc()
}

// occupied returns the written portion of the chain as one slice per
// segment, sharing the segments' backing arrays. nil when empty.
func (b *buffer[E]) occupied() [][]E {
	if b.count == 0 {
		return nil
	}
	segs := make([][]E, 0, b.current+1)
	segs = append(segs, b.segments[:b.current]...)
	segs = append(segs, b.segments[b.current][:b.count-b.filledBefore])
	return segs
}

// slice copies the accumulated content into one fresh contiguous slice.
func (b *buffer[E]) slice() []E {
	out := make([]E, b.count)
	n := 0
	for _, seg := range b.occupied() {
		n += copy(out[n:], seg)
	}
	return out
}

// view exports the occupied segments as a read-once view and disables
// segment reuse until the next Reset.
func (b *buffer[E]) view() *View[E] {
	b.reuse = false
	b.metrics.views.Inc()
	return &View[E]{segments: b.occupied()}
}

// writeTo pushes the occupied segments into s in order, without copying
// into an intermediate slice and without touching the cursor or the reuse
// flag. A sink failure propagates immediately; segments already pushed are
// not un-pushed.
func (b *buffer[E]) writeTo(s Sink[E]) (int64, error) {
	var total int64
	for _, seg := range b.occupied() {
		n, err := s.Write(seg)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n != len(seg) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}
