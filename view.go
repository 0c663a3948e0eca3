package segbuf

import "io"

// View is a read-once sequential view over a collector's accumulated
// content. It is composed of one sub-slice per occupied segment of the
// source collector and shares their backing arrays: exporting a view copies
// nothing.
//
// The source collector protects an outstanding view structurally. Once a
// view exists, the collector's Reset abandons the shared segments and
// starts over on fresh memory, so the view keeps yielding the content it
// was exported with no matter what is written afterwards.
//
// A View[byte] satisfies io.Reader. The zero value is an exhausted view.
type View[E Element] struct {
	segments [][]E
	pos      int // read position within segments[0]
}

// Read copies up to len(p) elements into p, consuming them from the view.
// It reports io.EOF once the view is exhausted.
func (v *View[E]) Read(p []E) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	total := 0
	for total < len(p) && len(v.segments) > 0 {
		n := copy(p[total:], v.segments[0][v.pos:])
		total += n
		v.pos += n
		if v.pos == len(v.segments[0]) {
			v.segments = v.segments[1:]
			v.pos = 0
		}
	}
	if total == 0 {
		return 0, io.EOF
	}
	return total, nil
}

// Len returns the number of elements left to read.
func (v *View[E]) Len() int {
	n := -v.pos
	for _, seg := range v.segments {
		n += len(seg)
	}
	return n
}
