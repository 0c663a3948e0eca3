// Package sink provides io.Writer decorators built on top of the segbuf
// collectors: fan-out, discarding, always-failing and counting writers, and
// a threshold-triggered disk spill that starts as an in-memory collector and
// moves to a file once it grows past a limit.
package sink

import "errors"

var (
	ErrBroken = errors.New("broken sink")
	ErrClosed = errors.New("sink is closed")
)
