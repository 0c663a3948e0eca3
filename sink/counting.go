package sink

import "io"

// Counting wraps a writer and tracks how many bytes passed through. Not
// safe for concurrent use.
type Counting struct {
	w io.Writer
	n int64
}

// NewCounting returns a counting passthrough around w.
func NewCounting(w io.Writer) *Counting {
	return &Counting{w: w}
}

func (c *Counting) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Count returns the number of bytes written so far.
func (c *Counting) Count() int64 {
	return c.n
}
