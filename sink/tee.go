package sink

import "io"

// Tee duplicates every write into a branch writer. Bytes are written to the
// destination first; whatever the destination accepted is then written to
// the branch. An error from either side propagates.
type Tee struct {
	dst    io.Writer
	branch io.Writer
}

// NewTee returns a writer that forwards to dst and mirrors into branch.
func NewTee(dst, branch io.Writer) *Tee {
	return &Tee{dst: dst, branch: branch}
}

func (t *Tee) Write(p []byte) (int, error) {
	n, err := t.dst.Write(p)
	if err != nil {
		return n, err
	}
	if n > 0 {
		if _, err := t.branch.Write(p[:n]); err != nil {
			return n, err
		}
	}
	return n, nil
}
