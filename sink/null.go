package sink

// Discard accepts and swallows everything written to it. Unlike io.Discard
// it is a concrete type, so callers composing decorators can name it.
type Discard struct{}

func (Discard) Write(p []byte) (int, error) {
	return len(p), nil
}

// Broken fails every write with a fixed error. Useful for exercising error
// propagation through decorator stacks.
type Broken struct {
	err error
}

// NewBroken returns a writer that always fails with err, or with ErrBroken
// when err is nil.
func NewBroken(err error) *Broken {
	if err == nil {
		err = ErrBroken
	}
	return &Broken{err: err}
}

func (b *Broken) Write([]byte) (int, error) {
	return 0, b.err
}
