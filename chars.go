package segbuf

var (
	emptyRunes     = []rune{}
	exhaustedRunes = &View[rune]{}
)

// CharBuffer is a character-output collector accumulating runes on the
// segmented chain. Not safe for concurrent use; see SyncCharBuffer.
type CharBuffer struct {
	buffer[rune]
}

// NewChars returns an empty character collector. The first segment is
// allocated lazily on the first write.
func NewChars(options ...Option) *CharBuffer {
	return &CharBuffer{buffer: newBuffer[rune](newConfig(options...))}
}

// WriteRune appends a single rune. It never fails.
func (b *CharBuffer) WriteRune(r rune) error {
	b.writeOne(r)
	return nil
}

// WriteString appends the runes of s and returns how many were appended.
func (b *CharBuffer) WriteString(s string) (int, error) {
	written := 0
	for _, r := range s {
		b.writeOne(r)
		written++
	}
	return written, nil
}

// ReadFrom pulls runes from src directly into the chain's backing storage
// until src reports io.EOF. Runes read before a mid-read failure stay
// committed and the failure propagates.
func (b *CharBuffer) ReadFrom(src Source[rune]) (int64, error) {
	return b.readFrom(src)
}

// WriteTo pushes the accumulated runes into s segment by segment without an
// intermediate copy, leaving the collector's state untouched.
func (b *CharBuffer) WriteTo(s Sink[rune]) (int64, error) {
	return b.writeTo(s)
}

// Runes returns a fresh copy of the accumulated content.
func (b *CharBuffer) Runes() []rune {
	if b.count == 0 {
		return emptyRunes
	}
	return b.slice()
}

// View exports the accumulated content as a zero-copy read-once view and
// disables segment reuse until the next Reset. An empty collector yields
// the canonical exhausted view and stays reusable.
func (b *CharBuffer) View() *View[rune] {
	if b.count == 0 {
		return exhaustedRunes
	}
	return b.view()
}

// String returns the accumulated characters as a string.
func (b *CharBuffer) String() string {
	if b.count == 0 {
		return ""
	}
	return string(b.slice())
}
