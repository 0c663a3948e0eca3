package segbuf

import (
	"io"
	"sync"

	"golang.org/x/text/encoding"
)

// SyncByteBuffer is a mutex-guarded ByteBuffer for use by multiple
// producers. Every call holds the instance lock for its full duration;
// there is no reader/writer distinction. A view obtained from View shares
// memory with the collector but is read outside the lock, which is safe
// because Reset never recycles exported segments.
type SyncByteBuffer struct {
	mu sync.Mutex
	b  *ByteBuffer
}

// NewSyncBytes returns an empty locked byte collector.
func NewSyncBytes(options ...Option) *SyncByteBuffer {
	return &SyncByteBuffer{b: NewBytes(options...)}
}

// Len returns the number of bytes accumulated since the last reset.
func (s *SyncByteBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Len()
}

// Cap returns the total capacity of the allocated segments.
func (s *SyncByteBuffer) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Cap()
}

// Stats returns a snapshot of the collector's memory shape.
func (s *SyncByteBuffer) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Stats()
}

// Write appends all of p under the lock.
func (s *SyncByteBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

// WriteRange appends n bytes of src starting at off under the lock.
func (s *SyncByteBuffer) WriteRange(src []byte, off, n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteRange(src, off, n)
}

// WriteByte appends a single byte under the lock.
func (s *SyncByteBuffer) WriteByte(c byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteByte(c)
}

// WriteString appends the bytes of str under the lock.
func (s *SyncByteBuffer) WriteString(str string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteString(str)
}

// ReadFrom pulls bytes from r under the lock. The lock is held for the
// whole pull, so a slow reader blocks other producers.
func (s *SyncByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.ReadFrom(r)
}

// WriteTo pushes the accumulated bytes into w under the lock.
func (s *SyncByteBuffer) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteTo(w)
}

// Reset returns the collector to zero length under the lock.
func (s *SyncByteBuffer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Reset()
}

// Bytes returns a fresh copy of the accumulated content.
func (s *SyncByteBuffer) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Bytes()
}

// View exports a zero-copy read-once view. The view itself is not
// synchronized; it is owned by the caller.
func (s *SyncByteBuffer) View() *View[byte] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.View()
}

// String returns the accumulated bytes interpreted as UTF-8.
func (s *SyncByteBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// Text decodes the accumulated bytes with enc under the lock.
func (s *SyncByteBuffer) Text(enc encoding.Encoding) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Text(enc)
}

// SyncCharBuffer is a mutex-guarded CharBuffer for use by multiple
// producers, with the same locking discipline as SyncByteBuffer.
type SyncCharBuffer struct {
	mu sync.Mutex
	b  *CharBuffer
}

// NewSyncChars returns an empty locked character collector.
func NewSyncChars(options ...Option) *SyncCharBuffer {
	return &SyncCharBuffer{b: NewChars(options...)}
}

// Len returns the number of runes accumulated since the last reset.
func (s *SyncCharBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Len()
}

// Cap returns the total capacity of the allocated segments.
func (s *SyncCharBuffer) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Cap()
}

// Stats returns a snapshot of the collector's memory shape.
func (s *SyncCharBuffer) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Stats()
}

// Write appends all of p under the lock.
func (s *SyncCharBuffer) Write(p []rune) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

// WriteRange appends n runes of src starting at off under the lock.
func (s *SyncCharBuffer) WriteRange(src []rune, off, n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteRange(src, off, n)
}

// WriteRune appends a single rune under the lock.
func (s *SyncCharBuffer) WriteRune(r rune) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteRune(r)
}

// WriteString appends the runes of str under the lock.
func (s *SyncCharBuffer) WriteString(str string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteString(str)
}

// ReadFrom pulls runes from src under the lock.
func (s *SyncCharBuffer) ReadFrom(src Source[rune]) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.ReadFrom(src)
}

// WriteTo pushes the accumulated runes into sink under the lock.
func (s *SyncCharBuffer) WriteTo(sink Sink[rune]) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.WriteTo(sink)
}

// Reset returns the collector to zero length under the lock.
func (s *SyncCharBuffer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Reset()
}

// Runes returns a fresh copy of the accumulated content.
func (s *SyncCharBuffer) Runes() []rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Runes()
}

// View exports a zero-copy read-once view. The view itself is not
// synchronized; it is owned by the caller.
func (s *SyncCharBuffer) View() *View[rune] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.View()
}

// String returns the accumulated characters as a string.
func (s *SyncCharBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}
