// Package segbuf provides in-memory accumulation buffers that grow by
// chaining fixed-capacity segments instead of reallocating and copying one
// backing array.
//
// Two collectors share the same core: [ByteBuffer] accumulates bytes and
// [CharBuffer] accumulates runes. Both support slice writes, single-element
// writes and pull-based writes from a [Source], and materialize their
// content as a defensive copy, a zero-copy read-once [View], a push into a
// [Sink], or text.
//
// Resetting a collector normally rewinds the cursor and reuses the
// already-allocated segments at zero cost. Once a zero-copy view has been
// exported, the next reset abandons the shared segments to the view and
// starts on fresh memory, so an outstanding view can never observe later
// writes.
//
// The plain collectors are single-writer. [SyncByteBuffer] and
// [SyncCharBuffer] expose the same operations behind one per-instance
// mutex for multi-producer use.
package segbuf
