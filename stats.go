package segbuf

// Stats is a point-in-time snapshot of a collector's memory shape.
type Stats struct {
	// Len is the number of elements accumulated since the last reset.
	Len int
	// Capacity is the total capacity across allocated segments.
	Capacity int
	// Segments is the number of allocated segments.
	Segments int
}

// Cap returns the total capacity of the allocated segments. It only grows
// during a session; a reset after a view export shrinks it back to the
// initial capacity.
func (b *buffer[E]) Cap() int {
	sum := 0
	for _, seg := range b.segments {
		sum += len(seg)
	}
	return sum
}

// Stats returns a snapshot of the collector's memory shape.
func (b *buffer[E]) Stats() Stats {
	return Stats{
		Len:      b.count,
		Capacity: b.Cap(),
		Segments: len(b.segments),
	}
}
