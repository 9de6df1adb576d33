// Package input provides immutable cursors over parser sources.
//
// An Input is a position within a source sequence. Advancing returns a new
// Input and never changes the receiver, so a saved Input can always be
// used to resume from an earlier position.
package input

// Input is a cursor over a source of type S. Lengths and offsets are
// counted in the source's own element unit: bytes for String, elements
// for Slice.
type Input[S any] interface {
	// Offset is the number of elements consumed from the start of the source.
	Offset() int
	// Forward returns a cursor advanced by n elements.
	Forward(n int) Input[S]
	// Remaining returns everything from the current offset to the end.
	Remaining() S
	// RemainingN returns at most n elements starting at the current offset.
	RemainingN(n int) S
	// Len is the number of elements still available.
	Len() int
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
