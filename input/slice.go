package input

// Slice is a cursor over a slice of arbitrary elements, such as tokens
// produced by a lexer.
type Slice[E any] struct {
	source []E
	offset int
}

var _ Input[[]int] = Slice[int]{}

func NewSlice[E any](elems []E) Slice[E] {
	return Slice[E]{source: elems}
}

func (s Slice[E]) Offset() int { return s.offset }

func (s Slice[E]) Forward(n int) Input[[]E] {
	return Slice[E]{source: s.source, offset: clamp(s.offset+n, s.offset, len(s.source))}
}

// Remaining shares the backing array of the source; callers must not
// modify it.
func (s Slice[E]) Remaining() []E {
	return s.source[s.offset:]
}

func (s Slice[E]) RemainingN(n int) []E {
	end := clamp(s.offset+n, s.offset, len(s.source))
	return s.source[s.offset:end]
}

func (s Slice[E]) Len() int {
	return len(s.source) - s.offset
}

// Peek returns the next element of a slice-backed input without
// advancing.
func Peek[E any](in Input[[]E]) (E, bool) {
	rest := in.RemainingN(1)
	if len(rest) == 0 {
		var zero E
		return zero, false
	}
	return rest[0], true
}
