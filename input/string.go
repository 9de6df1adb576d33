package input

// String is a cursor over the bytes of a Go string.
type String struct {
	source string
	offset int
}

var _ Input[string] = String{}

func NewString(s string) String {
	return String{source: s}
}

func (s String) Offset() int { return s.offset }

func (s String) Forward(n int) Input[string] {
	return String{source: s.source, offset: clamp(s.offset+n, s.offset, len(s.source))}
}

func (s String) Remaining() string {
	return s.source[s.offset:]
}

func (s String) RemainingN(n int) string {
	end := clamp(s.offset+n, s.offset, len(s.source))
	return s.source[s.offset:end]
}

func (s String) Len() int {
	return len(s.source) - s.offset
}

// Source returns the whole underlying string.
func (s String) Source() string { return s.source }

func (s String) String() string { return s.Remaining() }
