package parse

import "fmt"

// Error is a parse failure with its context. Remaining holds the
// unconsumed input rendered as text.
type Error struct {
	Message   string
	Offset    int
	Remaining string
}

func (e *Error) Error() string {
	ellipsis := ""
	if e.Offset > 0 {
		ellipsis = "... "
	}
	return fmt.Sprintf("%s at %d (\"%s%s\")", e.Message, e.Offset, ellipsis, e.Remaining)
}
