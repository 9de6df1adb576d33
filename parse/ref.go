package parse

import (
	"github.com/dhamidi/combi/input"
	"github.com/dhamidi/combi/thunk"
)

// Ref returns a parser whose definition is produced by factory on first
// use. The factory is not called at construction time, so it may refer
// to parsers that are defined later, including the parser Ref returns.
func Ref[S, T any](factory func() Parser[S, T]) Parser[S, T] {
	th := thunk.New(factory)
	return Parser[S, T]{
		kind: KindRef,
		name: "ref",
		run: func(in input.Input[S]) Result[S, T] {
			return th.Value().Parse(in)
		},
	}
}
