package parse

import (
	"github.com/dhamidi/combi/input"
)

// Kind identifies which variant of parser a node is.
type Kind int8

const (
	KindInvalid Kind = iota
	KindTerminal
	KindSucceed
	KindFail
	KindMap
	KindTryMap
	KindRecover
	KindTryRecover
	KindThen
	KindOr
	KindOrEither
	KindSeq
	KindOpt
	KindRef
	KindLabel
	KindTrace
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindSucceed:
		return "succeed"
	case KindFail:
		return "fail"
	case KindMap:
		return "map"
	case KindTryMap:
		return "tryMap"
	case KindRecover:
		return "recover"
	case KindTryRecover:
		return "tryRecover"
	case KindThen:
		return "then"
	case KindOr:
		return "or"
	case KindOrEither:
		return "orEither"
	case KindSeq:
		return "seq"
	case KindOpt:
		return "opt"
	case KindRef:
		return "ref"
	case KindLabel:
		return "label"
	case KindTrace:
		return "trace"
	}
	return "invalid"
}

// Parser turns an Input[S] into a Result[S, T]. Parsers are immutable
// values; every combinator returns a new one. The zero Parser fails on
// every input.
type Parser[S, T any] struct {
	kind Kind
	name string
	run  func(input.Input[S]) Result[S, T]
}

// Terminal builds a parser that reads the input directly. The name
// describes the parser in String output.
func Terminal[S, T any](name string, run func(input.Input[S]) Result[S, T]) Parser[S, T] {
	return Parser[S, T]{kind: KindTerminal, name: name, run: run}
}

// Succeed returns a parser that succeeds with value without consuming input.
func Succeed[S, T any](value T) Parser[S, T] {
	return Parser[S, T]{
		kind: KindSucceed,
		name: "succeed",
		run: func(in input.Input[S]) Result[S, T] {
			return Success(value, in)
		},
	}
}

// Fail returns a parser that fails with message without consuming input.
func Fail[S, T any](message string) Parser[S, T] {
	return Parser[S, T]{
		kind: KindFail,
		name: "fail",
		run: func(in input.Input[S]) Result[S, T] {
			return Failure[S, T](message, in)
		},
	}
}

func (p Parser[S, T]) Kind() Kind { return p.kind }

func (p Parser[S, T]) String() string {
	if p.name == "" {
		return p.kind.String()
	}
	return p.name
}

// Parse runs p on in.
func (p Parser[S, T]) Parse(in input.Input[S]) Result[S, T] {
	if p.run == nil {
		return Failure[S, T]("Uninitialised parser", in)
	}
	return p.run(in)
}

// ParseAll runs p on in and turns a success that leaves input behind into
// a failure at the leftover position.
func (p Parser[S, T]) ParseAll(in input.Input[S]) Result[S, T] {
	r := p.Parse(in)
	if r.ok && r.next != nil && r.next.Len() > 0 {
		return Failure[S, T]("Unparsed input remains", r.next)
	}
	return r
}

// Here succeeds without consuming input and yields the current position.
// Combined with TryMap it lets a transform report failures at a position
// of its choosing.
func Here[S any]() Parser[S, input.Input[S]] {
	return Parser[S, input.Input[S]]{
		kind: KindTerminal,
		name: "here",
		run: func(in input.Input[S]) Result[S, input.Input[S]] {
			return Success(in, in)
		},
	}
}
