// Package parse provides a small algebra of composable parsers.
//
// # Overview
//
// A Parser[S, T] reads from an input.Input[S] and produces a Result[S, T]:
// either a success carrying a value of type T and the input position after
// it, or a failure carrying a message and the position where parsing
// stopped. Parsers hold no parse-time state, so a parser graph can be built
// once and shared between goroutines.
//
//	┌──────────────┐   Parse   ┌──────────────────────────────┐
//	│ Input[S]     │──────────▶│ Success(value, next Input)   │
//	│ (offset)     │           │ Failure(message, next Input) │
//	└──────────────┘           └──────────────────────────────┘
//
// # Combinators
//
// Methods keep the value type, functions change it (Go methods cannot
// introduce type parameters):
//
//	p.Or(q)           ordered choice, q is tried from the original input
//	p.Recover(f)      failure -> success at the failure's position
//	p.TryRecover(f)   failure -> whatever Result f returns
//	Map(p, f)         transform a successful value
//	TryMap(p, f)      replace a success with the Result f returns
//	Then(p, q)        sequence, yields pair.Pair[T, U]
//	ThenSkip(p, q)    sequence, keeps p's value
//	SkipThen(p, q)    sequence, keeps q's value
//	OrEither(p, q)    ordered choice tagging the branch with either.Either
//	Seq(p)            zero or more repetitions, always succeeds
//	Opt(p)            optional, always succeeds with an option.Option[T]
//
// Terminals are Succeed, Fail and anything built with Terminal; package
// text provides string terminals.
//
// # Failures
//
// Failures are values, never panics. Sequencing stops at the first
// failure and returns it unchanged; nothing is rewound. Or and OrEither
// restart the alternative from the input they were given and only the
// alternative's failure is reported.
//
// # Recursion
//
// Ref defers construction of a parser until it is first used, which lets
// grammar rules refer to each other:
//
//	var expr, term parse.Parser[string, int]
//	expr = parse.Ref(func() parse.Parser[string, int] { return ... term ... })
//	term = parse.Ref(func() parse.Parser[string, int] { return ... expr ... })
//
// The factory runs at most once, safely under concurrent first use.
// Left-recursive grammars are not supported and recurse without bound.
package parse
