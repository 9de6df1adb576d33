package parse

import (
	"github.com/dhamidi/combi/either"
	"github.com/dhamidi/combi/input"
	"github.com/dhamidi/combi/option"
	"github.com/dhamidi/combi/pair"
)

// Map applies f to the value of a successful parse. Failures pass
// through unchanged.
func Map[S, T, U any](p Parser[S, T], f func(T) U) Parser[S, U] {
	return Parser[S, U]{
		kind: KindMap,
		name: p.String(),
		run: func(in input.Input[S]) Result[S, U] {
			r := p.Parse(in)
			if !r.ok {
				return retype[S, T, U](r)
			}
			return Success(f(r.value), r.next)
		},
	}
}

// TryMap replaces a successful parse with the Result returned by f,
// including its position. A failure from f is not rewound to where p
// started.
func TryMap[S, T, U any](p Parser[S, T], f func(T) Result[S, U]) Parser[S, U] {
	return Parser[S, U]{
		kind: KindTryMap,
		name: p.String(),
		run: func(in input.Input[S]) Result[S, U] {
			r := p.Parse(in)
			if !r.ok {
				return retype[S, T, U](r)
			}
			return f(r.value)
		},
	}
}

// Recover turns a failure into a success with the value f computes from
// the failure message. The cursor stays where the failure left it.
func (p Parser[S, T]) Recover(f func(message string) T) Parser[S, T] {
	return Parser[S, T]{
		kind: KindRecover,
		name: p.String(),
		run: func(in input.Input[S]) Result[S, T] {
			r := p.Parse(in)
			if r.ok {
				return r
			}
			return Success(f(r.message), r.next)
		},
	}
}

// TryRecover replaces a failure with the Result returned by f.
func (p Parser[S, T]) TryRecover(f func(message string) Result[S, T]) Parser[S, T] {
	return Parser[S, T]{
		kind: KindTryRecover,
		name: p.String(),
		run: func(in input.Input[S]) Result[S, T] {
			r := p.Parse(in)
			if r.ok {
				return r
			}
			return f(r.message)
		},
	}
}

// Then parses p and then q from where p stopped, pairing their values.
// The first failure is returned as is.
func Then[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, pair.Pair[T, U]] {
	return Parser[S, pair.Pair[T, U]]{
		kind: KindThen,
		name: p.String() + " " + q.String(),
		run: func(in input.Input[S]) Result[S, pair.Pair[T, U]] {
			pr := p.Parse(in)
			if !pr.ok {
				return retype[S, T, pair.Pair[T, U]](pr)
			}
			qr := q.Parse(pr.next)
			if !qr.ok {
				return retype[S, U, pair.Pair[T, U]](qr)
			}
			return Success(pair.Of(pr.value, qr.value), qr.next)
		},
	}
}

// ThenSkip sequences p and q and keeps p's value.
func ThenSkip[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, T] {
	return Map(Then(p, q), pair.First[T, U])
}

// SkipThen sequences p and q and keeps q's value.
func SkipThen[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, U] {
	return Map(Then(p, q), pair.Second[T, U])
}

// Or tries p and, if it fails, tries q on the same input. Only q's
// failure is reported.
func (p Parser[S, T]) Or(q Parser[S, T]) Parser[S, T] {
	return Parser[S, T]{
		kind: KindOr,
		name: p.String() + " | " + q.String(),
		run: func(in input.Input[S]) Result[S, T] {
			if r := p.Parse(in); r.ok {
				return r
			}
			return q.Parse(in)
		},
	}
}

// OrEither is Or for alternatives of different types; the value records
// which one matched.
func OrEither[S, T, U any](p Parser[S, T], q Parser[S, U]) Parser[S, either.Either[T, U]] {
	return Parser[S, either.Either[T, U]]{
		kind: KindOrEither,
		name: p.String() + " | " + q.String(),
		run: func(in input.Input[S]) Result[S, either.Either[T, U]] {
			if r := p.Parse(in); r.ok {
				return Success(either.Left[T, U](r.value), r.next)
			}
			r := q.Parse(in)
			if !r.ok {
				return retype[S, U, either.Either[T, U]](r)
			}
			return Success(either.Right[T, U](r.value), r.next)
		},
	}
}

// Choice folds alternatives with Or. With no alternatives it always fails.
func Choice[S, T any](ps ...Parser[S, T]) Parser[S, T] {
	if len(ps) == 0 {
		return Fail[S, T]("No alternatives")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = p.Or(q)
	}
	return p
}

// Seq parses p as many times as possible and collects the values. It
// always succeeds; the cursor rests after the last successful repetition.
// A repetition that succeeds without consuming input ends the loop and is
// not collected.
func Seq[S, T any](p Parser[S, T]) Parser[S, []T] {
	return Parser[S, []T]{
		kind: KindSeq,
		name: "{" + p.String() + "}",
		run: func(in input.Input[S]) Result[S, []T] {
			ts := []T{}
			next := in
			for {
				r := p.Parse(next)
				if !r.ok || r.next == nil || r.next.Offset() <= next.Offset() {
					break
				}
				ts = append(ts, r.value)
				next = r.next
			}
			return Success(ts, next)
		},
	}
}

// Opt makes p optional. A success becomes option.Of(value); a failure
// becomes None at the failure's position.
func Opt[S, T any](p Parser[S, T]) Parser[S, option.Option[T]] {
	q := Map(p, option.Of[T]).Recover(func(string) option.Option[T] {
		return option.None[T]()
	})
	q.kind = KindOpt
	q.name = "[" + p.String() + "]"
	return q
}

// Label replaces any failure of p with message, reported at the input p
// was given. The label also names the parser.
func (p Parser[S, T]) Label(message string) Parser[S, T] {
	q := p.Or(Fail[S, T](message))
	q.kind = KindLabel
	q.name = message
	return q
}
