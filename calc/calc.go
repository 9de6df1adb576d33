// Package calc evaluates integer arithmetic expressions with + - * / and
// parentheses. Multiplication and division bind tighter than addition and
// subtraction, operators of equal precedence apply left to right, and
// division rounds towards negative infinity.
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = integer | "(" expr ")" .
//
// The same grammar runs over strings and over token slices produced by
// Tokenize.
package calc

import (
	"github.com/dhamidi/combi/input"
	"github.com/dhamidi/combi/pair"
	"github.com/dhamidi/combi/parse"
	"github.com/dhamidi/combi/text"
	"github.com/pkg/errors"
)

// operation is a pending "<symbol> <arg>" applied to an accumulator. at is
// the position of the symbol, used to report semantic failures.
type operation[S any] struct {
	symbol string
	arg    int
	at     input.Input[S]
}

// build assembles the grammar from the terminals of a concrete input type.
func build[S any](number parse.Parser[S, int], symbol func(string) parse.Parser[S, string]) parse.Parser[S, int] {
	var expr, term, factor parse.Parser[S, int]

	op := func(sym string, operand parse.Parser[S, int]) parse.Parser[S, operation[S]] {
		return parse.Map(
			parse.Then(parse.Here[S](), parse.SkipThen(symbol(sym), operand)),
			func(p pair.Pair[input.Input[S], int]) operation[S] {
				return operation[S]{symbol: sym, arg: p.Snd, at: p.Fst}
			},
		)
	}

	expr = parse.Ref(func() parse.Parser[S, int] {
		return fold(term, op("+", term).Or(op("-", term))).Trace("expr")
	})
	term = parse.Ref(func() parse.Parser[S, int] {
		return fold(factor, op("*", factor).Or(op("/", factor))).Trace("term")
	})
	factor = number.Or(parse.ThenSkip(parse.SkipThen(symbol("("), expr), symbol(")")))

	return expr
}

// fold parses first followed by any number of operations and applies
// them left to right.
func fold[S any](first parse.Parser[S, int], ops parse.Parser[S, operation[S]]) parse.Parser[S, int] {
	return parse.TryMap(
		parse.Then(parse.Then(first, parse.Seq(ops)), parse.Here[S]()),
		func(p pair.Pair[pair.Pair[int, []operation[S]], input.Input[S]]) parse.Result[S, int] {
			acc := p.Fst.Fst
			for _, o := range p.Fst.Snd {
				v, err := apply(acc, o.symbol, o.arg)
				if err != nil {
					return parse.Failure[S, int](err.Error(), o.at)
				}
				acc = v
			}
			return parse.Success(acc, p.Snd)
		},
	)
}

var ErrDivisionByZero = errors.New("Division by zero")

func apply(acc int, symbol string, arg int) (int, error) {
	switch symbol {
	case "+":
		return acc + arg, nil
	case "-":
		return acc - arg, nil
	case "*":
		return acc * arg, nil
	case "/":
		if arg == 0 {
			return 0, ErrDivisionByZero
		}
		return floorDiv(acc, arg), nil
	}
	return acc, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Expr is the grammar over string input.
var Expr = build(text.Integer, text.Lit)

// Parse parses the whole of s.
func Parse(s string) parse.Result[string, int] {
	return text.ParseAll(s, Expr)
}

// Eval returns the value of s. Errors are *parse.Error.
func Eval(s string) (int, error) {
	r := Parse(s)
	if r.IsFailure() {
		return 0, r.Err()
	}
	return r.Value(), nil
}
