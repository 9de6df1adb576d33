// Package text provides parsers over strings: literals, regular
// expressions and numbers.
package text

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dhamidi/combi/input"
	"github.com/dhamidi/combi/parse"
	"github.com/pkg/errors"
)

// Parser is a parser over string input.
type Parser[T any] = parse.Parser[string, T]

// Lit matches literal exactly.
func Lit(literal string) Parser[string] {
	n := len(literal)
	msg := `Expected string literal "` + literal + `"`
	return parse.Terminal(strconv.Quote(literal), func(in input.Input[string]) parse.Result[string, string] {
		if in.Len() >= n && in.RemainingN(n) == literal {
			return parse.Success(literal, in.Forward(n))
		}
		return parse.Failure[string, string](msg, in)
	})
}

// Regexp matches pattern anchored at the current position and consumes
// the matched text. A leading "^" is added when missing.
func Regexp(pattern string) (Parser[string], error) {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Parser[string]{}, errors.Wrapf(err, "compile pattern %q", pattern)
	}
	msg := `No match for regex "` + pattern + `"`
	return parse.Terminal("/"+pattern+"/", func(in input.Input[string]) parse.Result[string, string] {
		rest := in.Remaining()
		loc := re.FindStringIndex(rest)
		if loc == nil {
			return parse.Failure[string, string](msg, in)
		}
		return parse.Success(rest[:loc[1]], in.Forward(loc[1]))
	}), nil
}

// MustRegexp is like Regexp but panics on an invalid pattern. It is meant
// for package-level grammar definitions.
func MustRegexp(pattern string) Parser[string] {
	p, err := Regexp(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Fail always fails with message.
func Fail(message string) Parser[string] {
	return parse.Fail[string, string](message)
}

var (
	DigitStr   = MustRegexp(`[0-9]`).Or(Fail("Digit expected"))
	Digit      = parse.Map(DigitStr, func(s string) int { return int(s[0] - '0') })
	IntegerStr = MustRegexp(`[+-]?(?:0|[1-9]\d*)`).Or(Fail("Integer expected"))
	FloatStr   = MustRegexp(`[+-]?(?:0|[1-9]\d*)(?:\.\d+)?`).Or(Fail("Number expected"))
)

// Integer parses a signed decimal integer. Values that do not fit in an
// int fail with "Integer out of range" at the start of the number.
var Integer = parse.Terminal("integer", func(in input.Input[string]) parse.Result[string, int] {
	r := IntegerStr.Parse(in)
	if r.IsFailure() {
		return parse.Failure[string, int](r.ErrorMessage(), r.Next())
	}
	n, err := strconv.Atoi(r.Value())
	if err != nil {
		return parse.Failure[string, int]("Integer out of range", in)
	}
	return parse.Success(n, r.Next())
})

// Float parses a signed decimal number with an optional fraction. Values
// beyond float64 range fail with "Number out of range".
var Float = parse.Terminal("float", func(in input.Input[string]) parse.Result[string, float64] {
	r := FloatStr.Parse(in)
	if r.IsFailure() {
		return parse.Failure[string, float64](r.ErrorMessage(), r.Next())
	}
	f, err := strconv.ParseFloat(r.Value(), 64)
	if err != nil || math.IsInf(f, 0) {
		return parse.Failure[string, float64]("Number out of range", in)
	}
	return parse.Success(f, r.Next())
})

// ParseAll runs p over the whole of s.
func ParseAll[T any](s string, p Parser[T]) parse.Result[string, T] {
	return p.ParseAll(input.NewString(s))
}
