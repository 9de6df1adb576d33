package calc

import (
	"strconv"
	"strings"

	"github.com/dhamidi/combi/ebnflex"
	"github.com/dhamidi/combi/input"
	"github.com/dhamidi/combi/option"
	"github.com/dhamidi/combi/pair"
	"github.com/dhamidi/combi/parse"
	"golang.org/x/exp/ebnf"
)

// TokenGrammar is the lexical grammar used by Tokenize.
const TokenGrammar = `
Tokens   = { Token } .
Token    = Space | Number | Operator | Paren .
Space    = white { white } .
Number   = digit { digit } .
Operator = "+" | "-" | "*" | "/" .
Paren    = "(" | ")" .
white    = " " | "\t" | "\r" | "\n" .
digit    = "0" … "9" .
`

// TokenGrammarStart is the start production of TokenGrammar.
const TokenGrammarStart = "Tokens"

var tokenKinds = []string{"Space", "Number", "Operator", "Paren"}

var tokenGrammar = mustGrammar()

func mustGrammar() ebnf.Grammar {
	g, err := ebnflex.ParseGrammar("calc.ebnf", strings.NewReader(TokenGrammar), TokenGrammarStart)
	if err != nil {
		panic(err)
	}
	return g
}

// Tokenize splits s into Number, Operator and Paren tokens. Whitespace is
// dropped; unknown bytes become ERROR tokens.
func Tokenize(s string) []ebnflex.Token {
	l := ebnflex.NewLexer(tokenGrammar, []byte(s), "")
	l.SetKinds(tokenKinds...)
	l.SetSkipKinds("Space")
	return l.Tokenize()
}

type tokens = []ebnflex.Token

var unsigned = parse.Terminal("number", func(in input.Input[tokens]) parse.Result[tokens, int] {
	tok, ok := input.Peek(in)
	if !ok || tok.Kind != "Number" {
		return parse.Failure[tokens, int]("Number expected", in)
	}
	n, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return parse.Failure[tokens, int]("Integer out of range", in)
	}
	return parse.Success(n, in.Forward(1))
})

func symbol(sym string) parse.Parser[tokens, string] {
	msg := `Expected "` + sym + `"`
	return parse.Terminal(strconv.Quote(sym), func(in input.Input[tokens]) parse.Result[tokens, string] {
		tok, ok := input.Peek(in)
		if !ok || tok.Literal != sym || (tok.Kind != "Operator" && tok.Kind != "Paren") {
			return parse.Failure[tokens, string](msg, in)
		}
		return parse.Success(sym, in.Forward(1))
	})
}

// signed is an optional sign token followed by a Number token, matching
// what text.Integer accepts.
var signed = parse.Map(
	parse.Then(parse.Opt(symbol("-").Or(symbol("+"))), unsigned),
	func(p pair.Pair[option.Option[string], int]) int {
		if sign, _ := p.Fst.Get(); sign == "-" {
			return -p.Snd
		}
		return p.Snd
	},
)

// ExprTokens is the grammar over token input.
var ExprTokens = build(signed, symbol)

// ParseTokens parses the whole token slice. Offsets in the result count
// tokens, not bytes.
func ParseTokens(toks []ebnflex.Token) parse.Result[tokens, int] {
	return ExprTokens.ParseAll(input.NewSlice(toks))
}

// EvalTokens tokenizes and evaluates s. Errors are *parse.Error with
// offsets translated back to bytes of s.
func EvalTokens(s string) (int, error) {
	toks := Tokenize(s)
	r := ParseTokens(toks)
	if r.IsSuccess() {
		return r.Value(), nil
	}
	offset := len(s)
	if i := r.Offset(); i < len(toks) {
		offset = toks[i].Position.Offset
	}
	return 0, &parse.Error{Message: r.ErrorMessage(), Offset: offset, Remaining: s[offset:]}
}
