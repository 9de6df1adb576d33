// Package ebnflex provides lexical scanning based on EBNF grammars.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

// Position represents a location in source text.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Kinds of tokens produced outside of the grammar.
const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

// String returns the literal text, so that token slices print like the
// source they came from.
func (t Token) String() string {
	return t.Literal
}

// Describe returns the token with its position and kind.
func (t Token) Describe() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	skip     map[string]bool
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length per production and offset, -1 = no match
	visiting map[memoKey]bool // cycle detection
}

// NewLexer creates a lexer for the given grammar and input. Token kinds
// default to every production whose name starts with an uppercase letter.
func NewLexer(grammar ebnf.Grammar, input []byte, filename string) *Lexer {
	var kinds []string
	for name, prod := range grammar {
		if prod.Expr != nil && name != "" && name[0] >= 'A' && name[0] <= 'Z' {
			kinds = append(kinds, name)
		}
	}
	sort.Strings(kinds)

	return &Lexer{
		grammar:  grammar,
		kinds:    kinds,
		skip:     map[string]bool{},
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// SetKinds restricts the productions tried as tokens. On equal match
// length the kind listed first wins.
func (l *Lexer) SetKinds(kinds ...string) {
	l.kinds = kinds
}

// SetSkipKinds sets which token kinds Tokenize leaves out.
func (l *Lexer) SetSkipKinds(kinds ...string) {
	l.skip = make(map[string]bool, len(kinds))
	for _, k := range kinds {
		l.skip[k] = true
	}
}

// ParseGrammar parses EBNF source and, when start is not empty, verifies
// that every production is defined and reachable from start.
func ParseGrammar(filename string, src io.Reader, start string) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, errors.Wrap(err, "parse grammar")
	}
	if start == "" {
		return grammar, nil
	}
	if err := ebnf.Verify(grammar, start); err != nil {
		return nil, errors.Wrap(err, "verify grammar")
	}
	return grammar, nil
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename, start string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open grammar")
	}
	defer f.Close()

	return ParseGrammar(filename, f, start)
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// NextToken returns the longest match among the token kinds at the current
// position. Input that no kind matches is returned one byte at a time as
// ERROR tokens. At the end of input it returns an EOF token and io.EOF.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	// Positions change between tokens, so memoized matches do too.
	l.memo = make(map[memoKey]int)

	var bestKind string
	var bestLen int
	for _, name := range l.kinds {
		prod, ok := l.grammar[name]
		if !ok || prod.Expr == nil {
			continue
		}
		l.visiting = make(map[memoKey]bool)
		if n := l.tryMatch(prod.Expr, startOffset); n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		l.advance()
		return Token{
			Kind:     KindError,
			Literal:  string(l.input[startOffset:l.pos]),
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset:l.pos]),
		Position: startPos,
	}, nil
}

// tryMatch returns the length of the longest match of expr at offset, or 0.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			n := l.tryMatch(item, pos)
			if n == 0 && !nullable(item) {
				return 0
			}
			pos += n
		}
		return pos - offset

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			n := l.tryMatch(e.Body, pos)
			if n == 0 {
				break
			}
			pos += n
		}
		return pos - offset

	case *ebnf.Option:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)
	}
	return 0
}

// nullable reports whether expr may match without consuming input.
func nullable(expr ebnf.Expression) bool {
	switch expr.(type) {
	case *ebnf.Repetition, *ebnf.Option:
		return true
	}
	return false
}

// tryMatchName matches a named production with memoization and cycle detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		if result == -1 {
			return 0
		}
		return result
	}

	// Left recursion: the production is already being matched here.
	if l.visiting[key] {
		return 0
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	if result == 0 {
		l.memo[key] = -1
	} else {
		l.memo[key] = result
	}
	return result
}

// tryMatchToken matches a literal string.
func (l *Lexer) tryMatchToken(token string, offset int) int {
	if token == "" || offset+len(token) > len(l.input) {
		return 0
	}
	if string(l.input[offset:offset+len(token)]) == token {
		return len(token)
	}
	return 0
}

// tryMatchRange matches a single byte in a range such as "0" … "9".
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return 0
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return 0
}

// Tokenize reads all tokens up to the end of input. Skipped kinds and the
// final EOF token are not included.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens
		}
		if l.skip[tok.Kind] {
			continue
		}
		tokens = append(tokens, tok)
	}
}

// Describe formats tokens one per line.
func Describe(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Describe())
		sb.WriteByte('\n')
	}
	return sb.String()
}
