package calc

import (
	"fmt"

	"github.com/dhamidi/combi/parse"
	"github.com/pkg/errors"
)

// Mode selects the input the grammar runs over.
type Mode int

const (
	// ModeString parses the expression text directly.
	ModeString Mode = iota
	// ModeTokens tokenizes first and parses the token slice.
	ModeTokens
)

func (m Mode) String() string {
	switch m {
	case ModeString:
		return "string"
	case ModeTokens:
		return "tokens"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts "string" or "tokens" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "string":
		return ModeString, nil
	case "tokens":
		return ModeTokens, nil
	}
	return ModeString, errors.Errorf("unknown mode %q (expected string or tokens)", s)
}

// Evaluation is the outcome of evaluating one expression.
type Evaluation struct {
	Expr  string
	Value int
	Err   *parse.Error
}

func (e Evaluation) OK() bool { return e.Err == nil }

// String renders the evaluation the way the demo prints it:
//
//	2*3 = 6
//	x = Error: Expected string literal "(" at 0 ("x")
func (e Evaluation) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s = Error: %s", e.Expr, e.Err)
	}
	return fmt.Sprintf("%s = %d", e.Expr, e.Value)
}

// Evaluate evaluates expr in the given mode.
func Evaluate(expr string, mode Mode) Evaluation {
	eval := Eval
	if mode == ModeTokens {
		eval = EvalTokens
	}
	v, err := eval(expr)
	ev := Evaluation{Expr: expr, Value: v}
	if err != nil {
		var perr *parse.Error
		if !errors.As(err, &perr) {
			perr = &parse.Error{Message: err.Error()}
		}
		ev.Err = perr
	}
	return ev
}

// Samples are the expressions printed by the demo.
var Samples = []string{
	"2*3",
	"2*3+7",
	"2*3-7",
	"2*3-7/2",
	"(23)+7",
	"(2*3)+7",
	"2*(3+7)",
	"2*(3+7)/3",
	"2*(3+7))",
	"2*((3+7)+3",
	"(2*(3+7)",
	"2+3-7",
	"2+3-",
	"x",
	"2+",
	"+2",
	"-2",
	"2*-3",
	"2+-3",
	"2--3",
	"2++3",
	"",
	"2-3*7",
}
