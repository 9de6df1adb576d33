package calc

import (
	"context"
	"strings"
	"testing"

	"github.com/dhamidi/combi/input"
	"github.com/dhamidi/combi/text"
	"github.com/google/go-cmp/cmp"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2*3", 6},
		{"2*3+7", 13},
		{"2*3-7", -1},
		{"2*3-7/2", 3},
		{"(23)+7", 30},
		{"(2*3)+7", 13},
		{"2*(3+7)", 20},
		{"2*(3+7)/3", 6},
		{"2+3-7", -2},
		{"+2", 2},
		{"-2", -2},
		{"2*-3", -6},
		{"2+-3", -1},
		{"2--3", 5},
		{"2++3", 5},
		{"2-3*7", -19},
		{"-7/2", -4},
		{"7/-2", -4},
		{"8/4/2", 1},
		{"10-2-3", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval(tt.input)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2*3-7))", `Unparsed input remains at 5 ("... ))")`},
		{"2*(3+7))", `Unparsed input remains at 7 ("... )")`},
		{"2*((3+7)+3", `Unparsed input remains at 1 ("... *((3+7)+3")`},
		{"(2*(3+7)", `Expected string literal ")" at 8 ("... ")`},
		{"2+3-", `Unparsed input remains at 3 ("... -")`},
		{"x", `Expected string literal "(" at 0 ("x")`},
		{"2+", `Unparsed input remains at 1 ("... +")`},
		{"", `Expected string literal "(" at 0 ("")`},
		{"8/0", `Division by zero at 1 ("... /0")`},
		{"(8/0)", `Division by zero at 2 ("... /0)")`},
		{"1+8/0", `Unparsed input remains at 1 ("... +8/0")`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Eval(tt.input)
			if err == nil {
				t.Fatalf("Eval(%q) succeeded, want error", tt.input)
			}
			if err.Error() != tt.want {
				t.Errorf("Eval(%q) error = %q, want %q", tt.input, err.Error(), tt.want)
			}
		})
	}
}

func TestParseResultPositions(t *testing.T) {
	r := Parse("2*3-7))")
	if r.IsSuccess() || r.Offset() != 5 || r.ErrorMessage() != "Unparsed input remains" {
		t.Errorf("Parse(2*3-7))) = %v", r)
	}

	r = Parse("x")
	if r.IsSuccess() || r.Offset() != 0 || strings.Contains(r.FullErrorMessage(), "...") {
		t.Errorf("Parse(x) = %v", r)
	}

	ri := text.Integer.Parse(input.NewString(""))
	if ri.IsSuccess() || ri.ErrorMessage() != "Integer expected" || ri.Offset() != 0 {
		t.Errorf("Integer.Parse(\"\") = %v", ri)
	}
}

func TestEvalTokens(t *testing.T) {
	tests := []struct {
		input string
		want  int
		err   string
	}{
		{"2*3", 6, ""},
		{"2 * 3 + 7", 13, ""},
		{"2*3-7/2", 3, ""},
		{" 2 * ( 3 + 7 ) / 3 ", 6, ""},
		{"-2 - -3", 1, ""},
		{"2*3-7))", 0, `Unparsed input remains at 5 ("... ))")`},
		{"x", 0, `Expected "(" at 0 ("x")`},
		{"", 0, `Expected "(" at 0 ("")`},
		{"(1+2", 0, `Expected ")" at 4 ("... ")`},
		{"4/0", 0, `Division by zero at 1 ("... /0")`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EvalTokens(tt.input)
			if tt.err != "" {
				if err == nil || err.Error() != tt.err {
					t.Errorf("EvalTokens(%q) error = %v, want %q", tt.input, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EvalTokens(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("EvalTokens(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestModesAgree(t *testing.T) {
	for _, s := range Samples {
		str := Evaluate(s, ModeString)
		tok := Evaluate(s, ModeTokens)
		if str.OK() != tok.OK() || str.Value != tok.Value {
			t.Errorf("%q: string mode %s, token mode %s", s, str, tok)
		}
		if !str.OK() && str.Err.Offset != tok.Err.Offset {
			t.Errorf("%q: string offset %d, token offset %d", s, str.Err.Offset, tok.Err.Offset)
		}
	}
}

func TestTokenize(t *testing.T) {
	var got []string
	for _, tok := range Tokenize("12 *(3)") {
		got = append(got, tok.Kind+":"+tok.Literal)
	}
	want := []string{"Number:12", "Operator:*", "Paren:(", "Number:3", "Paren:)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize (-want +got):\n%s", diff)
	}
}

func TestEvaluationString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2*3", "2*3 = 6"},
		{"x", `x = Error: Expected string literal "(" at 0 ("x")`},
	}
	for _, tt := range tests {
		if got := Evaluate(tt.input, ModeString).String(); got != tt.want {
			t.Errorf("Evaluate(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"", "string", "tokens"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) error: %v", s, err)
		}
	}
	if _, err := ParseMode("bytes"); err == nil {
		t.Error("ParseMode(bytes) succeeded")
	}
}

const batchYAML = `
expressions:
  - expr: 2*3
    want: 6
  - expr: 2*3-7/2
    want: 3
  - expr: 2*3-7))
    error: Unparsed input remains
  - expr: "1+1"
    want: 3
  - expr: "(2*(3+7)"
`

func TestRunBatch(t *testing.T) {
	b, err := LoadBatch(strings.NewReader(batchYAML))
	if err != nil {
		t.Fatalf("LoadBatch: %v", err)
	}

	for _, mode := range []Mode{ModeString, ModeTokens} {
		t.Run(mode.String(), func(t *testing.T) {
			outcomes, err := RunBatch(context.Background(), b, mode, 3)
			if err != nil {
				t.Fatalf("RunBatch: %v", err)
			}
			var pass []bool
			for i, o := range outcomes {
				if o.Case.Expr != b.Expressions[i].Expr {
					t.Errorf("outcome %d is for %q, want %q", i, o.Case.Expr, b.Expressions[i].Expr)
				}
				pass = append(pass, o.Pass)
			}
			if diff := cmp.Diff([]bool{true, true, true, false, false}, pass); diff != "" {
				t.Errorf("pass flags (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunBatchCancelled(t *testing.T) {
	b := &Batch{Expressions: []Case{{Expr: "1"}, {Expr: "2"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBatch(ctx, b, ModeString, 1); err == nil {
		t.Error("RunBatch with cancelled context succeeded")
	}
}

func TestLoadBatchRejectsUnknownFields(t *testing.T) {
	if _, err := LoadBatch(strings.NewReader("expressions:\n  - exp: 1\n")); err == nil {
		t.Error("LoadBatch accepted an unknown field")
	}
	b, err := LoadBatch(strings.NewReader(""))
	if err != nil || len(b.Expressions) != 0 {
		t.Errorf("LoadBatch(empty) = %v, %v", b, err)
	}
}

func TestIntegerOverflowIsMaskedByParenthesis(t *testing.T) {
	const big = "99999999999999999999"

	r := text.Integer.Parse(input.NewString(big))
	if r.IsSuccess() || r.ErrorMessage() != "Integer out of range" || r.Offset() != 0 {
		t.Errorf("Integer.Parse(%q) = %v", big, r)
	}

	_, err := Eval(big)
	want := `Expected string literal "(" at 0 ("` + big + `")`
	if err == nil || err.Error() != want {
		t.Errorf("Eval(%q) error = %v, want %q", big, err, want)
	}
}
