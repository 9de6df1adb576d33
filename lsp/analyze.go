package lsp

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/dhamidi/combi/calc"
	"github.com/pkg/errors"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const source = "combi"

// Analyzer evaluates documents holding one expression per line. Results
// are cached by line text, so editing one line of a large document only
// re-parses that line.
type Analyzer struct {
	mode  calc.Mode
	cache *ristretto.Cache[string, calc.Evaluation]
}

// NewAnalyzer creates an analyzer caching up to maxLines evaluations.
func NewAnalyzer(mode calc.Mode, maxLines int64) (*Analyzer, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, calc.Evaluation]{
		NumCounters: maxLines * 10,
		MaxCost:     maxLines,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create cache")
	}
	return &Analyzer{mode: mode, cache: cache}, nil
}

func (a *Analyzer) Close() {
	a.cache.Close()
}

// Evaluate evaluates a single line.
func (a *Analyzer) Evaluate(line string) calc.Evaluation {
	if ev, ok := a.cache.Get(line); ok {
		return ev
	}
	ev := calc.Evaluate(line, a.mode)
	a.cache.Set(line, ev, 1)
	return ev
}

// Lines splits a document into lines, dropping the trailing carriage
// return of CRLF line endings.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Diagnostics returns one error diagnostic per failing line. Blank lines
// are skipped. The range runs from the failure offset to the end of the
// line.
func (a *Analyzer) Diagnostics(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i, line := range Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev := a.Evaluate(line)
		if ev.OK() {
			continue
		}
		start := min(ev.Err.Offset, len(line))
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(i), Character: utf16Column(line, start)},
				End:   protocol.Position{Line: protocol.UInteger(i), Character: utf16Column(line, len(line))},
			},
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   stringPtr(source),
			Message:  ev.Err.Error(),
		})
	}
	return diagnostics
}

// Hover returns "= value" for a line holding a valid expression.
func (a *Analyzer) Hover(text string, line int) (string, bool) {
	lines := Lines(text)
	if line < 0 || line >= len(lines) || strings.TrimSpace(lines[line]) == "" {
		return "", false
	}
	ev := a.Evaluate(lines[line])
	if !ev.OK() {
		return "", false
	}
	return "= " + strconv.Itoa(ev.Value), true
}

// utf16Column converts a byte offset within line to the UTF-16 code unit
// count LSP positions use.
func utf16Column(line string, offset int) protocol.UInteger {
	return protocol.UInteger(len(utf16.Encode([]rune(line[:offset]))))
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func stringPtr(s string) *string {
	return &s
}
