package format

import (
	"io"

	"github.com/dhamidi/combi/calc"
)

// TextEncoder writes one "expr = value" line per evaluation.
type TextEncoder struct {
	w  io.Writer
	ev calc.Evaluation
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(ev calc.Evaluation) error {
	e.ev = ev
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	return []byte(e.ev.String() + "\n"), nil
}
