package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/combi/calc"
)

type JSONEncoder struct {
	w  io.Writer
	ev calc.Evaluation
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(ev calc.Evaluation) error {
	e.ev = ev
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(NewRecord(e.ev), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
