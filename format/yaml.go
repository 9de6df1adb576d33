package format

import (
	"io"

	"github.com/dhamidi/combi/calc"
	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes each evaluation as its own YAML document.
type YAMLEncoder struct {
	w     io.Writer
	ev    calc.Evaluation
	count int
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(ev calc.Evaluation) error {
	e.ev = ev
	if e.count > 0 {
		if _, err := io.WriteString(e.w, "---\n"); err != nil {
			return err
		}
	}
	e.count++
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(NewRecord(e.ev))
}
