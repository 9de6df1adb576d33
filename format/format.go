// Package format renders evaluations as text, JSON or YAML.
package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/combi/calc"
	"github.com/pkg/errors"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(ev calc.Evaluation) error
}

// Names lists the formats accepted by NewEncoder.
var Names = []string{"text", "json", "yaml"}

// NewEncoder returns the encoder registered under name.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	}
	return nil, errors.Errorf("unknown format %q", name)
}

// Record is the structured form of an evaluation shared by the JSON and
// YAML encoders. Value is absent on failure; Error and Offset are absent
// on success.
type Record struct {
	Expr   string `json:"expr" yaml:"expr"`
	Value  *int   `json:"value,omitempty" yaml:"value,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Offset *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// NewRecord converts ev to a Record.
func NewRecord(ev calc.Evaluation) Record {
	r := Record{Expr: ev.Expr}
	if ev.OK() {
		v := ev.Value
		r.Value = &v
		return r
	}
	off := ev.Err.Offset
	r.Error = ev.Err.Error()
	r.Offset = &off
	return r
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
