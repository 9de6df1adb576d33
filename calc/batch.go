package calc

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("combi.calc")

// Case is one expression of a batch file, optionally with the expected
// value or the expected error message.
type Case struct {
	Expr  string `yaml:"expr"`
	Want  *int   `yaml:"want,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// Batch is the document read by LoadBatch:
//
//	expressions:
//	  - expr: 2*3
//	    want: 6
//	  - expr: 2*3-7))
//	    error: Unparsed input remains
type Batch struct {
	Expressions []Case `yaml:"expressions"`
}

// Outcome is the evaluation of a Case. Pass is true when the evaluation
// matches the expectation, or when the case has none and succeeded.
type Outcome struct {
	Case       Case
	Evaluation Evaluation
	Pass       bool
}

// LoadBatch decodes a YAML batch document.
func LoadBatch(r io.Reader) (*Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if err == io.EOF {
			return &b, nil
		}
		return nil, errors.Wrap(err, "decode batch")
	}
	return &b, nil
}

// RunBatch evaluates every case with at most workers goroutines sharing
// the same grammar. Outcomes are returned in the order of the cases.
func RunBatch(ctx context.Context, b *Batch, mode Mode, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(b.Expressions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range b.Expressions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ev := Evaluate(c.Expr, mode)
			outcomes[i] = Outcome{Case: c, Evaluation: ev, Pass: c.check(ev)}
			log.Debugf("evaluated %q: %s", c.Expr, ev)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "run batch")
	}

	failed := 0
	for _, o := range outcomes {
		if !o.Pass {
			failed++
		}
	}
	log.Infof("batch of %d expressions: %d passed, %d failed", len(outcomes), len(outcomes)-failed, failed)
	return outcomes, nil
}

func (c Case) check(ev Evaluation) bool {
	switch {
	case c.Error != "":
		return ev.Err != nil && ev.Err.Message == c.Error
	case c.Want != nil:
		return ev.OK() && ev.Value == *c.Want
	}
	return ev.OK()
}
