package parse

import (
	"github.com/dhamidi/combi/input"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("combi.parse")

// Trace logs entry and exit of p at debug level under name. It does not
// change the result.
func (p Parser[S, T]) Trace(name string) Parser[S, T] {
	return Parser[S, T]{
		kind: KindTrace,
		name: name,
		run: func(in input.Input[S]) Result[S, T] {
			if !log.AllowLevel(commonlog.Debug) {
				return p.Parse(in)
			}
			log.Debugf("%s: enter at %d", name, in.Offset())
			r := p.Parse(in)
			if r.ok {
				log.Debugf("%s: success at %d: %v", name, r.Offset(), r.value)
			} else {
				log.Debugf("%s: failure at %d: %s", name, r.Offset(), r.message)
			}
			return r
		},
	}
}
