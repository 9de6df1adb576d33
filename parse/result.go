package parse

import (
	"fmt"

	"github.com/dhamidi/combi/input"
)

// Result is the outcome of running a parser: a Success holding a value or
// a Failure holding a message. Both carry the input position where
// parsing continues (success) or stopped (failure).
type Result[S, T any] struct {
	value   T
	message string
	next    input.Input[S]
	ok      bool
}

func Success[S, T any](value T, next input.Input[S]) Result[S, T] {
	return Result[S, T]{value: value, next: next, ok: true}
}

func Failure[S, T any](message string, next input.Input[S]) Result[S, T] {
	return Result[S, T]{message: message, next: next}
}

// retype carries a failure across a change of value type.
func retype[S, T, U any](r Result[S, T]) Result[S, U] {
	return Failure[S, U](r.message, r.next)
}

func (r Result[S, T]) IsSuccess() bool { return r.ok }
func (r Result[S, T]) IsFailure() bool { return !r.ok }

// Value returns the parsed value; it is the zero T for failures.
func (r Result[S, T]) Value() T { return r.value }

// ErrorMessage returns the failure message; it is empty for successes.
func (r Result[S, T]) ErrorMessage() string { return r.message }

// Next returns the input position after the parse.
func (r Result[S, T]) Next() input.Input[S] { return r.next }

// Offset returns the offset of Next, or 0 when there is none.
func (r Result[S, T]) Offset() int {
	if r.next == nil {
		return 0
	}
	return r.next.Offset()
}

// FullErrorMessage renders the failure message with the offset and the
// unconsumed input, e.g.
//
//	Expected string literal ")" at 4 ("... +7")
func (r Result[S, T]) FullErrorMessage() string {
	return r.error().Error()
}

// Err returns the failure as an *Error, or nil for a success.
func (r Result[S, T]) Err() error {
	if r.ok {
		return nil
	}
	return r.error()
}

func (r Result[S, T]) error() *Error {
	e := &Error{Message: r.message}
	if r.next != nil {
		e.Offset = r.next.Offset()
		e.Remaining = fmt.Sprint(r.next.Remaining())
	}
	return e
}

func (r Result[S, T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.FullErrorMessage())
}
