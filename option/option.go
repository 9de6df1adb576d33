// Package option provides a container for a value that may be absent.
package option

import (
	"fmt"
	"reflect"
)

// Option holds either a value (Some) or nothing (None).
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of returns None when v is nil (including typed nil pointers, maps,
// slices, funcs, channels and interfaces) and Some(v) otherwise.
func Of[T any](v T) Option[T] {
	if isNil(v) {
		return None[T]()
	}
	return Some(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the held value and whether there was one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrDefault returns the held value, or def when o is None.
func (o Option[T]) OrDefault(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Filter returns o when it holds a value satisfying pred, None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the value of o. The result goes through Of, so a nil
// result becomes None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Of(f(o.value))
}

// FlatMap applies f to the value of o and returns its Option unchanged.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}
