// Package thunk provides a lazily computed, cached value.
package thunk

import (
	"sync"
	"sync/atomic"
)

// Thunk defers a computation until its value is first requested. The
// computation runs at most once, even under concurrent first access;
// every later call returns the cached value.
type Thunk[T any] struct {
	once     sync.Once
	done     atomic.Bool
	f        func() T
	v        T
	panicked any
}

func New[T any](f func() T) *Thunk[T] {
	return &Thunk[T]{f: f}
}

// Value returns the computed value, running the computation if needed.
// If the computation panics, this and every later call panic with the
// same value. Calling Value from inside the computation deadlocks.
func (t *Thunk[T]) Value() T {
	t.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				t.panicked = r
			}
			t.f = nil
			t.done.Store(true)
		}()
		t.v = t.f()
	})
	if t.panicked != nil {
		panic(t.panicked)
	}
	return t.v
}

// Evaluated reports whether the computation has already run.
func (t *Thunk[T]) Evaluated() bool {
	return t.done.Load()
}
