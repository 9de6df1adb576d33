// Package pair provides an immutable two-element tuple.
package pair

import "fmt"

type Pair[T, U any] struct {
	Fst T
	Snd U
}

func Of[T, U any](fst T, snd U) Pair[T, U] {
	return Pair[T, U]{Fst: fst, Snd: snd}
}

// First projects the first element; useful as a map function.
func First[T, U any](p Pair[T, U]) T { return p.Fst }

// Second projects the second element.
func Second[T, U any](p Pair[T, U]) U { return p.Snd }

func (p Pair[T, U]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd)
}
