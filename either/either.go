// Package either provides a value that is one of two alternatives.
package either

import "fmt"

// Either holds a Left value of type L or a Right value of type R.
// The zero Either is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding v on the left.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either holding v on the right.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool  { return !e.isRight }
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left value and whether e is a Left.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether e is a Right.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Value returns whichever side is held.
func (e Either[L, R]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold applies onLeft or onRight depending on the held side.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Merge returns the held value of an Either whose sides share a type.
func Merge[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}
