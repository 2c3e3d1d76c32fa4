// Package monotonic implements a greedy, single pass, order based sequence filter.
//
// # Summary
//
// The filter walks a source sequence from left to right,
// and yields an element only when it is consistent with the previously yielded element,
// according to a "keep" relation.
// Every element that fails the check is dropped for good, it is never reconsidered.
// With the natural order, the result is the "staircase" of the source:
//
//	1, 3, 4, 3, 5, 1, 2, 3 -> 1, 3, 4, 5
//
// The filter never reorders elements, and it doesn't look for the longest possible subsequence.
// The first element of the source is always yielded, since there is nothing to compare it against.
//
// The keep relation must be a pure function.
// It doesn't have to be transitive or antisymmetric,
// the result is defined purely by the greedy left to right pass.
//
// A Filter is itself a pullkit.Iterator, thus filters can wrap other filters
// or any other adapter that consumes a pullkit.Iterator.
package monotonic

import (
	"cmp"

	"go.llib.dev/staircase/pkg/pullkit"
)

// KeepFunc tells whether next can follow prev in the filtered sequence.
type KeepFunc[T any] func(prev, next T) bool

// New wraps the source with a filter that uses the natural non-decreasing order (prev <= next).
//
// The Filter takes ownership of the source, the source should not be pulled by anyone else,
// and closing the Filter closes the source.
func New[T cmp.Ordered](src pullkit.Iterator[T], opts ...Option[T]) *Filter[T] {
	return NewFunc(src, NonDecreasing[T], opts...)
}

// NewFunc wraps the source with a filter that uses the given keep relation.
func NewFunc[T any](src pullkit.Iterator[T], keep KeepFunc[T], opts ...Option[T]) *Filter[T] {
	if src == nil {
		panic("monotonic: nil source pullkit.Iterator")
	}
	if keep == nil {
		panic("monotonic: nil KeepFunc")
	}
	return &Filter[T]{
		src:    pullkit.NewPeekable(src),
		keep:   keep,
		config: toConfig(opts),
	}
}

// Filter is a pullkit.Iterator that yields the elements of its source
// which are consistent with the previously yielded element.
//
// Filter holds one element of lookahead.
// When Next returns true, the elements that would be rejected by the current Value
// are already consumed from the source and discarded.
//
// Filter is not safe for concurrent use.
type Filter[T any] struct {
	src    *pullkit.Peekable[T]
	keep   KeepFunc[T]
	config config[T]

	value  T
	done   bool
	closed bool
}

func (f *Filter[T]) Next() bool {
	if f.done {
		return false
	}
	if !f.src.Next() {
		f.done = true
		return false
	}
	curr := f.src.Value()
	for {
		next, ok := f.src.Peek()
		if !ok || f.keep(curr, next) {
			break
		}
		f.src.Next()
		f.config.discard(curr, next)
	}
	f.value = curr
	return true
}

// Value returns the element yielded by the last successful Next call.
func (f *Filter[T]) Value() T {
	return f.value
}

// Err reports the error of the source, if it has any.
func (f *Filter[T]) Err() error {
	return f.src.Err()
}

// Close stops the filtering and closes the source.
func (f *Filter[T]) Close() error {
	f.done = true
	if f.closed {
		return nil
	}
	f.closed = true
	return f.src.Close()
}
