// Package pullkit complements iterkit's pull iterators.
//
// # Summary
//
// With a pull iterator the consumer decides when the next element is produced,
// and it can stop at any point by calling Close.
// Adapters that need lookahead can both consume and implement the same Iterator interface,
// thus they can be nested without special casing.
//
// The interface itself is iterkit.PullIter, this package only adds what iterkit doesn't offer:
// a conversion from iter.Seq2[T, error] which ends at the first error,
// and a Peekable wrapper for one element lookahead.
package pullkit

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Iterator is the pull iterator shared with iterkit.
type Iterator[T any] = iterkit.PullIter[T]

// Slice returns an Iterator that walks through the values of a slice.
func Slice[T any](vs []T) Iterator[T] {
	return FromSeq(slices.Values(vs))
}

// FromSeq turns an iter.Seq into an Iterator.
// Close must be called when the iteration is abandoned early,
// as it releases the iter.Pull coroutine.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	return iterkit.ToPullIter[T](func(yield func(T, error) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if !yield(v, nil) {
				return
			}
		}
	})
}

// FromErrSeq turns an iter.Seq2[T, error] into an Iterator.
// The first yielded error ends the iteration and becomes the result of Err.
//
// iterkit.ToPullIter reports an error together with a successful Next,
// which would hand the zero value paired with the error to the consumer as an element.
func FromErrSeq[T any](seq iter.Seq2[T, error]) Iterator[T] {
	if seq == nil {
		seq = func(yield func(T, error) bool) {}
	}
	next, stop := iter.Pull2(seq)
	return &errSeqIter[T]{next: next, stop: stop}
}

type errSeqIter[T any] struct {
	next  func() (T, error, bool)
	stop  func()
	value T
	err   error
	done  bool
}

func (i *errSeqIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		i.done = true
		return false
	}
	if err != nil {
		i.err = err
		i.done = true
		return false
	}
	i.value = v
	return true
}

func (i *errSeqIter[T]) Value() T   { return i.value }
func (i *errSeqIter[T]) Err() error { return i.err }

func (i *errSeqIter[T]) Close() error {
	i.done = true
	i.stop()
	return nil
}
