package monotonic

import (
	"cmp"
	"iter"
	"slices"
)

// Seq filters an iter.Seq with the natural non-decreasing order.
//
// The returned sequence can be iterated as many times as the source can be,
// and each iteration starts the filtering from scratch.
func Seq[T cmp.Ordered](seq iter.Seq[T], opts ...Option[T]) iter.Seq[T] {
	return SeqFunc(seq, NonDecreasing[T], opts...)
}

// SeqFunc filters an iter.Seq with the given keep relation.
//
// Unlike the pull based Filter, the OnDiscard observers are called lazily,
// a dropped element is reported only after the kept element before it was yielded.
func SeqFunc[T any](seq iter.Seq[T], keep KeepFunc[T], opts ...Option[T]) iter.Seq[T] {
	if keep == nil {
		panic("monotonic: nil KeepFunc")
	}
	c := toConfig(opts)
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		var (
			last T
			ok   bool
		)
		for v := range seq {
			if ok && !keep(last, v) {
				c.discard(last, v)
				continue
			}
			last, ok = v, true
			if !yield(v) {
				return
			}
		}
	}
}

// ErrSeq filters an iter.Seq2[T, error] with the given keep relation.
//
// Errors from the source are passed through as they are,
// and the value paired with an error never takes part in the comparison.
// OnDiscard observers are called lazily, as with SeqFunc.
func ErrSeq[T any](seq iter.Seq2[T, error], keep KeepFunc[T], opts ...Option[T]) iter.Seq2[T, error] {
	if keep == nil {
		panic("monotonic: nil KeepFunc")
	}
	c := toConfig(opts)
	return func(yield func(T, error) bool) {
		if seq == nil {
			return
		}
		var (
			last T
			ok   bool
		)
		for v, err := range seq {
			if err != nil {
				var zero T
				if !yield(zero, err) {
					return
				}
				continue
			}
			if ok && !keep(last, v) {
				c.discard(last, v)
				continue
			}
			last, ok = v, true
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Slice returns the natural order staircase of a slice.
func Slice[T cmp.Ordered](vs []T, opts ...Option[T]) []T {
	return SliceFunc(vs, NonDecreasing[T], opts...)
}

// SliceFunc returns the staircase of a slice using the given keep relation.
// The input slice is not modified.
func SliceFunc[T any](vs []T, keep KeepFunc[T], opts ...Option[T]) []T {
	var out = make([]T, 0, len(vs))
	for v := range SeqFunc(slices.Values(vs), keep, opts...) {
		out = append(out, v)
	}
	return out
}
