package monotonic

import "cmp"

// NonDecreasing is the natural order relation: next may follow prev when prev <= next.
//
// Floating point NaN values are ordered as cmp.Compare does it,
// a NaN is considered less than any other value.
func NonDecreasing[T cmp.Ordered](prev, next T) bool {
	return cmp.Compare(prev, next) <= 0
}

// Increasing is the strict natural order: next may follow prev only when prev < next.
// Ties are dropped.
func Increasing[T cmp.Ordered](prev, next T) bool {
	return cmp.Compare(prev, next) < 0
}

// NonIncreasing keeps next when prev >= next.
func NonIncreasing[T cmp.Ordered](prev, next T) bool {
	return 0 <= cmp.Compare(prev, next)
}

// Decreasing keeps next only when prev > next.
func Decreasing[T cmp.Ordered](prev, next T) bool {
	return 0 < cmp.Compare(prev, next)
}

// By compares elements through a derived key,
// while the filter still yields the original elements.
//
//	monotonic.By(func(p Person) int { return p.Age }, monotonic.NonDecreasing[int])
func By[T, K any](key func(T) K, keep KeepFunc[K]) KeepFunc[T] {
	return func(prev, next T) bool {
		return keep(key(prev), key(next))
	}
}

// ByKey is a shorthand for By with the natural non-decreasing order of the key.
func ByKey[T any, K cmp.Ordered](key func(T) K) KeepFunc[T] {
	return By(key, NonDecreasing[K])
}

// Reverse swaps the arguments of the keep relation.
func Reverse[T any](keep KeepFunc[T]) KeepFunc[T] {
	return func(prev, next T) bool {
		return keep(next, prev)
	}
}
