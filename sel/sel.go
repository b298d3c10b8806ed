package sel

import (
	"iter"
	"slices"
)

// Pred returns true if a traversed value is allowed.
type Pred[T any] func(T) bool

func AllowAll[T any](T) bool {
	return true
}

func MakeFilter[T comparable](include, exclude []T) Pred[T] {
	if len(include) == 0 && len(exclude) == 0 {
		return AllowAll[T]
	}

	return func(v T) bool {
		if len(include) != 0 && !slices.Contains(include, v) {
			return false
		}

		if len(exclude) != 0 && slices.Contains(exclude, v) {
			return false
		}

		return true
	}
}

// Filtered wraps seq, yielding only the values the predicate allows.
func Filtered[T any](seq iter.Seq[T], allow Pred[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !allow(v) {
				continue
			}

			if !yield(v) {
				return
			}
		}
	}
}
