// Package comp provides the ordering primitives shared by the B+tree and
// table packages.
package comp

import (
	"golang.org/x/exp/constraints"
)

// Comparator reports the strict weak order between a and b: negative if
// a < b, positive if b < a, zero if they are equivalent. Implementations
// must not assume equivalence implies Go's == operator holds.
type Comparator[T any] func(a, b T) int

// GenericComparator returns a Comparator for any type with a natural
// ordering.
func GenericComparator[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Less reports whether a strictly precedes b under cmp.
func Less[T any](cmp Comparator[T], a, b T) bool {
	return cmp(a, b) < 0
}

// Equivalent reports whether a and b are neither less than the other under
// cmp, i.e. the strict-weak-order notion of equality.
func Equivalent[T any](cmp Comparator[T], a, b T) bool {
	return cmp(a, b) == 0
}

// ReverseComparator returns cmp with its order inverted.
func ReverseComparator[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -cmp(a, b)
	}
}

// ByteSliceComparator compares two byte slices lexicographically.
func ByteSliceComparator(a, b []byte) int {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}
