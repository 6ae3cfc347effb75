// Package ord provides plain comparator functions for the ordered
// collections in this module.
//
// A Comparator is the whole contract: negative for a<b, zero for equal,
// positive for a>b. There is deliberately no typeclass machinery here —
// consumers such as rbtree take the bare function and nothing else.
package ord

import "cmp"

// Comparator reports the order of a and b: <0, 0, or >0.
type Comparator[T any] func(a, b T) int

// Natural orders any cmp.Ordered type by its built-in comparison.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Reverse inverts the order defined by c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// By orders values by a derived key.
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int { return c(key(a), key(b)) }
}
