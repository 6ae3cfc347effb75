// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Read-only surface — lookups, extrema, order statistics, traversal.
//       Nothing here touches a mutation context.

package rbtree

import "fmt"

// Get returns the value stored under the key comparing equal to k.
//
// Complexity: O(log n).
func (t *Tree[K, V]) Get(k K) (V, bool) {
	n := t.root
	for n != nil {
		switch c := t.cmp(k, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.val, true
		}
	}

	var zero V
	return zero, false
}

// Has reports whether a key comparing equal to k is present.
func (t *Tree[K, V]) Has(k K) bool {
	_, ok := t.Get(k)
	return ok
}

// Len returns the number of entries. O(1): counts are maintained per node.
func (t *Tree[K, V]) Len() int { return t.root.size() }

// Min returns the smallest entry, or ok=false on an empty tree.
//
// Complexity: O(log n).
func (t *Tree[K, V]) Min() (k K, v V, ok bool) {
	n := t.root
	if n == nil {
		return k, v, false
	}
	for n.left != nil {
		n = n.left
	}

	return n.key, n.val, true
}

// Max returns the largest entry, or ok=false on an empty tree.
//
// Complexity: O(log n).
func (t *Tree[K, V]) Max() (k K, v V, ok bool) {
	n := t.root
	if n == nil {
		return k, v, false
	}
	for n.right != nil {
		n = n.right
	}

	return n.key, n.val, true
}

// At returns the i-th smallest entry (rank access over the per-node counts).
//
// Panics with ErrOutOfRange if i is outside [0, Len()).
//
// Complexity: O(log n).
func (t *Tree[K, V]) At(i int) (K, V) {
	if i < 0 || i >= t.Len() {
		panic(fmt.Errorf("rbtree.At(%d) of %d: %w", i, t.Len(), ErrOutOfRange))
	}

	n := t.root
	for {
		switch l := n.left.size(); {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return n.key, n.val
		}
	}
}

// Walk visits entries in key order until fn returns false.
//
// Complexity: O(n).
func (t *Tree[K, V]) Walk(fn func(K, V) bool) {
	walk(t.root, fn)
}

func walk[K, V any](n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, fn) && fn(n.key, n.val) && walk(n.right, fn)
}

// Keys returns all keys in order.
func (t *Tree[K, V]) Keys() []K {
	ks := make([]K, 0, t.Len())
	t.Walk(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})

	return ks
}

// Values returns all values in key order.
func (t *Tree[K, V]) Values() []V {
	vs := make([]V, 0, t.Len())
	t.Walk(func(_ K, v V) bool {
		vs = append(vs, v)
		return true
	})

	return vs
}
