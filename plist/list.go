// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: The persistent list cell and its read-only / persistent surface.

package plist

import "github.com/katalvlaran/persist/mctx"

// List is one cell of a persistent singly linked list; nil is the empty
// list. Each cell carries its suffix length, so Len is O(1).
type List[A any] struct {
	ctx  *mctx.Context
	head A
	tail *List[A]
	n    int
}

func (l *List[A]) MutationContext() *mctx.Context { return l.ctx }

// Clone is the shallow protocol hook: the tail is shared, never copied.
func (l *List[A]) Clone(ctx *mctx.Context) *List[A] {
	cp := *l
	cp.ctx = ctx
	return &cp
}

// Len returns the number of elements. O(1).
func (l *List[A]) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// IsEmpty reports whether the list has no elements.
func (l *List[A]) IsEmpty() bool { return l == nil }

// Head returns the first element, or ok=false on the empty list.
func (l *List[A]) Head() (a A, ok bool) {
	if l == nil {
		return a, false
	}
	return l.head, true
}

// Tail returns the list without its first element; the empty list is its
// own tail.
func (l *List[A]) Tail() *List[A] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Cons prepends a, sharing the receiver as the new cell's tail. The new
// cell is born frozen: prepending needs no batch.
func (l *List[A]) Cons(a A) *List[A] {
	return &List[A]{
		ctx:  mctx.Select(nil),
		head: a,
		tail: l,
		n:    l.Len() + 1,
	}
}

// Walk visits elements front to back until fn returns false.
func (l *List[A]) Walk(fn func(A) bool) {
	for c := l; c != nil; c = c.tail {
		if !fn(c.head) {
			return
		}
	}
}

// Slice copies the elements into a fresh slice.
func (l *List[A]) Slice() []A {
	out := make([]A, 0, l.Len())
	l.Walk(func(a A) bool {
		out = append(out, a)
		return true
	})

	return out
}

// Reverse returns the elements in opposite order. Pure cons-accumulation:
// every produced cell is frozen, the receiver is shared untouched.
func (l *List[A]) Reverse() *List[A] {
	var acc *List[A]
	for c := l; c != nil; c = c.tail {
		acc = acc.Cons(c.head)
	}

	return acc
}

// Concat returns l followed by other. The cells of l are rebuilt inside one
// batch and frozen together; other is attached as-is, fully shared.
func (l *List[A]) Concat(other *List[A]) *List[A] {
	if l == nil {
		return other
	}
	if other == nil {
		return l
	}

	b := NewBuilder[A]()
	l.Walk(func(a A) bool {
		b.Append(a)
		return true
	})
	b.rest = other

	return b.List()
}

// Map returns a list of fn applied to each element, built in one batch.
func Map[A, B any](l *List[A], fn func(A) B) *List[B] {
	b := NewBuilder[B]()
	l.Walk(func(a A) bool {
		b.Append(fn(a))
		return true
	})

	return b.List()
}

// Of builds a list of the given elements through a Builder, so any number
// of items costs one batch and one freeze.
func Of[A any](items ...A) *List[A] {
	b := NewBuilder[A]()
	for _, it := range items {
		b.Append(it)
	}

	return b.List()
}
