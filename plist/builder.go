// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Batch construction of lists — append in place inside one open
//       mutation batch, then a single O(1) freeze.

package plist

import "github.com/katalvlaran/persist/mctx"

// Builder accumulates list elements by mutating the chain in place. The
// first appended cell owns the batch; every later cell joins it as a
// subordinate, all sharing one context object. List() commits the batch.
//
// A Builder is confined to one goroutine and is single-use: Append after
// List() panics with mctx.ErrNotMutable.
type Builder[A any] struct {
	head *List[A] // batch owner, primary context
	last *List[A]
	size int
	rest *List[A] // frozen remainder attached by Concat
}

// NewBuilder returns an empty builder. The batch opens on the first Append.
func NewBuilder[A any]() *Builder[A] {
	return &Builder[A]{}
}

// Append adds a to the end of the list under construction.
func (b *Builder[A]) Append(a A) *Builder[A] {
	if b.head == nil {
		b.head = &List[A]{ctx: mctx.Select(mctx.Mutability(true)), head: a}
		b.last = b.head
		b.size = 1
		return b
	}

	// The last cell may be the primary owner (the head) or a subordinate;
	// AsEqual keeps either as long as the batch is open, and traps appends
	// on an already-committed builder.
	last := mctx.AsEqual(b.head, b.last)
	cell := &List[A]{ctx: mctx.Select(mctx.SameBatch(b.head)), head: a}
	last.tail = cell
	b.last = cell
	b.size++

	return b
}

// Len returns the number of elements appended so far.
func (b *Builder[A]) Len() int { return b.size + b.rest.Len() }

// List seals the builder: suffix lengths are filled in one backward-free
// pass and the whole chain is frozen by a single token flip. Calling List
// again returns the same frozen list.
func (b *Builder[A]) List() *List[A] {
	if b.head == nil {
		return b.rest
	}
	if mctx.IsImmutable(b.head) {
		return b.head
	}

	b.last.tail = b.rest
	n := b.size + b.rest.Len()
	for c := b.head; c != b.rest; c = c.tail {
		c.n = n
		n--
	}

	return mctx.Commit(b.head)
}
