// Package plist implements a persistent singly linked list and a batch
// Builder, both honoring the mctx mutation-context protocol.
//
// The nil *List is the empty list — the one shared sentinel, immutable by
// construction — and every method is nil-safe. Cons, Reverse, and the other
// persistent operations never touch an existing cell.
//
// Builder is the batch side: it appends in place to cells that all live in
// one open mutation batch (sharing a single subordinate context object),
// and List() freezes the whole chain with one shared-token flip. A Builder
// is single-use; appending after List() violates the protocol and panics
// with mctx.ErrNotMutable.
//
// Complexity:
//
//	– Cons, Head, Tail, Len: O(1)
//	– Builder.Append: O(1); Builder.List: O(n) once (suffix counts), O(1) freeze
//	– Reverse, Concat, Map, Slice, Walk: O(n)
package plist
