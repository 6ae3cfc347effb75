// Package rbtree implements a persistent red-black tree map on top of the
// mctx mutation-context protocol.
//
// A Tree is immutable: Insert and Delete return a new Tree sharing all
// untouched nodes with the receiver. Under the hood each operation runs
// inside a mutation batch (mctx.Update): nodes created or already recruited
// within the open batch are mutated in place, every other node on the
// touched path is cloned exactly once — the classic path copy falls out of
// the protocol node by node. Committing the batch freezes every node that
// joined it with a single shared-token flip.
//
// Batching several updates is explicit and cheap:
//
//	t = mctx.Begin(t)        // open a batch (clones the frozen tree header)
//	t = t.Insert(1, "a")     // in place — the batch stays open
//	t = t.Insert(2, "b")     // in place
//	t = mctx.Commit(t)       // one O(1) freeze for every node touched
//
// Keying is an opaque comparator (ord.Comparator): negative, zero, positive.
// Keys that compare equal are the same key; Insert overwrites the value.
//
// Complexity:
//
//	– Insert/Delete/Get/Has: O(log n) time; Insert/Delete allocate O(log n)
//	  nodes outside a batch and amortize toward O(1) clones inside one.
//	– Min/Max/At: O(log n); At uses per-node subtree counts (order statistics).
//	– Walk/Keys/Values: O(n).
//
// Errors (sentinel):
//
//	– ErrNilComparator — New called without a comparator (constructor panic).
//	– ErrOutOfRange   — At called with a rank outside [0, Len()) (panic).
//
// Rebalancing follows the classical functional red-black scheme (Okasaki
// insertion balance, Kahrs deletion balance); the protocol decides, node by
// node, whether each rebalancing step may reuse a node in place.
package rbtree
