// SPDX-License-Identifier: MIT
//
// File: insert.go
// Role: Persistent insertion — recursive descent with clone-on-write via the
//       mctx protocol, Okasaki-style rebalancing on the way back up.

package rbtree

import "github.com/katalvlaran/persist/mctx"

// Insert returns a tree containing (k, v), overwriting the value if a key
// comparing equal is already present. On a frozen tree the whole update runs
// in its own batch and the result comes back frozen; inside an open batch
// the tree is mutated in place and stays open.
//
// Complexity: O(log n).
func (t *Tree[K, V]) Insert(k K, v V) *Tree[K, V] {
	return mctx.Update(func(mt *Tree[K, V]) {
		mt.root = mt.ins(mt.root, k, v)
		// ins leaves the root recruited, so the recolor is in place.
		mt.root.red = false
	}, t)
}

// ins descends to the insertion point. Every node on the path is recruited
// into the open batch — a clone when it predates the batch, in place when it
// already joined — so the path copy emerges one node at a time.
func (t *Tree[K, V]) ins(n *node[K, V], k K, v V) *node[K, V] {
	if n == nil {
		return t.newNode(k, v, true)
	}

	c := t.cmp(k, n.key)
	if c == 0 {
		n = t.recruit(n)
		n.val = v
		return n
	}

	n = t.recruit(n)
	if c < 0 {
		n.left = t.ins(n.left, k, v)
	} else {
		n.right = t.ins(n.right, k, v)
	}
	n.refresh()

	return t.balance(n)
}

// balance resolves a red-red violation directly beneath black n (the four
// classic insertion cases). n must already be recruited into the open batch;
// the rotated nodes are pulled in through ModifyField, so reused nodes stay
// in place and foreign ones are cloned exactly once.
func (t *Tree[K, V]) balance(n *node[K, V]) *node[K, V] {
	if n.red {
		return n
	}

	switch {
	case isRed(n.left) && isRed(n.left.left):
		l := mctx.ModifyField(n, &n.left)
		ll := mctx.ModifyField(l, &l.left)
		n.left = l.right
		n.refresh()
		ll.red = false
		l.red = true
		l.left, l.right = ll, n
		l.refresh()

		return l

	case isRed(n.left) && isRed(n.left.right):
		l := mctx.ModifyField(n, &n.left)
		lr := mctx.ModifyField(l, &l.right)
		n.left = lr.right
		n.refresh()
		l.red = false
		l.right = lr.left
		l.refresh()
		lr.red = true
		lr.left, lr.right = l, n
		lr.refresh()

		return lr

	case isRed(n.right) && isRed(n.right.right):
		r := mctx.ModifyField(n, &n.right)
		rr := mctx.ModifyField(r, &r.right)
		n.right = r.left
		n.refresh()
		rr.red = false
		r.red = true
		r.left, r.right = n, rr
		r.refresh()

		return r

	case isRed(n.right) && isRed(n.right.left):
		r := mctx.ModifyField(n, &n.right)
		rl := mctx.ModifyField(r, &r.left)
		n.right = rl.left
		n.refresh()
		r.red = false
		r.left = rl.right
		r.refresh()
		rl.red = true
		rl.left, rl.right = n, r
		rl.refresh()

		return rl
	}

	return n
}
