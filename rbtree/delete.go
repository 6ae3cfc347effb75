// SPDX-License-Identifier: MIT
//
// File: delete.go
// Role: Persistent deletion — Kahrs' functional red-black scheme (balleft /
//       balright / fuse) layered over the clone-on-write protocol.

package rbtree

import "github.com/katalvlaran/persist/mctx"

// Delete returns a tree without the key comparing equal to k. Deleting an
// absent key returns a tree with identical content. The batching behavior
// mirrors Insert: own batch on a frozen tree, in place inside an open one.
//
// Complexity: O(log n).
func (t *Tree[K, V]) Delete(k K) *Tree[K, V] {
	return mctx.Update(func(mt *Tree[K, V]) {
		root, ok := mt.del(mt.root, k)
		if !ok {
			return
		}
		if root != nil {
			root = mt.recruit(root)
			root.red = false
		}
		mt.root = root
	}, t)
}

// del removes k from the subtree under n. The boolean reports whether the
// key was found; on a miss the subtree is handed back untouched, so the
// caller skips all rebalancing.
func (t *Tree[K, V]) del(n *node[K, V], k K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	c := t.cmp(k, n.key)
	switch {
	case c < 0:
		l := n.left
		nl, ok := t.del(l, k)
		if !ok {
			return n, false
		}
		if l != nil && !l.red {
			// The left subtree lost a black node; repair the deficit.
			return t.balleft(nl, n, n.right), true
		}

		return t.with(n, true, nl, n.right), true

	case c > 0:
		r := n.right
		nr, ok := t.del(r, k)
		if !ok {
			return n, false
		}
		if r != nil && !r.red {
			return t.balright(n.left, n, nr), true
		}

		return t.with(n, true, n.left, nr), true

	default:
		return t.fuse(n.left, n.right), true
	}
}

// balanceD is balance extended with the both-children-red case that only
// deletion can produce. n must be recruited, black, and carry fresh counts.
func (t *Tree[K, V]) balanceD(n *node[K, V]) *node[K, V] {
	if isRed(n.left) && isRed(n.right) {
		l := mctx.ModifyField(n, &n.left)
		r := mctx.ModifyField(n, &n.right)
		l.red, r.red = false, false
		n.red = true

		return n
	}

	return t.balance(n)
}

// redden recruits a black node and recolors it red (Kahrs' sub1), paying
// back one unit of black height.
func (t *Tree[K, V]) redden(n *node[K, V]) *node[K, V] {
	n = t.recruit(n)
	n.red = true

	return n
}

// balleft repairs a one-black deficit in the left subtree l, with pivot n
// and intact right subtree r.
func (t *Tree[K, V]) balleft(l *node[K, V], n, r *node[K, V]) *node[K, V] {
	switch {
	case isRed(l):
		l = t.recruit(l)
		l.red = false

		return t.with(n, true, l, r)

	case !isRed(r):
		// r is black and non-nil here: the right side carries the surplus.
		return t.balanceD(t.with(n, false, l, t.redden(r)))

	default:
		// r is red; its left child is a black non-nil node.
		rl := r.left
		a, b := rl.left, rl.right
		c := t.redden(r.right)
		nn := t.with(n, false, l, a)
		inner := t.balanceD(t.with(r, false, b, c))

		return t.with(rl, true, nn, inner)
	}
}

// balright mirrors balleft for a deficit in the right subtree.
func (t *Tree[K, V]) balright(l *node[K, V], n, r *node[K, V]) *node[K, V] {
	switch {
	case isRed(r):
		r = t.recruit(r)
		r.red = false

		return t.with(n, true, l, r)

	case !isRed(l):
		return t.balanceD(t.with(n, false, t.redden(l), r))

	default:
		lr := l.right
		b, c := lr.left, lr.right
		a := t.redden(l.left)
		inner := t.balanceD(t.with(l, false, a, b))
		nn := t.with(n, false, c, r)

		return t.with(lr, true, inner, nn)
	}
}

// fuse joins the two subtrees around a removed node (Kahrs' app). The seam
// runs down the facing edges; every node rewired on the way is recruited.
func (t *Tree[K, V]) fuse(l, r *node[K, V]) *node[K, V] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l

	case isRed(l) && isRed(r):
		m := t.fuse(l.right, r.left)
		if isRed(m) {
			m = t.recruit(m)
			ml, mr := m.left, m.right
			nl := t.with(l, true, l.left, ml)
			nr := t.with(r, true, mr, r.right)
			m.left, m.right = nl, nr
			m.refresh()

			return m
		}

		return t.with(l, true, l.left, t.with(r, true, m, r.right))

	case !isRed(l) && !isRed(r):
		m := t.fuse(l.right, r.left)
		if isRed(m) {
			m = t.recruit(m)
			ml, mr := m.left, m.right
			nl := t.with(l, false, l.left, ml)
			nr := t.with(r, false, mr, r.right)
			m.left, m.right = nl, nr
			m.refresh()

			return m
		}
		la := l.left
		nr := t.with(r, false, m, r.right)

		return t.balleft(la, l, nr)

	case isRed(r):
		return t.with(r, true, t.fuse(l, r.left), r.right)

	default:
		return t.with(l, true, l.left, t.fuse(l.right, r))
	}
}
