// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Tree and node representation, construction options, sentinel errors,
//       and the mctx capability wiring (context slots + shallow clone hooks).

package rbtree

import (
	"errors"

	"github.com/katalvlaran/persist/mctx"
	"github.com/katalvlaran/persist/ord"
)

// Sentinel errors for the rbtree package.
var (
	// ErrNilComparator indicates New was called without a comparator.
	ErrNilComparator = errors.New("rbtree: comparator is nil")

	// ErrOutOfRange indicates a rank passed to At is outside [0, Len()).
	ErrOutOfRange = errors.New("rbtree: rank out of range")
)

// node is one tree cell. The nil pointer is the process-wide sentinel for an
// absent child: it is immutable by construction and every structural helper
// special-cases it away from the clone-on-write machinery.
type node[K, V any] struct {
	ctx   *mctx.Context
	key   K
	val   V
	red   bool
	count int // subtree size, maintained by refresh
	left  *node[K, V]
	right *node[K, V]
}

func (n *node[K, V]) MutationContext() *mctx.Context { return n.ctx }

// Clone is the shallow protocol hook: same fields, new context, children
// shared by reference.
func (n *node[K, V]) Clone(ctx *mctx.Context) *node[K, V] {
	cp := *n
	cp.ctx = ctx
	return &cp
}

// size is nil-safe subtree cardinality.
func (n *node[K, V]) size() int {
	if n == nil {
		return 0
	}
	return n.count
}

// refresh recomputes the subtree count from the children.
func (n *node[K, V]) refresh() {
	n.count = n.left.size() + n.right.size() + 1
}

// isRed is nil-safe: the sentinel leaf is black.
func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.red
}

// Tree is a persistent ordered map. The zero value is not usable; construct
// with New. A Tree is safe to share once frozen; an open (transient) Tree is
// confined to one goroutine.
type Tree[K, V any] struct {
	ctx  *mctx.Context
	cmp  ord.Comparator[K]
	root *node[K, V]
}

func (t *Tree[K, V]) MutationContext() *mctx.Context { return t.ctx }

// Clone produces the tree header clone the protocol asks for: same root and
// comparator, caller-supplied context. Nodes are never copied here.
func (t *Tree[K, V]) Clone(ctx *mctx.Context) *Tree[K, V] {
	cp := *t
	cp.ctx = ctx
	return &cp
}

// Option configures a Tree at construction time.
type Option func(*options)

type options struct {
	transient bool
}

// WithTransient opens the new tree inside a fresh mutation batch, so the
// first run of updates mutates in place. Freeze it with mctx.Commit.
func WithTransient() Option {
	return func(o *options) { o.transient = true }
}

// New builds an empty tree ordered by cmp.
//
// Panics with ErrNilComparator if cmp is nil; construction is otherwise
// infallible.
func New[K, V any](cmp ord.Comparator[K], opts ...Option) *Tree[K, V] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree[K, V]{
		ctx: mctx.Select(mctx.Mutability(o.transient)),
		cmp: cmp,
	}
}

// recruit pulls n into t's open batch, cloning unless n already joined it.
// The nil sentinel never enters the batch.
func (t *Tree[K, V]) recruit(n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	return mctx.AsSubordinate(t, n)
}

// newNode allocates a node inside t's open batch. All nodes born in one
// batch share the batch's single subordinate context object.
func (t *Tree[K, V]) newNode(k K, v V, red bool) *node[K, V] {
	return &node[K, V]{
		ctx:   mctx.Select(mctx.SameBatch(t)),
		key:   k,
		val:   v,
		red:   red,
		count: 1,
	}
}

// with rewires n to carry the given color and children, recruiting it into
// the batch first. It is the single mutation funnel the rebalancing helpers
// go through.
func (t *Tree[K, V]) with(n *node[K, V], red bool, l, r *node[K, V]) *node[K, V] {
	n = t.recruit(n)
	n.red = red
	n.left, n.right = l, r
	n.refresh()
	return n
}
