// SPDX-License-Identifier: MIT
// Protocol lifecycle tests: Begin/Commit idempotence and nesting, the O(1)
// freeze, recruitment primitives, and the two contract-violation panics.

package mctx_test

import (
	"testing"

	"github.com/katalvlaran/persist/mctx"
	"github.com/stretchr/testify/require"
)

func TestBegin_ClonesImmutableLeavesOriginalUntouched(t *testing.T) {
	v := newCell(nil, 41)
	w := mctx.Begin(v)

	require.NotSame(t, v, w, "Begin on an immutable value must clone")
	require.Equal(t, v.val, w.val, "the clone carries the same content")
	require.True(t, mctx.IsImmutable(v), "the original never joins the batch")
	require.True(t, mctx.IsMutable(w))
	require.True(t, mctx.IsPrimary(w), "the clone owns the fresh batch")
}

func TestBegin_IdempotentOnOpenBatch(t *testing.T) {
	v := mctx.Begin(newCell(nil, 1))

	// A primary owner is returned unchanged; only its depth grows.
	require.Same(t, v, mctx.Begin(v))

	// A subordinate participant is returned unchanged with nothing counted.
	sub := mctx.AsSubordinate(v, newCell(nil, 2))
	require.Same(t, sub, mctx.Begin(sub))

	// Unwind the two Begins on the owner.
	mctx.Commit(v)
	require.True(t, mctx.IsMutable(v), "inner commit only unwinds nesting")
	mctx.Commit(v)
	require.True(t, mctx.IsImmutable(v))
}

func TestCommit_RoundTripPreservesContentAndFreezes(t *testing.T) {
	v := newCell(nil, 10)
	w := mctx.Commit(mctx.Begin(v))

	require.Equal(t, 10, w.val, "a no-op batch must not disturb content")
	require.True(t, mctx.IsImmutable(w), "commit restores immutability")

	// Re-entering yields a fresh clone again; frozen values never unfreeze.
	x := mctx.Begin(w)
	require.NotSame(t, w, x)
	require.True(t, mctx.IsImmutable(w))
}

func TestCommit_SubordinateIsANoOp(t *testing.T) {
	owner := mctx.Begin(newCell(nil, 1))
	sub := mctx.AsSubordinate(owner, newCell(nil, 2))

	require.Same(t, sub, mctx.Commit(sub))
	require.True(t, mctx.IsMutable(owner), "committing a subordinate must not end the batch")
	require.True(t, mctx.IsMutable(sub))

	mctx.Commit(owner)
	require.True(t, mctx.IsImmutable(sub), "only the owner ends the batch")
}

func TestCommit_FreezesWholeBatchInOneFlip(t *testing.T) {
	owner := mctx.Begin(newCell(nil, 0))

	// Recruit a fan of subordinates; none is touched again afterwards.
	members := make([]*cell, 8)
	for i := range members {
		members[i] = mctx.AsSubordinate(owner, newCell(nil, i))
		require.True(t, mctx.IsMutable(members[i]))
	}

	mctx.Commit(owner)
	for i, m := range members {
		require.True(t, mctx.IsImmutable(m), "member %d must freeze with the owner", i)
	}
}

func TestAsSubordinate_Contract(t *testing.T) {
	owner := mctx.Begin(newCell(nil, 0))

	// A related subordinate passes through untouched.
	sub := mctx.AsSubordinate(owner, newCell(nil, 1))
	require.Same(t, sub, mctx.AsSubordinate(owner, sub))

	// Two related subordinates share one context object (allocation
	// avoidance: subordinate contexts carry no owner state).
	sub2 := mctx.AsSubordinate(owner, newCell(nil, 2))
	require.Same(t, sub.MutationContext(), sub2.MutationContext())

	// An unrelated value is cloned into the batch.
	foreign := newCell(mctx.Mutability(true), 3)
	joined := mctx.AsSubordinate(owner, foreign)
	require.NotSame(t, foreign, joined)
	require.True(t, mctx.Related(joined, owner))
	require.True(t, mctx.IsSubordinate(joined))

	// A related primary is demoted to subordinate via a clone.
	require.NotSame(t, owner, mctx.AsSubordinate(owner, owner))
}

func TestAsEqual_KeepsRelatedPrimary(t *testing.T) {
	owner := mctx.Begin(newCell(nil, 0))

	// Related child keeps its identity whether subordinate or primary.
	require.Same(t, owner, mctx.AsEqual(owner, owner))
	sub := mctx.AsSubordinate(owner, newCell(nil, 1))
	require.Same(t, sub, mctx.AsEqual(owner, sub))

	// Unrelated child is still cloned in as a subordinate.
	foreign := newCell(nil, 2)
	joined := mctx.AsEqual(owner, foreign)
	require.NotSame(t, foreign, joined)
	require.True(t, mctx.IsSubordinate(joined))
	require.True(t, mctx.Related(joined, owner))
}

func TestRecruitment_PanicsWhenBatchNotOpen(t *testing.T) {
	closed := newCell(nil, 0)
	child := newCell(nil, 1)

	mustPanicIs(t, mctx.ErrNotMutable, func() { mctx.AsSubordinate(closed, child) })
	mustPanicIs(t, mctx.ErrNotMutable, func() { mctx.AsEqual(closed, child) })

	// Same violation through a bare context owner.
	mustPanicIs(t, mctx.ErrNotMutable, func() { mctx.AsSubordinate(mctx.Immutable(), child) })
}

func TestModifyField_Contract(t *testing.T) {
	parent := mctx.Begin(newCell(nil, 0))
	parent.next = newCell(nil, 1)
	shared := parent.next

	got := mctx.ModifyField(parent, &parent.next)
	require.NotSame(t, shared, got, "a frozen child must be cloned before mutation")
	require.Same(t, parent.next, got, "the clone is written back through the slot")
	require.True(t, mctx.Related(got, parent))
	require.True(t, mctx.IsSubordinate(got))

	// Already recruited: the second call is identity, no reallocation.
	require.Same(t, got, mctx.ModifyField(parent, &parent.next))

	// In-place child mutation is now safe and invisible to the original.
	got.val = 99
	require.Equal(t, 1, shared.val)
}

func TestModifyField_PanicsOnFrozenParent(t *testing.T) {
	parent := newCell(nil, 0)
	parent.next = newCell(nil, 1)
	mustPanicIs(t, mctx.ErrFrozen, func() { mctx.ModifyField(parent, &parent.next) })
}

func TestUpdate_WrapsMutationInABatch(t *testing.T) {
	v := newCell(nil, 1)
	w := mctx.Update(func(c *cell) {
		require.True(t, mctx.IsMutable(c), "the procedure always sees a mutable value")
		c.val = 2
	}, v)

	require.Equal(t, 1, v.val, "the immutable input is never mutated")
	require.Equal(t, 2, w.val)
	require.True(t, mctx.IsImmutable(w), "mutability must not leak past Update")
}

func TestUpdate_NestsInsideOpenBatch(t *testing.T) {
	v := mctx.Begin(newCell(nil, 1))
	w := mctx.Update(func(c *cell) { c.val++ }, v)

	require.Same(t, v, w, "an open owner is reused, not cloned")
	require.True(t, mctx.IsMutable(v), "inner Update must not close the outer batch")
	mctx.Commit(v)
	require.True(t, mctx.IsImmutable(v))
	require.Equal(t, 2, v.val)
}

func TestEnsureContext_ExactReferenceCheck(t *testing.T) {
	owner := mctx.Mutable()
	sub := mctx.Subordinate(owner)

	v := &cell{ctx: sub, val: 5}
	require.Same(t, v, mctx.EnsureContext(sub, v))

	// Related is not enough: a different context instance forces a clone.
	other := &cell{ctx: owner, val: 5}
	require.True(t, mctx.Related(v, other))
	w := mctx.EnsureContext(sub, other)
	require.NotSame(t, other, w)
	require.Same(t, sub, w.MutationContext())
}
