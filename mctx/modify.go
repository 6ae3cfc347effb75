// SPDX-License-Identifier: MIT
//
// File: modify.go
// Role: Recruitment primitives — pulling children into an open batch — and
//       the sentinel errors raised on contract violations.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Violations are raised as panics wrapping the sentinel with the
//     operation name; match with errors.Is after recover.
//   • A violation means the calling structural operation skipped Begin —
//     a logic bug in the structure implementation, never a runtime fault.

package mctx

import (
	"errors"
	"fmt"
)

// ErrNotMutable indicates an attempt to recruit a child into a batch through
// an owner or context whose batch is not open.
// Usage: errors.Is(recovered, ErrNotMutable).
var ErrNotMutable = errors.New("mctx: owner batch is not open")

// ErrFrozen indicates an attempt to modify a field of an immutable parent.
// Usage: errors.Is(recovered, ErrFrozen).
var ErrFrozen = errors.New("mctx: value is immutable")

// AsSubordinate brings child into owner's batch as a non-owning participant.
// A child that is already subordinate and related to owner is returned
// unchanged; anything else — unrelated, or a primary of the same token —
// is cloned into a subordinate context of the batch.
//
// Panics with ErrNotMutable if owner's batch is not open: a structure
// cannot recruit children into a batch that does not exist.
func AsSubordinate[T Value[T]](owner Holder, child T) T {
	oc := owner.MutationContext()
	if !oc.tok.active {
		panic(fmt.Errorf("mctx.AsSubordinate: %w", ErrNotMutable))
	}
	cc := child.MutationContext()
	if cc.scope == subordinateScope && cc.tok == oc.tok {
		return child
	}
	return child.Clone(Subordinate(oc))
}

// AsEqual is the relaxed variant of AsSubordinate: a child related to
// owner's batch is returned unchanged even when its context is primary —
// the child may legitimately be an independent batch owner sharing the
// token. Only an unrelated child is cloned into a subordinate context.
//
// Panics with ErrNotMutable if owner's batch is not open.
func AsEqual[T Value[T]](owner Holder, child T) T {
	oc := owner.MutationContext()
	if !oc.tok.active {
		panic(fmt.Errorf("mctx.AsEqual: %w", ErrNotMutable))
	}
	if child.MutationContext().tok == oc.tok {
		return child
	}
	return child.Clone(Subordinate(oc))
}

// ModifyField prepares the child held in one of parent's slots for in-place
// mutation: if the slot's value does not already share parent's batch as a
// subordinate, it is cloned into one and written back through slot. The
// (possibly replaced) child is returned. This is the standard
// copy-on-write-a-field step every structural operation performs before
// mutating through a nested node.
//
// The slot must hold a non-nil value; absent children (sentinel leaves) are
// the caller's special case and never pass through the clone-on-write
// machinery.
//
// Panics with ErrFrozen if parent itself is immutable.
func ModifyField[P Value[P], C Value[C]](parent P, slot *C) C {
	pc := parent.MutationContext()
	if !pc.tok.active {
		panic(fmt.Errorf("mctx.ModifyField: %w", ErrFrozen))
	}
	child := *slot
	cc := child.MutationContext()
	if cc.scope != subordinateScope || cc.tok != pc.tok {
		child = child.Clone(Subordinate(pc))
		*slot = child
	}
	return child
}
