// Package mctx implements the mutation-context protocol shared by every
// persistent structure in this module.
//
// A persistent value is immutable by default: once built, its content never
// changes, and derived values share structure with it freely. The protocol
// adds a controlled exception — a *batch* — during which a value and the
// nodes it touches may be mutated in place, after which the whole batch is
// frozen back to immutable in O(1).
//
// Model:
//
//   - Every persistent value holds exactly one *Context.
//   - A Context holds a pointer to a shared one-word token cell and an
//     integer scope. All contexts minted for one batch alias the same token
//     cell; "same batch" is token pointer equality, never the token's value.
//   - scope >= 0 marks the *primary* context — the batch owner; the number
//     itself counts nested Begin/Commit pairs on that owner.
//   - scope == -1 marks a *subordinate* context — a participant that cannot
//     end the batch. One subordinate context object may be shared by any
//     number of values (it carries no owner state beyond the token).
//   - One canonical frozen context exists process-wide; every immutable
//     value outside any batch holds it.
//
// Lifecycle:
//
//   - Begin(v): immutable v is cloned into a fresh primary batch; a mutable
//     primary v has its scope incremented; a mutable subordinate v is
//     returned unchanged. The original of an immutable v is never touched.
//   - inside the batch, structural code recruits each node it intends to
//     mutate via AsSubordinate/AsEqual/ModifyField — clone-on-write happens
//     exactly where contexts diverge.
//   - Commit(v): on the primary owner, decrement scope while nested, or flip
//     the shared token once scope reaches zero — every value holding a
//     related context becomes immutable at that instant, with no traversal.
//     On a subordinate value Commit is a no-op.
//
// Concurrency:
//
// The protocol is single-writer by design. Token reads and writes are plain,
// not atomic; an open batch must stay confined to one goroutine. Frozen
// values are safe to share between goroutines without synchronization.
//
// Errors (sentinel):
//
//	– ErrNotMutable  recruiting a child through an owner whose batch is not open.
//	– ErrFrozen      mutating a field of an immutable parent.
//
// Both signal contract violations — the caller skipped Begin — and are
// raised as panics carrying the sentinel (match with errors.Is after
// recover). No other operation in this package can fail.
//
// Complexity:
//
//	– Every operation is O(1); Commit freezes a batch of any size in O(1).
package mctx
