// SPDX-License-Identifier: MIT
//
// File: value.go
// Role: The persistent-value capability and the batch lifecycle verbs
//       (Begin / Commit / Update / EnsureContext).

package mctx

// Value is the capability every persistent structure variant implements.
// The type parameter is F-bounded (T's implementation returns T), so the
// lifecycle verbs stay fully typed with no assertions at the call site.
//
// Clone must produce a shallow structural copy: same logical content, the
// supplied context, owned children shared by reference — never recursively
// copied. The protocol decides child by child whether a deeper clone is
// needed, via AsSubordinate and ModifyField.
type Value[T any] interface {
	Holder
	Clone(ctx *Context) T
}

// Begin enters a batch on v and returns the value to mutate. It is
// idempotent with respect to batch membership:
//
//   - immutable v: cloned into a fresh primary batch; v itself is untouched;
//   - mutable primary v: nesting depth is incremented, v returned unchanged;
//   - mutable subordinate v: returned unchanged — it does not own the batch,
//     so there is nothing to count.
func Begin[T Value[T]](v T) T {
	c := v.MutationContext()
	if c.tok.active {
		if c.scope >= 0 {
			c.scope++
		}
		return v
	}
	return v.Clone(Mutable())
}

// Commit leaves a batch on v, the inverse of Begin. On the primary owner it
// unwinds one nesting level, and once the depth reaches zero it flips the
// shared token — freezing every value of the batch in O(1), wherever it
// lives. On a subordinate value Commit is a no-op; only committing the
// owner ends the batch. Commit never clones and always returns v.
func Commit[T Value[T]](v T) T {
	c := v.MutationContext()
	if c.scope > 0 {
		c.scope--
		return v
	}
	if c.scope == 0 {
		c.tok.active = false
	}
	return v
}

// Update runs mutate inside a Begin/Commit pair and returns the committed
// result. The procedure always sees a mutable value, and if v started
// immutable, no mutability leaks past the call: the result is frozen and v
// is untouched. If v was already inside an open batch, Update nests via the
// scope counter and the batch stays open afterwards.
func Update[T Value[T]](mutate func(T), v T) T {
	w := Begin(v)
	mutate(w)
	return Commit(w)
}

// EnsureContext returns v if it carries exactly ctx — the same instance,
// a stricter test than Related — and otherwise clones v into ctx.
func EnsureContext[T Value[T]](ctx *Context, v T) T {
	if v.MutationContext() == ctx {
		return v
	}
	return v.Clone(ctx)
}
