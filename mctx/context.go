// SPDX-License-Identifier: MIT
//
// File: context.go
// Role: Context representation, the canonical frozen context, preference
//       normalization, and the token-identity predicates.
// Policy:
//   - The token cell is aliased, never copied; relatedness is pointer equality.
//   - Token reads/writes are plain; batches are single-goroutine (see doc.go).

package mctx

// token is the shared mutable cell at the heart of a batch. Every context
// minted for one batch aliases the same cell; flipping active to false
// freezes all of them at once.
type token struct {
	active bool
}

// subordinateScope tags a context that participates in a batch without
// owning it. Primary contexts use scope >= 0, where the number counts
// nested Begin/Commit pairs.
const subordinateScope = -1

// Context tracks whether a persistent value is currently mutable and, if so,
// which batch it belongs to and whether it owns that batch.
//
// Contexts are compared by the identity of their token cell, never by its
// boolean value. The zero Context is not valid; obtain contexts through
// Immutable, Mutable, Select, or Subordinate.
type Context struct {
	tok   *token
	scope int

	// sub caches the one subordinate context of a primary's batch, so any
	// number of recruited values share a single context object.
	sub *Context
}

// frozen is the one canonical immutable context. Its token is permanently
// inactive and shared by every immutable value outside any batch.
var frozen = &Context{tok: new(token), scope: subordinateScope}

// Immutable returns the canonical frozen context. It is safe to share
// globally and is never allocated per call.
func Immutable() *Context { return frozen }

// Mutable mints a primary context for a brand-new batch: a fresh active
// token cell and nesting depth zero. Use it only when originating a new
// mutable structure; joining an existing batch goes through Subordinate.
func Mutable() *Context {
	return &Context{tok: &token{active: true}}
}

// MutationContext lets a *Context stand in wherever a Holder is expected,
// so owner-or-context call sites take a single parameter type.
func (c *Context) MutationContext() *Context { return c }

// Holder is anything carrying a mutation context: a persistent value, or a
// bare *Context itself.
type Holder interface {
	MutationContext() *Context
}

// IsMutable reports whether h's batch is currently open. The answer is read
// from the shared token at call time and is never cached.
func IsMutable(h Holder) bool { return h.MutationContext().tok.active }

// IsImmutable reports whether h's context is frozen.
func IsImmutable(h Holder) bool { return !IsMutable(h) }

// IsPrimary reports whether h's context owns its batch.
func IsPrimary(h Holder) bool { return h.MutationContext().scope >= 0 }

// IsSubordinate reports whether h's context participates in a batch it does
// not own.
func IsSubordinate(h Holder) bool { return h.MutationContext().scope == subordinateScope }

// Related reports whether a and b belong to the same batch: exact pointer
// equality of their token cells. This is the only legal "same batch" test;
// the token's boolean value plays no part in it.
func Related(a, b Holder) bool {
	return a.MutationContext().tok == b.MutationContext().tok
}

// Subordinate derives a non-owning context related to h's batch. If h's
// context is already subordinate it is returned unmodified, and a primary
// hands out its batch's single cached subordinate instance — chains of
// subordinate relationships never allocate, and every value recruited into
// one batch shares one context object.
func Subordinate(h Holder) *Context {
	c := h.MutationContext()
	if c.scope == subordinateScope {
		return c
	}
	if c.sub == nil {
		c.sub = &Context{tok: c.tok, scope: subordinateScope}
	}
	return c.sub
}

// Preference names the context a freshly constructed value should carry.
// It is produced by Mutability, InContext, or SameBatch; the nil Preference
// means "frozen". Select is the single normalization point every
// clone-requesting call site goes through.
type Preference interface {
	context() *Context
}

// Select normalizes a construct-time context preference:
//
//	nil              → the canonical frozen context
//	Mutability(b)    → a fresh primary batch, or frozen
//	InContext(ctx)   → ctx itself if its batch is open, else frozen
//	SameBatch(h)     → a subordinate context of h's batch
func Select(p Preference) *Context {
	if p == nil {
		return frozen
	}
	return p.context()
}

type mutabilityPref bool

func (p mutabilityPref) context() *Context {
	if p {
		return Mutable()
	}
	return frozen
}

// Mutability prefers a brand-new primary batch when mutable is true, the
// frozen context otherwise.
func Mutability(mutable bool) Preference { return mutabilityPref(mutable) }

type contextPref struct{ c *Context }

func (p contextPref) context() *Context {
	if p.c == nil || !p.c.tok.active {
		return frozen
	}
	return p.c
}

// InContext prefers ctx as-is while its batch is open; a closed or nil ctx
// degrades to the frozen context.
func InContext(ctx *Context) Preference { return contextPref{c: ctx} }

type batchPref struct{ h Holder }

func (p batchPref) context() *Context { return Subordinate(p.h) }

// SameBatch prefers a subordinate context of h's batch, so the new value
// joins h without gaining the power to end the batch.
func SameBatch(h Holder) Preference { return batchPref{h: h} }
