// Package persist is a small family of persistent (immutable, structurally
// shared) collections built around one shared engine: a batched mutation
// protocol that lets a value be mutated in place temporarily, then frozen
// back to immutable in O(1).
//
// 🚀 What is persist?
//
//	A modern, zero-surprise library that brings together:
//		• mctx   — the mutation-context protocol: open a batch, clone-on-write
//		           exactly where contexts diverge, freeze every participant
//		           with a single shared-token flip
//		• rbtree — a persistent red-black tree map with batch (transient)
//		           insert/delete and order-statistic lookups
//		• plist  — a persistent cons list plus a Builder that appends in
//		           place inside a batch and hands out a frozen list
//		• ord    — plain comparator helpers (no typeclass machinery)
//
// ✨ Why choose persist?
//
//   - Structural sharing you can trust – a frozen value never changes, ever
//   - Batches, not locks – group many updates, pay one freeze
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – misuse panics with exported sentinel errors,
//     everything else is total
//
// The protocol in one breath: Begin clones an immutable value into a fresh
// mutable batch (or just bumps the nesting depth of an open one), every
// structural operation recruits the nodes it touches into that batch via
// clone-on-write, and Commit flips one shared token so every recruited node
// becomes immutable at once — no traversal, no per-node work.
//
// Quick taste:
//
//	t := rbtree.New[int, string](ord.Natural[int]())
//	t = t.Insert(5, "e").Insert(3, "c").Insert(8, "h")
//	t2 := t.Delete(3) // t still has 3 keys; t2 shares most of t's nodes
//
// Dive into each package's doc.go for contracts, complexity, and the exact
// freeze semantics.
//
//	go get github.com/katalvlaran/persist
package persist
