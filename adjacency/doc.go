// SPDX-License-Identifier: MIT
// Package: necklace/adjacency
//
// Package adjacency decides whether two scale patterns are one elementary
// edit apart, regardless of which note either pattern starts on.
//
// 🎯 The three edits
//
//	Swap  (flatten / sharpen one note)
//	      a b ·rest   ↔   b a ·rest      with a ≠ b
//	      e.g. 2-2-1-2-2-2-1 → 2-2-2-1-2-2-1 (raise the fourth: ionian → lydian)
//
//	Split (insert a note inside a step)
//	      a b ·rest   ←   (a+b) ·rest
//	      e.g. 2-2-2-2-2-2 → 1-1-2-2-2-2-2
//
//	Merge (remove a note) — Split read backwards.
//
// Every edit touches the first one or two steps of some rotation of each
// pattern and leaves the remaining steps identical. Two patterns are adjacent
// when some rotation of one and some rotation of the other satisfy one of the
// edits at their heads.
//
// Because the relation only depends on rotation classes, a pattern can be
// adjacent to itself: swapping two steps of the major scale yields another
// mode of the major scale. IsAdjacent does not special-case that.
//
// Determinism: Explain scans rotations of p ascending, then rotations of q
// ascending, then tries Swap, Split, Merge, and returns the first hit.
//
// Complexity: O(n·m·min(n,m)) per pair for lengths n and m; O(|set|) pairs for To.
package adjacency
