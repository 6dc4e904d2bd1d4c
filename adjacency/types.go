// SPDX-License-Identifier: MIT
// Package: necklace/adjacency
//
// types.go — Edit kinds and the Match witness returned by Explain.

package adjacency

// Edit names the elementary transformation relating two patterns.
type Edit uint8

const (
	// EditNone means the patterns are not one edit apart.
	EditNone Edit = iota

	// EditSwap exchanges two neighbouring, unequal steps.
	EditSwap

	// EditSplit: p is q with one step split in two (p has one step more).
	EditSplit

	// EditMerge: p is q with two neighbouring steps merged (p has one
	// step fewer). It is EditSplit with p and q exchanged.
	EditMerge
)

// String returns the lower-case name of the edit.
func (e Edit) String() string {
	switch e {
	case EditSwap:
		return "swap"
	case EditSplit:
		return "split"
	case EditMerge:
		return "merge"
	default:
		return "none"
	}
}

// Match witnesses an adjacency: rotating p left by From and q left by To
// puts the edit at the head of both sequences.
type Match struct {
	Edit Edit
	From int
	To   int
}
