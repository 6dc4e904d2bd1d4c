package grammar

import "github.com/katalvlaran/necklace/steps"

// Symbol tags the three nonterminals of the pattern grammar.
type Symbol uint8

const (
	// SymbolA derives a run of one or two half steps followed by a B.
	SymbolA Symbol = iota

	// SymbolB derives an augmented step followed by an A, or a whole step
	// (optionally followed by an augmented step) followed by a C.
	SymbolB

	// SymbolC derives either the empty continuation or an A or a B.
	SymbolC

	numSymbols
)

// String returns the single-letter name of the nonterminal.
func (s Symbol) String() string {
	switch s {
	case SymbolA:
		return "A"
	case SymbolB:
		return "B"
	case SymbolC:
		return "C"
	default:
		return "?"
	}
}

// production is one right-hand side: literal steps followed by a nonterminal
// over the remaining length.
type production struct {
	head steps.Pattern
	tail Symbol
}

// productions lists the right-hand sides in derivation order. SymbolC is
// special-cased by the deriver (empty continuation, then A, then B).
var productions = [numSymbols][]production{
	SymbolA: {
		{head: steps.Of(1), tail: SymbolB},
		{head: steps.Of(1, 1), tail: SymbolB},
	},
	SymbolB: {
		{head: steps.Of(3), tail: SymbolA},
		{head: steps.Of(2), tail: SymbolC},
		{head: steps.Of(2, 3), tail: SymbolC},
	},
}

// minLength is the smallest remaining length for which a nonterminal may
// produce anything; below it the derivation yields no patterns.
var minLength = [numSymbols]int{
	SymbolA: 2,
	SymbolB: 1,
	SymbolC: 0,
}
