package grammar

import (
	"github.com/katalvlaran/necklace/steps"
)

// deriver holds the memo table for one Generate call.
//
// table[s][l] caches every step sequence derivable from nonterminal s with
// remaining length l; done[s][l] marks the entry as computed (an empty list is
// a legitimate result).
type deriver struct {
	table [numSymbols][][]steps.Pattern
	done  [numSymbols][]bool
}

func newDeriver(n int) *deriver {
	d := &deriver{}
	for s := Symbol(0); s < numSymbols; s++ {
		d.table[s] = make([][]steps.Pattern, n+1)
		d.done[s] = make([]bool, n+1)
	}
	return d
}

// derive returns all sequences derivable from sym over exactly length l.
// Results are shared between callers and must not be mutated.
func (d *deriver) derive(sym Symbol, l int) []steps.Pattern {
	if l < minLength[sym] {
		return nil
	}
	if d.done[sym][l] {
		return d.table[sym][l]
	}

	var out []steps.Pattern
	switch sym {
	case SymbolC:
		if l == 0 {
			out = []steps.Pattern{{}}
			break
		}
		out = append(out, d.derive(SymbolA, l)...)
		out = append(out, d.derive(SymbolB, l)...)
	default:
		for _, prod := range productions[sym] {
			for _, tail := range d.derive(prod.tail, l-prod.head.Sum()) {
				out = append(out, join(prod.head, tail))
			}
		}
	}

	d.table[sym][l] = out
	d.done[sym][l] = true
	return out
}

// join allocates a fresh pattern holding head followed by tail.
func join(head, tail steps.Pattern) steps.Pattern {
	p := make(steps.Pattern, 0, len(head)+len(tail))
	p = append(p, head...)
	return append(p, tail...)
}

// Generate enumerates every pattern derivable from C(n), in derivation order.
//
// Contract:
//   - n < 0  → an empty Set and ErrInvalidSize.
//   - n == 0 → a Set holding the single empty pattern.
//   - n > 0  → every pattern sums to n and uses only steps 1, 2 and 3.
//
// Identical n always yields identical patterns in identical order.
//
// Complexity: O(n) memoised subproblems; time and memory linear in output.
func Generate(n int) (*Set, error) {
	if n < 0 {
		return &Set{octave: n}, ErrInvalidSize
	}

	d := newDeriver(n)
	derived := d.derive(SymbolC, n)

	// Subproblem results are shared across the table; copy so the Set owns
	// its patterns outright.
	patterns := make([]steps.Pattern, len(derived))
	for i, p := range derived {
		patterns[i] = p.Clone()
	}
	return newSet(n, patterns), nil
}
