package classify

import (
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// Class identifies one of the four combinations of the two properties.
type Class struct {
	Augmented  bool
	DoubleHalf bool
}

// ClassOf classifies p.
func ClassOf(p steps.Pattern) Class {
	return Class{
		Augmented:  HasAugmentedStep(p),
		DoubleHalf: HasAdjacentHalfSteps(p),
	}
}

// Table holds a set split into its four disjoint classes, indexed
// [augmented][doubleHalf] with false=0 and true=1.
type Table [2][2][]steps.Pattern

// Partition splits set into the four classes, preserving set order within
// each class. Every entry of set lands in exactly one cell.
func Partition(set *grammar.Set) Table {
	var t Table
	if set == nil {
		return t
	}
	set.Each(func(_ int, p steps.Pattern) bool {
		c := ClassOf(p)
		a, d := b2i(c.Augmented), b2i(c.DoubleHalf)
		t[a][d] = append(t[a][d], p.Clone())
		return true
	})
	return t
}

// Get returns the patterns of class c.
func (t *Table) Get(c Class) []steps.Pattern {
	return t[b2i(c.Augmented)][b2i(c.DoubleHalf)]
}

// Counts returns the size of each cell, indexed like the table.
func (t *Table) Counts() [2][2]int {
	var out [2][2]int
	for a := 0; a < 2; a++ {
		for d := 0; d < 2; d++ {
			out[a][d] = len(t[a][d])
		}
	}
	return out
}

// Total returns the number of patterns across all four cells.
func (t *Table) Total() int {
	c := t.Counts()
	return c[0][0] + c[0][1] + c[1][0] + c[1][1]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
