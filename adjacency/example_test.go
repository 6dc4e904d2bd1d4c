package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/necklace/adjacency"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/steps"
)

// ExampleExplain shows which edit relates the whole-tone scale to a scale
// with one whole step split into two half steps.
func ExampleExplain() {
	m, ok := adjacency.Explain(steps.Of(2, 2, 1, 1, 2, 2, 2), steps.Of(2, 2, 2, 2, 2, 2))
	fmt.Println(ok, m.Edit, m.From, m.To)
	// Output:
	// true split 2 0
}

// ExampleTo lists the neighbours of the whole-tone scale in a six-semitone octave.
func ExampleTo() {
	set, _ := grammar.Generate(6)
	for _, q := range adjacency.To(steps.Of(2, 2, 2), set) {
		fmt.Println(q)
	}
	// Output:
	// 1-1-2-2
	// 2-1-1-2
}
