package network_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/network"
	"github.com/katalvlaran/necklace/steps"
)

// ExampleGraph_Path counts the edits between two six-semitone scales.
func ExampleGraph_Path() {
	set, _ := grammar.Generate(6)
	g, _ := network.Build(context.Background(), set)

	from, _ := g.Vertex(steps.Of(2, 2, 2))
	to, _ := g.Vertex(steps.Of(1, 2, 3))
	path, err := g.Path(from, to)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range path {
		fmt.Println(g.Set().At(v))
	}
	// Output:
	// 2-2-2
	// 1-1-2-2
	// 1-2-3
}
