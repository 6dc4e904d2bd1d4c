package render_test

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/katalvlaran/necklace/render"
	"github.com/katalvlaran/necklace/steps"
)

// ExampleNecklace draws D dorian, the white keys from D.
func ExampleNecklace() {
	dorian := steps.Of(2, 1, 2, 2, 2, 1, 2)
	out := render.Necklace(dorian, 2, 0, render.PlainTheme())
	fmt.Println(strings.Join(strings.Fields(ansi.Strip(out)), " "))
	// Output:
	// C · D · E F · G · A · B
}
