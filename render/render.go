package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/pitch"
	"github.com/katalvlaran/necklace/steps"
)

// Dot marks a pitch class outside the scale.
const Dot = "·"

// Badges shown by Table.
const (
	BadgeAugmented  = "aug"
	BadgeDoubleHalf = "½½"
)

// label names position i of a necklace with the given number of cells.
// Twelve-cell necklaces use sharp note names, others plain numbers.
func label(i, octave int) string {
	if octave != steps.DefaultOctave {
		return strconv.Itoa(i)
	}
	return strings.Replace(pitch.Notes[i].Sharp, "#", "♯", 1)
}

// Necklace renders p as one row of p.Sum() cells starting at C (position
// 0). The scale is played from pitch class root beginning at step
// rootStep of p. An empty pattern renders as the empty string.
func Necklace(p steps.Pattern, root, rootStep int, t Theme) string {
	octave := p.Sum()
	if octave <= 0 {
		return ""
	}
	member := make([]bool, octave)
	for _, c := range pitch.Classes(p, root, rootStep, octave) {
		member[c] = true
	}
	r := pitch.Mod(root, octave)

	cells := make([]string, octave)
	for i := range cells {
		switch {
		case i == r:
			cells[i] = t.Root.Render(label(i, octave))
		case member[i]:
			cells[i] = t.Member.Render(label(i, octave))
		default:
			cells[i] = t.Rest.Render(Dot)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Table renders one line per pattern: its position, its step string and
// the class badges that apply.
func Table(patterns []steps.Pattern, t Theme) string {
	width := 0
	for _, p := range patterns {
		if w := len(p.String()); w > width {
			width = w
		}
	}
	idx := len(strconv.Itoa(len(patterns) - 1))

	var b strings.Builder
	for i, p := range patterns {
		b.WriteString(t.Dim.Render(fmt.Sprintf("%*d", idx, i)))
		b.WriteString("  ")
		fmt.Fprintf(&b, "%-*s", width, p.String())
		if classify.HasAugmentedStep(p) {
			b.WriteString("  " + t.Badge.Render(BadgeAugmented))
		}
		if classify.HasAdjacentHalfSteps(p) {
			b.WriteString("  " + t.Badge.Render(BadgeDoubleHalf))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Partition renders the four-class table of tab in a bordered grid, each
// cell showing its count and share of the total.
func Partition(tab *classify.Table, t Theme) string {
	counts := tab.Counts()
	total := tab.Total()
	share := func(n int) string {
		if total == 0 {
			return fmt.Sprintf("%d", n)
		}
		return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))
	}

	rows := []string{
		fmt.Sprintf("%-12s %-16s %-16s", "", "no ½½", BadgeDoubleHalf),
		fmt.Sprintf("%-12s %-16s %-16s", "no aug", share(counts[0][0]), share(counts[0][1])),
		fmt.Sprintf("%-12s %-16s %-16s", BadgeAugmented, share(counts[1][0]), share(counts[1][1])),
		fmt.Sprintf("%-12s %d", "total", total),
	}
	return t.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
