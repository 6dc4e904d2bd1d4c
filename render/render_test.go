package render_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/render"
	"github.com/katalvlaran/necklace/steps"
)

var minor = steps.Of(2, 1, 2, 2, 1, 2, 2)

func fields(s string) []string {
	return strings.Fields(ansi.Strip(s))
}

func TestNecklace_AMinor(t *testing.T) {
	got := fields(render.Necklace(minor, 9, 0, render.DefaultTheme()))
	want := []string{"C", "·", "D", "·", "E", "F", "·", "G", "·", "A", "·", "B"}
	assert.Equal(t, want, got)
}

func TestNecklace_RelativeMajorSharesCells(t *testing.T) {
	th := render.PlainTheme()
	aMinor := ansi.Strip(render.Necklace(minor, 9, 0, th))
	cMajor := ansi.Strip(render.Necklace(minor, 0, 2, th))
	assert.Equal(t, aMinor, cMajor)
}

func TestNecklace_SharpNames(t *testing.T) {
	// E major: E F♯ G♯ A B C♯ D♯
	major := steps.Of(2, 2, 1, 2, 2, 2, 1)
	got := fields(render.Necklace(major, 4, 0, render.PlainTheme()))
	want := []string{"·", "C♯", "·", "D♯", "E", "·", "F♯", "·", "G♯", "A", "·", "B"}
	assert.Equal(t, want, got)
}

func TestNecklace_OtherOctave(t *testing.T) {
	got := fields(render.Necklace(steps.Of(2, 3), 0, 0, render.PlainTheme()))
	assert.Equal(t, []string{"0", "·", "2", "·", "·"}, got)
}

func TestNecklace_Empty(t *testing.T) {
	assert.Equal(t, "", render.Necklace(nil, 0, 0, render.DefaultTheme()))
}

func TestTable(t *testing.T) {
	patterns := []steps.Pattern{
		minor,
		steps.Of(2, 1, 2, 2, 1, 3, 1),
		steps.Of(1, 1, 2, 2),
	}
	out := ansi.Strip(render.Table(patterns, render.DefaultTheme()))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, []string{"0", "2-1-2-2-1-2-2"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "2-1-2-2-1-3-1", render.BadgeAugmented}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "1-1-2-2", render.BadgeDoubleHalf}, strings.Fields(lines[2]))
}

func TestTable_Empty(t *testing.T) {
	assert.Equal(t, "", render.Table(nil, render.PlainTheme()))
}

func TestPartition(t *testing.T) {
	set, err := grammar.Generate(12)
	require.NoError(t, err)
	tab := classify.Partition(set)

	out := strings.Join(fields(render.Partition(&tab, render.DefaultTheme())), " ")
	for _, want := range []string{
		"12 (8.8%)",
		"24 (17.6%)",
		"47 (34.6%)",
		"53 (39.0%)",
		"total 136",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPartition_Empty(t *testing.T) {
	var tab classify.Table
	out := strings.Join(fields(render.Partition(&tab, render.PlainTheme())), " ")
	assert.Contains(t, out, "total 0")
}
