package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/katalvlaran/necklace/adjacency"
	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/config"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/midifile"
	"github.com/katalvlaran/necklace/network"
	"github.com/katalvlaran/necklace/steps"
)

const (
	minorArg     = "2-1-2-2-1-2-2"
	majorArg     = "2-2-1-2-2-2-1"
	wholeToneArg = "2-2-2-2-2-2"
)

// run executes the CLI with args and returns stripped stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ansi.Strip(out.String()), errOut.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func mustParse(t *testing.T, s string) steps.Pattern {
	t.Helper()
	p, err := steps.Parse(s)
	require.NoError(t, err)
	return p
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate")
	require.NoError(t, err)

	set, err := grammar.Generate(12)
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 136+2)
	assert.Equal(t, []string{"0", "1-3-1-3-1-1-2"}, strings.Fields(ls[0])[:2])
	assert.Equal(t, "count: 136 (119 distinct)", ls[136])
	assert.Equal(t, "digest: "+set.Digest(), ls[137])
}

func TestGenerate_DistinctSmallOctave(t *testing.T) {
	out, _, err := run(t, "generate", "--distinct", "--octave", "6")
	require.NoError(t, err)
	ls := lines(out)
	require.Len(t, ls, 6+2)
	assert.Equal(t, "count: 6 (6 distinct)", ls[6])
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns: 136 (119 distinct)")
	assert.Contains(t, out, "augmented seconds: 73.5%")
	assert.Contains(t, out, "consecutive half steps: 56.6%")
	assert.Contains(t, strings.Join(strings.Fields(out), " "), "total 136")
}

func TestSample_Constrained(t *testing.T) {
	args := []string{"sample", "-n", "5", "--seed", "3", "--aug-prob", "0", "--dh-prob", "0"}
	out, errOut, err := run(t, args...)
	require.NoError(t, err)
	assert.Empty(t, errOut)

	ls := lines(out)
	require.Len(t, ls, 10)
	set, err := grammar.Shared(12)
	require.NoError(t, err)
	for i := 0; i < len(ls); i += 2 {
		p := mustParse(t, ls[i])
		assert.True(t, set.Contains(p), "%s", p)
		assert.False(t, classify.HasAugmentedStep(p), "%s", p)
		assert.False(t, classify.HasAdjacentHalfSteps(p), "%s", p)
	}

	again, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSample_NoValidScale(t *testing.T) {
	_, _, err := run(t, "sample", "--octave", "1")
	assert.ErrorIs(t, err, errNoValidScale)
}

func TestAdjacent_List(t *testing.T) {
	out, _, err := run(t, "adjacent", minorArg)
	require.NoError(t, err)

	ls := lines(out)
	assert.Len(t, ls, 26)
	assert.Contains(t, ls, fmt.Sprintf("%-15s %s", "2-2-1-2-2-1-2", "swap"))
	assert.Contains(t, ls, fmt.Sprintf("%-15s %s", "2-1-2-2-2-3", "merge"))
	assert.NotContains(t, out, wholeToneArg)
	for _, l := range ls {
		f := strings.Fields(l)
		require.Len(t, f, 2, l)
		assert.Contains(t, []string{"swap", "split", "merge"}, f[1], l)
	}
}

func TestAdjacent_MajorIsOneSwapFromMinor(t *testing.T) {
	out, _, err := run(t, "adjacent", majorArg)
	require.NoError(t, err)
	assert.Contains(t, lines(out), fmt.Sprintf("%-15s %s", minorArg, "swap"))
}

func TestAdjacent_Random(t *testing.T) {
	out, _, err := run(t, "adjacent", minorArg, "--random", "--seed", "9")
	require.NoError(t, err)
	ls := lines(out)
	require.Len(t, ls, 2)
	assert.True(t, adjacency.IsAdjacent(mustParse(t, minorArg), mustParse(t, ls[0])), ls[0])
}

func TestAdjacent_BadPattern(t *testing.T) {
	_, _, err := run(t, "adjacent", "2-2-2")
	assert.ErrorIs(t, err, steps.ErrSumMismatch)

	_, _, err = run(t, "adjacent", "2-x-2")
	assert.ErrorIs(t, err, steps.ErrSyntax)

	_, _, err = run(t, "adjacent")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	out, _, err := run(t, "path", minorArg, wholeToneArg)
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 4)
	assert.Equal(t, []string{"0", minorArg}, strings.Fields(ls[0]))
	last := strings.Fields(ls[3])
	require.Len(t, last, 3)
	assert.Equal(t, wholeToneArg, last[1])

	prev := mustParse(t, minorArg)
	for _, l := range ls[1:] {
		p := mustParse(t, strings.Fields(l)[1])
		assert.True(t, adjacency.IsAdjacent(prev, p), l)
		prev = p
	}
}

func TestPath_NotInGraph(t *testing.T) {
	_, _, err := run(t, "path", minorArg, majorArg)
	assert.ErrorIs(t, err, network.ErrNotInGraph)
}

func TestWalk(t *testing.T) {
	out, _, err := run(t, "walk", minorArg, "-n", "5", "--seed", "2")
	require.NoError(t, err)

	ls := lines(out)
	require.Len(t, ls, 6)
	prev := mustParse(t, minorArg)
	for _, l := range ls[1:] {
		p := mustParse(t, strings.Fields(l)[1])
		assert.True(t, adjacency.IsAdjacent(prev, p), l)
		prev = p
	}
}

func TestWalk_NegativeSteps(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, _, err = run(t, "walk", minorArg, "-n", "-1")
	})
	assert.ErrorIs(t, err, network.ErrOptionViolation)
}

func TestShow(t *testing.T) {
	out, _, err := run(t, "show", minorArg, "--root", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "notes: A, B, C, D, E, F, G")
	assert.Contains(t, out, "steps: "+minorArg)
	assert.NotContains(t, out, "has:")

	out, _, err = run(t, "show", minorArg, "--root", "0", "--root-step", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "steps: "+majorArg)
	assert.Contains(t, out, "notes: C, D, E, F, G, A, B")

	out, _, err = run(t, "show", "2-1-2-2-1-3-1", "--root", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "notes: A, B, C, D, E, F, G♯ / A♭")
	assert.Contains(t, out, "has: augmented second")
}

func TestMidi(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minor.mid")
	_, _, err := run(t, "midi", minorArg, "--root", "9", "-o", path)
	require.NoError(t, err)

	s, err := smf.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	var keys []uint8
	for _, ev := range s.Tracks[0] {
		var ch, key, vel uint8
		if midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			keys = append(keys, key)
		}
	}
	assert.Equal(t, []uint8{69, 71, 72, 74, 76, 77, 79, 81}, keys)
}

func TestMidi_FailedExportLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high.mid")
	_, _, err := run(t, "midi", minorArg, "--base", "125", "-o", path)
	assert.ErrorIs(t, err, midifile.ErrNoteRange)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestMidi_Stdout(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"midi", minorArg, "--root", "9", "-o", "-"})
	require.NoError(t, cmd.Execute())

	s, err := smf.ReadFrom(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 1)
}

func TestMidi_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scale.mid")
	_, _, err := run(t, "midi", minorArg, "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "necklace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("octave: 6\nlog:\n  level: debug\n"), 0o600))

	out, errOut, err := run(t, "--config", path, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "count: 6 (6 distinct)")
	assert.Contains(t, errOut, "configuration loaded")

	// flags win over the file
	out, _, err = run(t, "--config", path, "--octave", "7", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "count: 10 (10 distinct)")
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := run(t, "generate", "--root", "12")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "sample", "--aug-prob", "101")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "generate", "--log-format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
