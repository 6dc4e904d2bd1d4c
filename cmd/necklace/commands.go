package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/necklace/adjacency"
	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/midifile"
	"github.com/katalvlaran/necklace/network"
	"github.com/katalvlaran/necklace/pitch"
	"github.com/katalvlaran/necklace/render"
	"github.com/katalvlaran/necklace/steps"
)

func newGenerateCmd(a *app) *cobra.Command {
	var distinct bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "List every pattern of the octave",
		Long: `List every pattern of the octave in derivation order, followed by the
pattern count and a digest of the list. Some sequences have two derivations
and appear twice; --distinct keeps the first of each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			full, err := a.patterns()
			if err != nil {
				return err
			}
			set := full
			if distinct {
				set = full.Distinct()
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Table(set.Patterns(), a.theme))
			fmt.Fprintf(out, "count: %d (%d distinct)\n", full.Len(), full.Distinct().Len())
			fmt.Fprintf(out, "digest: %s\n", set.Digest())
			return nil
		},
	}
	cmd.Flags().BoolVar(&distinct, "distinct", false, "List each sequence once")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how the patterns split by augmented seconds and consecutive half steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.patterns()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "octave: %d\n", set.Octave())
			fmt.Fprintf(out, "patterns: %d (%d distinct)\n", set.Len(), set.Distinct().Len())
			if set.Len() == 0 {
				return nil
			}

			aug, err := classify.ProbabilityOf(classify.HasAugmentedStep, set)
			if err != nil {
				return err
			}
			dh, err := classify.ProbabilityOf(classify.HasAdjacentHalfSteps, set)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "augmented seconds: %.1f%%\n", aug)
			fmt.Fprintf(out, "consecutive half steps: %.1f%%\n", dh)

			tab := classify.Partition(set)
			fmt.Fprintln(out, render.Partition(&tab, a.theme))
			return nil
		},
	}
}

func newSampleCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random scales",
		Long: `Draw random scales from the whole set. --aug-prob and --dh-prob bias the
draw towards or away from augmented seconds and consecutive half steps; left
unset, each defaults to the share of such scales in the set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.patterns()
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				return errNoValidScale
			}
			aug, dh, err := a.probabilities(set)
			if err != nil {
				return err
			}

			s := a.sampler()
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				res, err := s.DrawSet(set, aug, dh)
				if err != nil {
					return fmt.Errorf("%w: %w", errNoValidScale, err)
				}
				a.warn(cmd, res.Infeasible)
				fmt.Fprintln(out, res.Pattern)
				fmt.Fprintln(out, render.Necklace(res.Pattern, a.cfg.Root, 0, a.theme))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of scales to draw")
	return cmd
}

func newAdjacentCmd(a *app) *cobra.Command {
	var random bool
	cmd := &cobra.Command{
		Use:   "adjacent <pattern>",
		Short: "List the scales one note-move away",
		Long: `List the scales reachable from <pattern> by moving one note: swapping two
neighbouring steps (swap), splitting a step in two (split) or merging two
steps into one (merge), under any rotation. With --random, draw one of them
instead, biased like the sample command.

Examples:
  necklace adjacent 2-1-2-2-1-2-2
  necklace adjacent 2122122 --random --aug-prob 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}
			set, err := a.patterns()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if random {
				candidates := adjacency.To(p, set)
				if len(candidates) == 0 {
					return fmt.Errorf("no adjacent scale possible for %s", p)
				}
				aug, dh, err := a.probabilities(set)
				if err != nil {
					return err
				}
				res, err := a.sampler().Draw(candidates, aug, dh)
				if err != nil {
					return err
				}
				a.warn(cmd, res.Infeasible)
				fmt.Fprintln(out, res.Pattern)
				fmt.Fprintln(out, render.Necklace(res.Pattern, a.cfg.Root, 0, a.theme))
				return nil
			}

			for _, q := range adjacency.To(p, set.Distinct()) {
				m, _ := adjacency.Explain(q, p)
				fmt.Fprintf(out, "%-15s %s\n", q, m.Edit)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&random, "random", false, "Draw one adjacent scale")
	return cmd
}

// buildGraph builds the adjacency graph of the configured octave.
func (a *app) buildGraph(cmd *cobra.Command) (*network.Graph, error) {
	set, err := a.patterns()
	if err != nil {
		return nil, err
	}
	g, err := network.Build(cmd.Context(), set)
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph built", "vertices", g.Len(), "edges", g.EdgeCount())
	return g, nil
}

// printHop writes one line of a route: position, pattern and the edit that
// led to it from prev.
func printHop(w io.Writer, i int, prev, p steps.Pattern) {
	if prev == nil {
		fmt.Fprintf(w, "%2d  %s\n", i, p)
		return
	}
	m, _ := adjacency.Explain(p, prev)
	fmt.Fprintf(w, "%2d  %-15s %s\n", i, p, m.Edit)
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the fewest note-moves between two scales",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}
			to, err := a.parsePattern(args[1])
			if err != nil {
				return err
			}
			g, err := a.buildGraph(cmd)
			if err != nil {
				return err
			}
			u, err := g.Vertex(from)
			if err != nil {
				return fmt.Errorf("%s: %w", from, err)
			}
			v, err := g.Vertex(to)
			if err != nil {
				return fmt.Errorf("%s: %w", to, err)
			}

			route, err := g.Path(u, v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var prev steps.Pattern
			for i, w := range route {
				p := g.Set().At(w)
				printHop(out, i, prev, p)
				prev = p
			}
			return nil
		},
	}
}

func newWalkCmd(a *app) *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "walk <pattern>",
		Short: "Take a random walk through adjacent scales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 0 {
				return fmt.Errorf("%w: steps %d", network.ErrOptionViolation, length)
			}
			p, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}
			g, err := a.buildGraph(cmd)
			if err != nil {
				return err
			}
			start, err := g.Vertex(p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			aug, dh, err := a.probabilities(g.Set())
			if err != nil {
				return err
			}

			moves, err := g.Walk(start, length, a.sampler(), aug, dh)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printHop(out, 0, nil, p)
			prev := p
			for i, m := range moves {
				a.warn(cmd, m.Infeasible)
				printHop(out, i+1, prev, m.Pattern)
				prev = m.Pattern
			}
			if len(moves) < length {
				a.log.Info("walk ended early", "moves", len(moves), "requested", length)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "steps", "n", 8, "Number of moves")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var rootStep int
	cmd := &cobra.Command{
		Use:   "show <pattern>",
		Short: "Draw a scale on the necklace and name its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Necklace(p, a.cfg.Root, rootStep, a.theme))

			classes := pitch.Classes(p, a.cfg.Root, rootStep, a.cfg.Octave)
			names := make([]string, 0, len(classes)-1)
			for _, c := range classes[:len(classes)-1] {
				if a.cfg.Octave == steps.DefaultOctave {
					names = append(names, pitch.Name(c))
				} else {
					names = append(names, fmt.Sprint(c))
				}
			}
			fmt.Fprintf(out, "steps: %s\n", p.Rotate(rootStep))
			fmt.Fprintf(out, "notes: %s\n", strings.Join(names, ", "))

			var tags []string
			if classify.HasAugmentedStep(p) {
				tags = append(tags, "augmented second")
			}
			if classify.HasAdjacentHalfSteps(p) {
				tags = append(tags, "consecutive half steps")
			}
			if len(tags) > 0 {
				fmt.Fprintf(out, "has: %s\n", strings.Join(tags, ", "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rootStep, "root-step", 0, "Step of the pattern the scale starts on")
	return cmd
}

// writeFile creates path and writes data to it, reporting the close error.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func newMidiCmd(a *app) *cobra.Command {
	var (
		rootStep int
		output   string
		base     int
		bpm      float64
		channel  int
	)
	cmd := &cobra.Command{
		Use:   "midi <pattern>",
		Short: "Write the ascending scale as a Standard MIDI File",
		Long: `Write the ascending scale, root to octave, as a single-track Standard MIDI
File. --base is the MIDI key of pitch class 0 (60 = middle C).

Examples:
  necklace midi 2-1-2-2-1-2-2 --root 9 -o a-minor.mid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}

			// Encode first so a rejected export leaves no file behind.
			var buf bytes.Buffer
			err = midifile.Write(&buf, pitch.Offsets(p, a.cfg.Root, rootStep),
				midifile.WithBase(base),
				midifile.WithBPM(bpm),
				midifile.WithChannel(channel),
				midifile.WithName(p.String()),
			)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := writeFile(output, buf.Bytes()); err != nil {
				return err
			}
			a.log.Info("midi written", "pattern", p.String(), "output", output)
			return nil
		},
	}
	cmd.Flags().IntVar(&rootStep, "root-step", 0, "Step of the pattern the scale starts on")
	cmd.Flags().StringVarP(&output, "output", "o", "scale.mid", "Output file, - for stdout")
	cmd.Flags().IntVar(&base, "base", 60, "MIDI key of pitch class 0")
	cmd.Flags().Float64Var(&bpm, "bpm", 120, "Tempo")
	cmd.Flags().IntVar(&channel, "channel", 0, "MIDI channel, 0-15")
	return cmd
}
