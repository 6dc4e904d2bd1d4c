package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/necklace/classify"
	"github.com/katalvlaran/necklace/config"
	"github.com/katalvlaran/necklace/grammar"
	"github.com/katalvlaran/necklace/render"
	"github.com/katalvlaran/necklace/sample"
	"github.com/katalvlaran/necklace/steps"
)

var errNoValidScale = errors.New("no valid scale")

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	octave     int
	root       int
	seed       int64
	augProb    float64
	dhProb     float64
	logLevel   string
	logFormat  string

	cfg   *config.Config
	log   *slog.Logger
	theme render.Theme
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "necklace",
		Short: "Necklace - scales as step patterns round the octave",
		Long: `Necklace generates every scale pattern of half, whole and augmented steps
that fills an octave, classifies them, samples them with a bias, and finds the
scales one note-move away from a given one.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.IntVar(&a.octave, "octave", steps.DefaultOctave, "Semitones in the octave")
	pf.IntVar(&a.root, "root", 0, "Root pitch class (0 = C)")
	pf.Int64Var(&a.seed, "seed", 0, "Sampler seed, 0 for the default")
	pf.Float64Var(&a.augProb, "aug-prob", 0, "Percent chance of an augmented second (default: share in the set)")
	pf.Float64Var(&a.dhProb, "dh-prob", 0, "Percent chance of consecutive half steps (default: share in the set)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newStatsCmd(a),
		newSampleCmd(a),
		newAdjacentCmd(a),
		newPathCmd(a),
		newWalkCmd(a),
		newShowCmd(a),
		newMidiCmd(a),
	)
	return rootCmd
}

// setup loads the configuration, lets explicitly set flags override it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("octave") {
		cfg.Octave = a.octave
	}
	if flags.Changed("root") {
		cfg.Root = a.root
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("aug-prob") {
		cfg.AugmentedProbability = config.Probability(a.augProb)
	}
	if flags.Changed("dh-prob") {
		cfg.DoubleHalfProbability = config.Probability(a.dhProb)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = setupLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.theme = render.DefaultTheme()
	a.log.Debug("configuration loaded",
		"octave", cfg.Octave,
		"root", cfg.Root,
		"seed", cfg.Seed,
		"config", a.configPath)
	return nil
}

// patterns returns the generated set for the configured octave.
func (a *app) patterns() (*grammar.Set, error) {
	set, err := grammar.Shared(a.cfg.Octave)
	if err != nil {
		return nil, err
	}
	a.log.Debug("patterns ready", "octave", set.Octave(), "count", set.Len(), "distinct", set.Distinct().Len())
	return set, nil
}

// probabilities returns the sampling bias: configured values where set,
// otherwise the natural share of each property in set.
func (a *app) probabilities(set *grammar.Set) (float64, float64, error) {
	aug, err := a.probability(a.cfg.AugmentedProbability, classify.HasAugmentedStep, set)
	if err != nil {
		return 0, 0, err
	}
	dh, err := a.probability(a.cfg.DoubleHalfProbability, classify.HasAdjacentHalfSteps, set)
	if err != nil {
		return 0, 0, err
	}
	return aug, dh, nil
}

func (a *app) probability(fixed *float64, pred classify.Predicate, set *grammar.Set) (float64, error) {
	if fixed != nil {
		return *fixed, nil
	}
	p, err := classify.ProbabilityOf(pred, set)
	if errors.Is(err, classify.ErrEmptySet) {
		return 0, errNoValidScale
	}
	return p, err
}

func (a *app) sampler() *sample.Sampler {
	return sample.New(sample.WithSeed(a.cfg.Seed), sample.WithLogger(a.log))
}

// parsePattern reads a pattern argument and checks it fills the octave.
func (a *app) parsePattern(arg string) (steps.Pattern, error) {
	p, err := steps.Parse(arg)
	if err != nil {
		return nil, err
	}
	if err := steps.Validate(p, a.cfg.Octave); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", arg, err)
	}
	return p, nil
}

// warn reports constraints the sampler could not honour.
func (a *app) warn(cmd *cobra.Command, infeasible []sample.Constraint) {
	for _, c := range infeasible {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", c)
	}
}
