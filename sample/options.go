package sample

import (
	"io"
	"log/slog"
	"math/rand"
)

// defaultSeed is used when no seed or a zero seed is supplied, so that an
// unconfigured Sampler is still reproducible.
const defaultSeed int64 = 1

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed seeds the Sampler's generator. Seed 0 selects defaultSeed.
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(s *Sampler) {
		s.rng = r
	}
}

// WithLogger sets the logger used to report infeasible draws at debug level.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sampler) {
		if l != nil {
			s.log = l
		}
	}
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
