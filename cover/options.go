package cover

import (
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"
)

const (
	// DefaultMaxExactVertices bounds the exact search by default (2^24 subsets).
	DefaultMaxExactVertices = 24

	// MaxSubsetVertices is the widest index set Subsets can enumerate; subsets
	// are addressed by a uint64 mask.
	MaxSubsetVertices = 63
)

// Option configures a solver call via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// solver runs.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	// Algorithm is consulted by Solve only; MinimumCover and ApproximateCover
	// ignore it.
	Algorithm Algorithm

	// Seed drives the heuristic's RNG. Seed==0 maps to a fixed default seed,
	// so equal options always produce equal covers.
	Seed int64

	// Rand, when non-nil, is used instead of a seed-derived RNG.
	// *rand.Rand is not goroutine-safe; do not share it across concurrent calls.
	Rand *rand.Rand

	// MaxExactVertices rejects exact searches on larger graphs with
	// ErrTooManyVertices. Valid range: 1..MaxSubsetVertices.
	MaxExactVertices int

	// Logger receives V(1) progress and V(2) per-step traces.
	Logger logr.Logger

	err error
}

// DefaultOptions returns Options with:
//   - Algorithm Auto
//   - Seed 0 (deterministic default stream)
//   - MaxExactVertices DefaultMaxExactVertices
//   - a discarding logger
func DefaultOptions() Options {
	return Options{
		Algorithm:        Auto,
		MaxExactVertices: DefaultMaxExactVertices,
		Logger:           logr.Discard(),
	}
}

// WithAlgorithm selects the solver used by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < Auto || a > Heuristic {
			o.err = fmt.Errorf("WithAlgorithm(%d): %w", int(a), ErrUnsupportedAlgorithm)
			return
		}
		o.Algorithm = a
	}
}

// WithSeed sets the heuristic seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an explicit RNG; it takes precedence over Seed.
// A nil RNG is recorded as ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithMaxExactVertices bounds the exact search. n must lie in
// 1..MaxSubsetVertices.
func WithMaxExactVertices(n int) Option {
	return func(o *Options) {
		if n < 1 || n > MaxSubsetVertices {
			o.err = fmt.Errorf("WithMaxExactVertices(%d): must be in [1,%d]: %w",
				n, MaxSubsetVertices, ErrOptionViolation)
			return
		}
		o.MaxExactVertices = n
	}
}

// WithLogger routes solver traces to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		if l.GetSink() != nil {
			o.Logger = l
		}
	}
}

// resolveOptions applies opts over DefaultOptions and returns the first
// recorded violation.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return Options{}, o.err
		}
	}

	return o, nil
}

// source returns the RNG a heuristic run draws from.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}
