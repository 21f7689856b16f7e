package genetic

import (
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ErrInvalidConfiguration is returned by New when an Options field is
// outside its documented domain.
var ErrInvalidConfiguration = errors.New("genetic: invalid configuration")

// SelectionMethod enumerates the parent-selection strategies a Driver can
// use to pick breeding pairs from a generation.
type SelectionMethod int

const (
	// Tournament draws SelectionSize individuals uniformly with
	// replacement and picks the two with the lowest makespan.
	Tournament SelectionMethod = iota

	// FitnessProportionate samples two distinct parents by roulette,
	// weighted by 1/makespan.
	FitnessProportionate

	// Random draws two parents by uniform independent selection.
	Random
)

// Options configures a Driver. Build one with NewOptions and override
// fields with With* functional options.
type Options struct {
	// PopulationSize is P, the fixed population cardinality.
	PopulationSize int

	// MutationProbability is mₚ.
	MutationProbability float64

	// SelectionSize is s, used only by Tournament selection.
	SelectionSize int

	// SelectionMethod chooses the parent-selection strategy.
	SelectionMethod SelectionMethod

	// Iterations, if > 0 and Runtime == 0, bounds the generation count.
	Iterations int

	// Runtime, if > 0, bounds wall-clock execution instead of Iterations.
	Runtime time.Duration

	// Benchmark, if true, causes Run to accumulate per-generation trace
	// fields.
	Benchmark bool

	// Logger receives structured Debug-level tracing of each generation.
	// A nil Logger (the default) is a no-op.
	Logger hclog.Logger

	// Seed controls the deterministic RNG stream driving selection,
	// crossover, and mutation. Zero is an ordinary seed like any other.
	Seed int64

	// MaxSynthesisAttempts bounds retries when an offspring's crossover
	// result is infeasible: the whole offspring synthesis (selection,
	// crossover, mutation) is discarded and retried.
	MaxSynthesisAttempts int
}

// NewOptions returns an Options populated with typical defaults (population
// 100, mutation probability 0.8, tournament selection of size 5, iteration
// termination at 50 generations), before any With* functional option is
// applied.
func NewOptions() Options {
	return Options{
		PopulationSize:       100,
		MutationProbability:  0.8,
		SelectionSize:        5,
		SelectionMethod:      Tournament,
		Iterations:           50,
		MaxSynthesisAttempts: 50,
	}
}

// Option is a functional option mutating Options in place.
type Option func(*Options)

// WithPopulationSize overrides P.
func WithPopulationSize(p int) Option {
	return func(o *Options) { o.PopulationSize = p }
}

// WithMutationProbability overrides mₚ.
func WithMutationProbability(mp float64) Option {
	return func(o *Options) { o.MutationProbability = mp }
}

// WithSelectionSize overrides s (Tournament only).
func WithSelectionSize(s int) Option {
	return func(o *Options) { o.SelectionSize = s }
}

// WithSelectionMethod overrides the parent-selection strategy.
func WithSelectionMethod(m SelectionMethod) Option {
	return func(o *Options) { o.SelectionMethod = m }
}

// WithIterations sets generation-count termination, clearing Runtime.
func WithIterations(n int) Option {
	return func(o *Options) {
		o.Iterations = n
		o.Runtime = 0
	}
}

// WithRuntime sets wall-clock termination, clearing Iterations.
func WithRuntime(d time.Duration) Option {
	return func(o *Options) {
		o.Runtime = d
		o.Iterations = 0
	}
}

// WithBenchmark enables trace accumulation.
func WithBenchmark(enabled bool) Option {
	return func(o *Options) { o.Benchmark = enabled }
}

// WithLogger installs a structured logger for Debug-level generation
// tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithSeed overrides the deterministic RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// validate reports ErrInvalidConfiguration if any field is out of domain.
func (o Options) validate() error {
	switch {
	case o.PopulationSize <= 1:
		return errors.Join(ErrInvalidConfiguration, errors.New("PopulationSize must be at least 2"))
	case o.MutationProbability < 0 || o.MutationProbability > 1:
		return errors.Join(ErrInvalidConfiguration, errors.New("MutationProbability must be in [0,1]"))
	case o.SelectionMethod == Tournament && o.SelectionSize <= 1:
		return errors.Join(ErrInvalidConfiguration, errors.New("SelectionSize must be at least 2 for Tournament selection"))
	case o.Iterations <= 0 && o.Runtime <= 0:
		return errors.Join(ErrInvalidConfiguration, errors.New("one of Iterations or Runtime must be positive"))
	case o.MaxSynthesisAttempts <= 0:
		return errors.Join(ErrInvalidConfiguration, errors.New("MaxSynthesisAttempts must be positive"))
	default:
		return nil
	}
}
