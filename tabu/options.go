package tabu

import (
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ErrInvalidConfiguration is returned by New when an Options field is
// outside its documented domain.
var ErrInvalidConfiguration = errors.New("tabu: invalid configuration")

// Options configures a Driver. Zero value is not meaningful; build one with
// NewOptions and override fields with With* functional options.
type Options struct {
	// SearchTime bounds the total wall-clock duration of Run.
	SearchTime time.Duration

	// TabuSize is the bounded FIFO capacity K.
	TabuSize int

	// NeighborhoodSize is the target neighborhood cardinality N per
	// iteration.
	NeighborhoodSize int

	// NeighborhoodWait is the per-neighbor retry budget W.
	NeighborhoodWait time.Duration

	// ProbabilityChangeMachine is p, the machine-reassignment draw
	// probability used by the neighbor generator.
	ProbabilityChangeMachine float64

	// Benchmark, if true, causes Run to accumulate a Trace.
	Benchmark bool

	// Logger receives structured Debug-level tracing of each iteration.
	// A nil Logger (the default) is a no-op.
	Logger hclog.Logger

	// Seed controls the deterministic RNG stream driving neighbor
	// generation and the diversification jump.
	Seed int64
}

// NewOptions returns an Options populated with typical defaults, before any
// With* functional option is applied.
func NewOptions() Options {
	return Options{
		SearchTime:               30 * time.Second,
		TabuSize:                 20,
		NeighborhoodSize:         30,
		NeighborhoodWait:         50 * time.Millisecond,
		ProbabilityChangeMachine: 0.5,
	}
}

// Option is a functional option mutating Options in place.
type Option func(*Options)

// WithSearchTime overrides the total wall-clock search budget.
func WithSearchTime(d time.Duration) Option {
	return func(o *Options) { o.SearchTime = d }
}

// WithTabuSize overrides the tabu list capacity K.
func WithTabuSize(k int) Option {
	return func(o *Options) { o.TabuSize = k }
}

// WithNeighborhoodSize overrides the target neighborhood size N.
func WithNeighborhoodSize(n int) Option {
	return func(o *Options) { o.NeighborhoodSize = n }
}

// WithNeighborhoodWait overrides the per-neighbor retry budget W.
func WithNeighborhoodWait(d time.Duration) Option {
	return func(o *Options) { o.NeighborhoodWait = d }
}

// WithProbabilityChangeMachine overrides p.
func WithProbabilityChangeMachine(p float64) Option {
	return func(o *Options) { o.ProbabilityChangeMachine = p }
}

// WithBenchmark enables trace accumulation.
func WithBenchmark(enabled bool) Option {
	return func(o *Options) { o.Benchmark = enabled }
}

// WithLogger installs a structured logger for Debug-level iteration
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
	case o.SearchTime <= 0:
		return errors.Join(ErrInvalidConfiguration, errors.New("SearchTime must be positive"))
	case o.TabuSize <= 0:
		return errors.Join(ErrInvalidConfiguration, errors.New("TabuSize must be positive"))
	case o.NeighborhoodSize <= 0:
		return errors.Join(ErrInvalidConfiguration, errors.New("NeighborhoodSize must be positive"))
	case o.NeighborhoodWait <= 0:
		return errors.Join(ErrInvalidConfiguration, errors.New("NeighborhoodWait must be positive"))
	case o.ProbabilityChangeMachine < 0 || o.ProbabilityChangeMachine > 1:
		return errors.Join(ErrInvalidConfiguration, errors.New("ProbabilityChangeMachine must be in [0,1]"))
	default:
		return nil
	}
}
