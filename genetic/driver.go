package genetic

import (
	"errors"
	"math/rand"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/internal/obslog"
	"github.com/go-jssp/sdst-solver/makespan"
	"github.com/go-jssp/sdst-solver/schedule"
)

// ErrInstanceTooSmall is returned by New when the Problem Instance has
// fewer than two jobs: job-aligned crossover requires choosing two
// distinct job ids.
var ErrInstanceTooSmall = errors.New("genetic: instance must have at least two jobs")

// ErrPopulationSizeMismatch is returned by Run when the supplied initial
// population does not have exactly Options.PopulationSize members.
var ErrPopulationSizeMismatch = errors.New("genetic: initial population size does not match PopulationSize")

// MinMakespanCoordinate records the (iteration, makespan) point of the best
// value observed during a benchmarked Run. Iteration 0 stands for the
// initial population.
type MinMakespanCoordinate struct {
	Iteration int
	Makespan  float64
}

// BenchmarkTrace holds the per-generation series accumulated when
// Options.Benchmark is set.
type BenchmarkTrace struct {
	BestMakespanByIteration          []float64
	AvgPopulationMakespanByIteration []float64
	MinMakespanCoordinate            MinMakespanCoordinate
}

// Result is the output of Run.
type Result struct {
	Best             *schedule.Solution
	ResultPopulation []*schedule.Solution
	Trace            *BenchmarkTrace
}

// Driver runs the Genetic Algorithm loop against one Problem Instance.
type Driver struct {
	inst   *instance.Instance
	opts   Options
	rng    *rand.Rand
	logger hclog.Logger
}

// New constructs a Driver for inst, applying opts in order over
// NewOptions()'s defaults.
func New(inst *instance.Instance, opts ...Option) (*Driver, error) {
	o := NewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if inst.J() < 2 {
		return nil, ErrInstanceTooSmall
	}

	return &Driver{
		inst:   inst,
		opts:   o,
		rng:    rand.New(rand.NewSource(o.Seed)),
		logger: obslog.Or(o.Logger),
	}, nil
}

// Run executes the generation loop starting from initialPopulation, which
// must contain exactly Options.PopulationSize Solutions.
func (d *Driver) Run(initialPopulation []*schedule.Solution) (Result, error) {
	if len(initialPopulation) != d.opts.PopulationSize {
		return Result{}, ErrPopulationSizeMismatch
	}

	population := append([]*schedule.Solution(nil), initialPopulation...)
	best := populationBest(population)

	var trace *BenchmarkTrace
	if d.opts.Benchmark {
		trace = &BenchmarkTrace{MinMakespanCoordinate: MinMakespanCoordinate{Iteration: 0, Makespan: best.Makespan()}}
	}

	iteration := 0
	deadline := time.Time{}
	if d.opts.Runtime > 0 {
		deadline = time.Now().Add(d.opts.Runtime)
	}

	for d.shouldContinue(iteration, deadline) {
		population = d.generationStep(population)

		genBest := populationBest(population)
		if schedule.Less(genBest, best) {
			best = genBest
		}

		iteration++

		d.logger.Debug("genetic generation", "iteration", iteration, "best_makespan", best.Makespan())
		if trace != nil {
			avg := averageMakespan(population)
			trace.BestMakespanByIteration = append(trace.BestMakespanByIteration, best.Makespan())
			trace.AvgPopulationMakespanByIteration = append(trace.AvgPopulationMakespanByIteration, avg)
			if genBest.Makespan() == best.Makespan() {
				trace.MinMakespanCoordinate = MinMakespanCoordinate{Iteration: iteration, Makespan: best.Makespan()}
			}
		}
	}

	return Result{Best: best, ResultPopulation: population, Trace: trace}, nil
}

// shouldContinue reports whether another generation should run, per
// Options' iteration- or runtime-bounded termination.
func (d *Driver) shouldContinue(iteration int, deadline time.Time) bool {
	if d.opts.Runtime > 0 {
		return time.Now().Before(deadline)
	}

	return iteration < d.opts.Iterations
}

// generationStep produces the next population of equal size: one offspring
// per slot, each synthesized by selection, crossover, and mutation, retried
// on infeasibility.
func (d *Driver) generationStep(population []*schedule.Solution) []*schedule.Solution {
	next := make([]*schedule.Solution, len(population))
	for slot := range population {
		next[slot] = d.synthesizeOffspring(population)
	}

	return next
}

// synthesizeOffspring runs selection/crossover/mutation/evaluation,
// retrying the whole synthesis up to MaxSynthesisAttempts times if
// crossover or evaluation ever yields an infeasible result. Falls back to
// a uniformly random population member if the budget is exhausted, so a
// generation never shrinks.
func (d *Driver) synthesizeOffspring(population []*schedule.Solution) *schedule.Solution {
	for attempt := 0; attempt < d.opts.MaxSynthesisAttempts; attempt++ {
		aIdx, bIdx := selectParents(population, d.opts, d.rng)

		child := crossover(d.inst, population[aIdx].Matrix(), population[bIdx].Matrix(), d.rng)
		if child == nil {
			continue
		}

		mutated := mutate(d.inst, child, d.opts.MutationProbability, d.rng)

		solution, err := makespan.Evaluate(d.inst, mutated)
		if err != nil {
			continue
		}

		return solution
	}

	return population[d.rng.Intn(len(population))]
}

// populationBest returns the minimum-makespan Solution in population.
func populationBest(population []*schedule.Solution) *schedule.Solution {
	best := population[0]
	for _, s := range population[1:] {
		if schedule.Less(s, best) {
			best = s
		}
	}

	return best
}

// averageMakespan returns the arithmetic mean makespan across population.
func averageMakespan(population []*schedule.Solution) float64 {
	sum := 0.0
	for _, s := range population {
		sum += s.Makespan()
	}

	return sum / float64(len(population))
}
