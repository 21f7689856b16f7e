package tabu

import (
	"math/rand"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/go-jssp/sdst-solver/container"
	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/internal/obslog"
	"github.com/go-jssp/sdst-solver/makespan"
	"github.com/go-jssp/sdst-solver/neighbor"
	"github.com/go-jssp/sdst-solver/schedule"
)

// diversificationLow and diversificationHigh bound the inclusive index
// range [10,25] the diversification jump draws its target from.
const (
	diversificationLow  = 10
	diversificationHigh = 25
	stagnationThreshold = 100
)

// TraceStep is one recorded iteration of Run's benchmark trace: neighborhood
// size, tabu-list size, and the current seed makespan.
type TraceStep struct {
	NeighborhoodSize int
	TabuSize         int
	SeedMakespan     float64
	BestMakespan     float64
}

// Result is the output of Run: the best Solution found and, if
// Options.Benchmark was set, the per-iteration trace.
type Result struct {
	Best  *schedule.Solution
	Trace []TraceStep
}

// Driver runs the Tabu Search loop against one Problem Instance. A Driver
// is single-use-per-Run but may be reused across sequential Run calls;
// concurrent Run calls on the same Driver are not supported (construct one
// Driver per worker instead; see package orchestrate).
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

	return &Driver{
		inst:   inst,
		opts:   o,
		rng:    rand.New(rand.NewSource(o.Seed)),
		logger: obslog.Or(o.Logger),
	}, nil
}

// Run executes the search loop starting from initialSolution, returning the
// best Solution found within Options.SearchTime.
func (d *Driver) Run(initialSolution *schedule.Solution) (Result, error) {
	tabuList, err := container.NewTabuList(d.opts.TabuSize, initialSolution)
	if err != nil {
		return Result{}, err
	}

	seed := initialSolution
	best := initialSolution
	stagnationCounter := 0
	stagnationReference := append([]float64(nil), seed.MachineMakespans()...)

	var trace []TraceStep
	deadline := time.Now().Add(d.opts.SearchTime)

	for time.Now().Before(deadline) {
		neighborhood := d.buildNeighborhood(seed)

		selected := d.selectNeighbor(neighborhood, tabuList, best)
		if selected != nil {
			seed = selected
			tabuList.Add(seed)
		}

		if schedule.Less(seed, best) {
			best = seed
		}

		stagnationCounter++
		if stagnationCounter >= stagnationThreshold {
			if equalMakespans(seed.MachineMakespans(), stagnationReference) {
				if jumped := d.diversificationJump(neighborhood); jumped != nil {
					seed = jumped
				}
			}
			stagnationCounter = 0
			stagnationReference = append([]float64(nil), seed.MachineMakespans()...)
		}

		d.logger.Debug("tabu iteration", "neighborhood", neighborhood.Size(), "tabu_size", tabuList.Len(), "seed_makespan", seed.Makespan(), "best_makespan", best.Makespan())
		if d.opts.Benchmark {
			trace = append(trace, TraceStep{
				NeighborhoodSize: neighborhood.Size(),
				TabuSize:         tabuList.Len(),
				SeedMakespan:     seed.Makespan(),
				BestMakespan:     best.Makespan(),
			})
		}
	}

	return Result{Best: best, Trace: trace}, nil
}

// buildNeighborhood collects up to NeighborhoodSize feasible neighbors of
// seed, each retried under its own NeighborhoodWait budget, into a
// SolutionMultiset bucketed by makespan. A slot that cannot produce a
// feasible neighbor within its budget is simply omitted, so the
// neighborhood may come back short of NeighborhoodSize.
func (d *Driver) buildNeighborhood(seed *schedule.Solution) *container.SolutionMultiset {
	neighbors := container.NewSolutionMultiset()

	for i := 0; i < d.opts.NeighborhoodSize; i++ {
		slotDeadline := time.Now().Add(d.opts.NeighborhoodWait)
		for time.Now().Before(slotDeadline) {
			candidateMatrix, err := neighbor.Generate(d.inst, seed.Matrix(), d.opts.ProbabilityChangeMachine, d.rng, 1)
			if err != nil {
				continue
			}
			candidate, err := makespan.Evaluate(d.inst, candidateMatrix)
			if err != nil {
				continue
			}
			neighbors.Add(candidate)

			break
		}
	}

	return neighbors
}

// selectNeighbor walks neighborhood bucket by bucket in ascending makespan
// order and returns the first non-tabu candidate found, falling back to
// aspiration (first candidate strictly better than best) if every
// candidate is tabu. Returns nil if neither rule applies (empty
// neighborhood, or every candidate is tabu and none beats best).
func (d *Driver) selectNeighbor(neighborhood *container.SolutionMultiset, tabuList *container.TabuList, best *schedule.Solution) *schedule.Solution {
	var selected *schedule.Solution

	neighborhood.IterOrdered(func(_ float64, items []*schedule.Solution) bool {
		for _, n := range items {
			if !tabuList.Contains(n) {
				selected = n

				return false
			}
		}

		return true
	})
	if selected != nil {
		return selected
	}

	neighborhood.IterOrdered(func(_ float64, items []*schedule.Solution) bool {
		for _, n := range items {
			if schedule.Less(n, best) {
				selected = n

				return false
			}
		}

		return true
	})

	return selected
}

// diversificationJump walks neighborhood to its r-th distinct-makespan
// bucket (r drawn uniformly from [10,25], clamped to the last available
// bucket), then returns a uniformly random member of that bucket. Returns
// nil if the neighborhood is empty.
func (d *Driver) diversificationJump(neighborhood *container.SolutionMultiset) *schedule.Solution {
	if neighborhood.Size() == 0 {
		return nil
	}

	var buckets [][]*schedule.Solution
	neighborhood.IterOrdered(func(_ float64, items []*schedule.Solution) bool {
		buckets = append(buckets, items)

		return true
	})

	r := diversificationLow + d.rng.Intn(diversificationHigh-diversificationLow+1)
	if r >= len(buckets) {
		r = len(buckets) - 1
	}

	chosen := buckets[r]

	return chosen[d.rng.Intn(len(chosen))]
}

func equalMakespans(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
