package orchestrate

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/go-jssp/sdst-solver/schedule"
)

// ErrNoWorkers is returned by Run when workerCount <= 0.
var ErrNoWorkers = errors.New("orchestrate: workerCount must be positive")

// ErrAllWorkersFailed is returned by Run when every worker returned an
// error and so no Solution could be reduced.
var ErrAllWorkersFailed = errors.New("orchestrate: every worker failed")

// Worker is one independent Tabu or GA driver invocation. It receives a
// private, deterministically derived *rand.Rand (never shared with another
// worker — math/rand.Rand is not goroutine-safe) and its 0-based worker
// index, and returns the best Solution it found.
type Worker func(ctx context.Context, rng *rand.Rand, workerIndex int) (*schedule.Solution, error)

// Run fans out workerCount independent Workers, each running on a private
// copy of the working state with no communication between workers. Before
// spawning anyone, it walks a single *rand.Rand seeded from baseSeed and
// draws one Int63 per worker up front, sequentially — math/rand.Rand is not
// goroutine-safe, so every worker's own stream must be carved out before
// fan-out, not during it. Each worker then gets its own private *rand.Rand
// seeded from its draw, so the whole run is reproducible for a fixed
// baseSeed and workerCount. Workers never share mutable state and are
// fanned in via errgroup; every worker error is aggregated with
// go-multierror rather than cancelling the remaining workers, since an
// individual driver failing (e.g. ErrInvalidConfiguration surfaced some
// other way) does not invalidate the others' results.
//
// The reduction takes the minimum-makespan Solution across every worker
// that succeeded. Returns ErrAllWorkersFailed, wrapping the aggregated
// per-worker errors, if none succeeded.
func Run(ctx context.Context, baseSeed int64, workerCount int, worker Worker) (*schedule.Solution, error) {
	if workerCount <= 0 {
		return nil, ErrNoWorkers
	}

	base := rand.New(rand.NewSource(baseSeed))
	workerSeeds := make([]int64, workerCount)
	for i := range workerSeeds {
		workerSeeds[i] = base.Int63()
	}

	results := make([]*schedule.Solution, workerCount)

	var (
		mu   sync.Mutex
		errs *multierror.Error
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workerCount; i++ {
		i := i
		workerRNG := rand.New(rand.NewSource(workerSeeds[i]))

		g.Go(func() error {
			result, err := worker(gctx, workerRNG, i)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()

				return nil
			}
			results[i] = result

			return nil
		})
	}

	// g.Wait's error is always nil here: workers never return a non-nil
	// error to the group, so the context is never cancelled early and
	// every worker runs to completion.
	_ = g.Wait()

	best := reduceBest(results)
	if best == nil {
		return nil, multierror.Append(ErrAllWorkersFailed, errs).ErrorOrNil()
	}

	return best, nil
}

// reduceBest returns the minimum-makespan non-nil Solution in results, or
// nil if every slot is nil.
func reduceBest(results []*schedule.Solution) *schedule.Solution {
	var best *schedule.Solution
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || schedule.Less(r, best) {
			best = r
		}
	}

	return best
}
