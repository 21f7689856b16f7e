package neighbor

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/schedule"
)

// ErrEmptyNeighborhood is returned when Generate exhausts its attempt
// budget without producing a feasible neighbor. Callers treat this as
// recoverable: skip the step.
var ErrEmptyNeighborhood = errors.New("neighbor: exhausted attempts without a feasible neighbor")

// Generate produces one feasible neighbor of seed under inst: with
// probability p attempt a machine reassignment, otherwise a row swap. Each
// call draws exactly one perturbation kind per attempt; on
// infeasibility it retries (a fresh random draw each time) up to
// maxAttempts times before returning ErrEmptyNeighborhood.
//
// rng must not be shared across concurrent callers: math/rand.Rand is not
// goroutine-safe, so each caller needs its own private instance.
func Generate(inst *instance.Instance, seed *schedule.OperationMatrix, p float64, rng *rand.Rand, maxAttempts int) (*schedule.OperationMatrix, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate, err := attemptOnce(inst, seed, p, rng)
		if err == nil {
			return candidate, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrEmptyNeighborhood, lastErr)
}

// attemptOnce performs a single perturbation draw: machine reassignment
// with probability p, row swap with probability 1-p.
func attemptOnce(inst *instance.Instance, seed *schedule.OperationMatrix, p float64, rng *rand.Rand) (*schedule.OperationMatrix, error) {
	if rng.Float64() < p {
		return reassignMachine(inst, seed, rng)
	}

	return swapRows(inst, seed, rng)
}

// reassignMachine picks a random row and replaces its machine with a
// uniformly random distinct member of its allowed set. Requires
// |allowed| >= 2; otherwise falls through as infeasible so the caller
// retries with a fresh draw.
func reassignMachine(inst *instance.Instance, seed *schedule.OperationMatrix, rng *rand.Rand) (*schedule.OperationMatrix, error) {
	n := seed.Len()
	i := rng.Intn(n)

	row, err := inst.RowOf(seed.JobAt(i), seed.TaskAt(i))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", schedule.ErrInfeasibleSolution, err)
	}

	allowed := inst.Allowed(row)
	if len(allowed) < 2 {
		return nil, fmt.Errorf("%w: row=%d has fewer than 2 compatible machines", schedule.ErrInfeasibleSolution, i)
	}

	current := seed.MachineAt(i)
	next := current
	for next == current {
		next = allowed[rng.Intn(len(allowed))]
	}

	candidate := seed.WithMachine(i, next)
	if _, err := schedule.NewOperationMatrix(inst, matrixRows(candidate)); err != nil {
		return nil, err
	}

	return candidate, nil
}

// swapRows picks two distinct row indices i<j and exchanges them, legal
// only if intra-job order is preserved afterward.
func swapRows(inst *instance.Instance, seed *schedule.OperationMatrix, rng *rand.Rand) (*schedule.OperationMatrix, error) {
	n := seed.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: fewer than 2 rows, cannot swap", schedule.ErrInfeasibleSolution)
	}

	i := rng.Intn(n)
	j := rng.Intn(n)
	for j == i {
		j = rng.Intn(n)
	}
	if i > j {
		i, j = j, i
	}

	candidate := seed.Swapped(i, j)
	if _, err := schedule.NewOperationMatrix(inst, matrixRows(candidate)); err != nil {
		return nil, err
	}

	return candidate, nil
}

// matrixRows materializes an OperationMatrix back into []schedule.Row so it
// can be re-validated through schedule.NewOperationMatrix, the single
// source of truth for feasibility invariants.
func matrixRows(om *schedule.OperationMatrix) []schedule.Row {
	rows := make([]schedule.Row, om.Len())
	for i := 0; i < om.Len(); i++ {
		rows[i] = om.RowAt(i)
	}

	return rows
}
