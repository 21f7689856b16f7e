package instance

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-jssp/sdst-solver/matrix"
)

// validateMachineSpeeds checks machineSpeed is non-empty and strictly positive.
// Complexity: O(M).
func validateMachineSpeeds(machineSpeed []float64) error {
	if len(machineSpeed) == 0 {
		return fmt.Errorf("%w: %w", ErrMalformedInstance, ErrNoMachines)
	}
	for i, s := range machineSpeed {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return fmt.Errorf("%w: %w: machine=%d speed=%v", ErrMalformedInstance, ErrNonPositiveSpeed, i, s)
		}
	}

	return nil
}

// validateTask checks a single task row: non-negative pieces, a non-empty,
// sorted, unique, in-range Allowed set. Complexity: O(len(Allowed)).
func validateTask(t Task, m int) error {
	if math.IsNaN(t.Pieces) || math.IsInf(t.Pieces, 0) || t.Pieces < 0 {
		return fmt.Errorf("%w: %w: job=%d task=%d pieces=%v", ErrMalformedInstance, ErrNegativePieces, t.Job, t.Task, t.Pieces)
	}
	if len(t.Allowed) == 0 {
		return fmt.Errorf("%w: %w: job=%d task=%d", ErrMalformedInstance, ErrNoCompatibleMachine, t.Job, t.Task)
	}
	if !sort.IntsAreSorted(t.Allowed) {
		return fmt.Errorf("%w: job=%d task=%d: Allowed must be sorted ascending", ErrMalformedInstance, t.Job, t.Task)
	}
	for i, a := range t.Allowed {
		if a < 0 || a >= m {
			return fmt.Errorf("%w: %w: job=%d task=%d machine=%d", ErrMalformedInstance, ErrMachineOutOfRange, t.Job, t.Task, a)
		}
		if i > 0 && t.Allowed[i-1] == a {
			return fmt.Errorf("%w: job=%d task=%d: duplicate machine %d in Allowed", ErrMalformedInstance, t.Job, t.Task, a)
		}
	}

	return nil
}

// validateSetup checks setup is T×T and every entry is finite and >= 0.
// Complexity: O(T^2).
func validateSetup(setup matrix.Matrix, t int) error {
	if setup == nil || setup.Rows() != t || setup.Cols() != t {
		return fmt.Errorf("%w: %w", ErrMalformedInstance, ErrSetupShapeMismatch)
	}
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			v, err := setup.At(i, j)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedInstance, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("%w: %w: setup[%d][%d]=%v", ErrMalformedInstance, ErrNegativeSetup, i, j, v)
			}
		}
	}

	return nil
}
