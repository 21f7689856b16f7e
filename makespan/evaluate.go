package makespan

import (
	"errors"
	"fmt"

	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/schedule"
)

// ErrInfeasibleSolution is returned when the operation matrix supplied to
// Evaluate violates a feasibility invariant the evaluator is asked to
// assume holds. Evaluate only re-checks the invariants that are cheap to
// detect in-line (machine compatibility via the row->task lookup); callers
// that need the full invariant set should construct the matrix through
// schedule.NewOperationMatrix, which already guards them at construction.
var ErrInfeasibleSolution = errors.New("makespan: infeasible operation matrix")

// noTask marks "no task yet processed on this machine" for
// lastTaskOnMachine.
const noTask = -1

// Evaluate computes the per-machine makespans and scalar makespan for om
// under inst. It iterates rows in row-index order exactly once, maintaining
// machineReady, jobReady, and lastTaskOnMachine running
// arrays; this traversal order is part of the contract (bit-exact
// reproducibility) and must never be reordered or parallelized.
//
// Complexity: O(T) evaluator steps, each O(1) plus one setup-table lookup.
func Evaluate(inst *instance.Instance, om *schedule.OperationMatrix) (*schedule.Solution, error) {
	m := inst.M()
	machineReady := make([]float64, m)
	jobReady := make([]float64, inst.J())
	lastRowOnMachine := make([]int, m)
	for i := range lastRowOnMachine {
		lastRowOnMachine[i] = noTask
	}

	for i := 0; i < om.Len(); i++ {
		jobID, taskID, machineID := om.JobAt(i), om.TaskAt(i), om.MachineAt(i)

		row, err := inst.RowOf(jobID, taskID)
		if err != nil {
			return nil, fmt.Errorf("%w: job=%d task=%d: %w", ErrInfeasibleSolution, jobID, taskID, err)
		}

		allowed := inst.Allowed(row)
		compatible := false
		for _, a := range allowed {
			if a == machineID {
				compatible = true
				break
			}
		}
		if !compatible {
			return nil, fmt.Errorf("%w: job=%d task=%d machine=%d not in allowed set", ErrInfeasibleSolution, jobID, taskID, machineID)
		}

		runtime := inst.Pieces(row) / inst.MachineSpeed(machineID)

		setupTime := 0.0
		if prevRow := lastRowOnMachine[machineID]; prevRow != noTask {
			setupTime, err = inst.SetupTime(prevRow, row)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInfeasibleSolution, err)
			}
		}

		start := machineReady[machineID]
		if jobReady[jobID] > start {
			start = jobReady[jobID]
		}
		end := start + setupTime + runtime

		machineReady[machineID] = end
		jobReady[jobID] = end
		lastRowOnMachine[machineID] = row
	}

	scalarMakespan := 0.0
	for _, v := range machineReady {
		if v > scalarMakespan {
			scalarMakespan = v
		}
	}

	return schedule.NewSolution(om, machineReady, scalarMakespan), nil
}
