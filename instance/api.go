package instance

import (
	"fmt"

	"github.com/go-jssp/sdst-solver/matrix"
)

// Instance is the immutable Problem Instance: machine speeds, the task
// table (workload + compatible machines), and the sequence-dependent setup
// table. It is built once by New and never mutated afterward, so it is
// safe to share by reference across every concurrent driver/worker.
type Instance struct {
	machineSpeed []float64          // length M, work units per time unit
	tasks        []Task             // length T, in canonical row order
	rowOf        map[TaskKey]int    // (jobId,taskId) -> row in tasks/setup
	setup        matrix.Matrix      // T x T, setup[a][b] >= 0
	jobCount     int                // J, derived: max(Job)+1 across tasks
}

// New validates and constructs an Instance from the three tables the
// (external) data loader is responsible for producing: machine speeds, the
// task table, and the setup table. Tasks must already be ordered so that
// tasks of the same job appear in non-decreasing TaskID order; New does not
// reorder them.
//
// Errors: ErrNoMachines, ErrNonPositiveSpeed, ErrNoTasks, ErrNegativePieces,
// ErrNoCompatibleMachine, ErrMachineOutOfRange, ErrDuplicateTask,
// ErrSetupShapeMismatch, ErrNegativeSetup — all wrap ErrMalformedInstance so
// callers may test with errors.Is(err, instance.ErrMalformedInstance).
//
// Complexity: O(T*avgAllowed) for task validation + O(T^2) to validate the
// setup table shape and non-negativity.
func New(machineSpeed []float64, tasks []Task, setup matrix.Matrix) (*Instance, error) {
	if err := validateMachineSpeeds(machineSpeed); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInstance, ErrNoTasks)
	}

	m := len(machineSpeed)
	rowOf := make(map[TaskKey]int, len(tasks))
	jobCount := 0
	for row, t := range tasks {
		if err := validateTask(t, m); err != nil {
			return nil, err
		}
		key := TaskKey{JobID: t.Job, TaskID: t.Task}
		if _, dup := rowOf[key]; dup {
			return nil, fmt.Errorf("%w: %w: job=%d task=%d", ErrMalformedInstance, ErrDuplicateTask, t.Job, t.Task)
		}
		rowOf[key] = row
		if t.Job+1 > jobCount {
			jobCount = t.Job + 1
		}
	}

	if err := validateSetup(setup, len(tasks)); err != nil {
		return nil, err
	}

	return &Instance{
		machineSpeed: append([]float64(nil), machineSpeed...),
		tasks:        append([]Task(nil), tasks...),
		rowOf:        rowOf,
		setup:        setup,
		jobCount:     jobCount,
	}, nil
}

// M returns the machine count.
func (inst *Instance) M() int { return len(inst.machineSpeed) }

// J returns the job count (derived as 1 + the maximum JobID observed).
func (inst *Instance) J() int { return inst.jobCount }

// T returns the total task-row count across all jobs.
func (inst *Instance) T() int { return len(inst.tasks) }

// MachineSpeed returns the work-units-per-time-unit rate of machine m.
// Panics if m is out of [0,M) — a programmer error, not recoverable input.
func (inst *Instance) MachineSpeed(m int) float64 { return inst.machineSpeed[m] }

// TaskAt returns the Task stored at row index row ([0,T)).
func (inst *Instance) TaskAt(row int) Task { return inst.tasks[row] }

// RowOf returns the row index for (jobID, taskID), or ErrUnknownTask.
func (inst *Instance) RowOf(jobID, taskID int) (int, error) {
	row, ok := inst.rowOf[TaskKey{JobID: jobID, TaskID: taskID}]
	if !ok {
		return 0, fmt.Errorf("%w: job=%d task=%d", ErrUnknownTask, jobID, taskID)
	}

	return row, nil
}

// Allowed returns the compatible-machine set for the task at row (read-only;
// callers must not mutate the returned slice).
func (inst *Instance) Allowed(row int) []int { return inst.tasks[row].Allowed }

// Pieces returns the workload of the task at row.
func (inst *Instance) Pieces(row int) float64 { return inst.tasks[row].Pieces }

// SetupTime returns setup[prevRow][currRow], the sequence-dependent setup
// time incurred when executing the task at currRow immediately after the
// task at prevRow on the same machine. A zero result is legal and means no
// setup is required.
func (inst *Instance) SetupTime(prevRow, currRow int) (float64, error) {
	v, err := inst.setup.At(prevRow, currRow)
	if err != nil {
		return 0, fmt.Errorf("instance: setup lookup(%d,%d): %w", prevRow, currRow, err)
	}

	return v, nil
}
