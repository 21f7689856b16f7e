package schedule

import (
	"errors"
	"fmt"

	"github.com/go-jssp/sdst-solver/instance"
)

// Sentinel errors for OperationMatrix construction and validation.
var (
	// ErrInfeasibleSolution is the umbrella sentinel for an Operation Matrix
	// that violates coverage, machine compatibility, or intra-job order.
	ErrInfeasibleSolution = errors.New("schedule: infeasible operation matrix")

	// ErrRowCountMismatch indicates the matrix does not have exactly T rows.
	ErrRowCountMismatch = errors.New("schedule: row count does not match instance task count")

	// ErrMissingCoverage indicates some (jobId, taskId) pair is absent or
	// duplicated.
	ErrMissingCoverage = errors.New("schedule: task coverage incomplete or duplicated")

	// ErrIncompatibleMachine indicates a row assigns a task to a machine
	// outside its allowed set.
	ErrIncompatibleMachine = errors.New("schedule: machine assignment incompatible with task")

	// ErrOutOfOrder indicates two rows of the same job appear with
	// decreasing sequence number.
	ErrOutOfOrder = errors.New("schedule: intra-job sequence order violated")
)

// Row is one execution slot of the Operation Matrix: a task bound to a
// machine, carrying its position within its own job's sequence.
type Row struct {
	JobID          int
	TaskID         int
	SequenceNumber int
	MachineID      int
}

// OperationMatrix is the canonical encoding of a candidate schedule: exactly
// T rows, one per task execution slot, stored in struct-of-arrays form for
// cache-friendly traversal by the makespan evaluator.
type OperationMatrix struct {
	jobID     []int
	taskID    []int
	seq       []int
	machineID []int
}

// NewOperationMatrix builds and validates an OperationMatrix from rows,
// against inst's task table. Rows must already be in row-index order; this
// constructor does not reorder them.
//
// Complexity: O(T); the intra-job order check is a single pass keyed on the
// last-seen sequence number per job.
func NewOperationMatrix(inst *instance.Instance, rows []Row) (*OperationMatrix, error) {
	if len(rows) != inst.T() {
		return nil, fmt.Errorf("%w: %w: got=%d want=%d", ErrInfeasibleSolution, ErrRowCountMismatch, len(rows), inst.T())
	}

	om := &OperationMatrix{
		jobID:     make([]int, len(rows)),
		taskID:    make([]int, len(rows)),
		seq:       make([]int, len(rows)),
		machineID: make([]int, len(rows)),
	}
	for i, r := range rows {
		om.jobID[i] = r.JobID
		om.taskID[i] = r.TaskID
		om.seq[i] = r.SequenceNumber
		om.machineID[i] = r.MachineID
	}

	if err := validateCoverage(inst, om); err != nil {
		return nil, err
	}
	if err := validateMachineCompatibility(inst, om); err != nil {
		return nil, err
	}
	if err := validateIntraJobOrder(om); err != nil {
		return nil, err
	}

	return om, nil
}

// Len returns the number of rows (T).
func (om *OperationMatrix) Len() int { return len(om.jobID) }

// RowAt returns the Row stored at index i.
func (om *OperationMatrix) RowAt(i int) Row {
	return Row{
		JobID:          om.jobID[i],
		TaskID:         om.taskID[i],
		SequenceNumber: om.seq[i],
		MachineID:      om.machineID[i],
	}
}

// MachineAt returns the machine assignment of row i without allocating a Row.
func (om *OperationMatrix) MachineAt(i int) int { return om.machineID[i] }

// JobAt returns the jobId of row i.
func (om *OperationMatrix) JobAt(i int) int { return om.jobID[i] }

// TaskAt returns the taskId of row i.
func (om *OperationMatrix) TaskAt(i int) int { return om.taskID[i] }

// Clone returns a deep, independent copy of the matrix.
func (om *OperationMatrix) Clone() *OperationMatrix {
	return &OperationMatrix{
		jobID:     append([]int(nil), om.jobID...),
		taskID:    append([]int(nil), om.taskID...),
		seq:       append([]int(nil), om.seq...),
		machineID: append([]int(nil), om.machineID...),
	}
}

// WithMachine returns a clone with row i's machine assignment changed to m.
// Used by the neighbor generator to produce a perturbed candidate without
// mutating the parent.
func (om *OperationMatrix) WithMachine(i, m int) *OperationMatrix {
	cp := om.Clone()
	cp.machineID[i] = m

	return cp
}

// Swapped returns a clone with rows i and j exchanged in their entirety
// (job/task/sequence/machine all move together). Used by the row-swap
// neighbor move.
func (om *OperationMatrix) Swapped(i, j int) *OperationMatrix {
	cp := om.Clone()
	cp.jobID[i], cp.jobID[j] = cp.jobID[j], cp.jobID[i]
	cp.taskID[i], cp.taskID[j] = cp.taskID[j], cp.taskID[i]
	cp.seq[i], cp.seq[j] = cp.seq[j], cp.seq[i]
	cp.machineID[i], cp.machineID[j] = cp.machineID[j], cp.machineID[i]

	return cp
}

func validateCoverage(inst *instance.Instance, om *OperationMatrix) error {
	seen := make(map[instance.TaskKey]bool, om.Len())
	for i := 0; i < om.Len(); i++ {
		key := instance.TaskKey{JobID: om.jobID[i], TaskID: om.taskID[i]}
		if seen[key] {
			return fmt.Errorf("%w: %w: job=%d task=%d duplicated", ErrInfeasibleSolution, ErrMissingCoverage, key.JobID, key.TaskID)
		}
		seen[key] = true
		if _, err := inst.RowOf(key.JobID, key.TaskID); err != nil {
			return fmt.Errorf("%w: %w: job=%d task=%d: %w", ErrInfeasibleSolution, ErrMissingCoverage, key.JobID, key.TaskID, err)
		}
	}
	if len(seen) != inst.T() {
		return fmt.Errorf("%w: %w: covered=%d want=%d", ErrInfeasibleSolution, ErrMissingCoverage, len(seen), inst.T())
	}

	return nil
}

func validateMachineCompatibility(inst *instance.Instance, om *OperationMatrix) error {
	for i := 0; i < om.Len(); i++ {
		row, err := inst.RowOf(om.jobID[i], om.taskID[i])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInfeasibleSolution, err)
		}
		allowed := inst.Allowed(row)
		ok := false
		for _, a := range allowed {
			if a == om.machineID[i] {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %w: job=%d task=%d machine=%d", ErrInfeasibleSolution, ErrIncompatibleMachine, om.jobID[i], om.taskID[i], om.machineID[i])
		}
	}

	return nil
}

func validateIntraJobOrder(om *OperationMatrix) error {
	lastSeq := make(map[int]int)
	seenJob := make(map[int]bool)
	for i := 0; i < om.Len(); i++ {
		job := om.jobID[i]
		if seenJob[job] && om.seq[i] < lastSeq[job] {
			return fmt.Errorf("%w: %w: job=%d sequence=%d after %d", ErrInfeasibleSolution, ErrOutOfOrder, job, om.seq[i], lastSeq[job])
		}
		lastSeq[job] = om.seq[i]
		seenJob[job] = true
	}

	return nil
}
