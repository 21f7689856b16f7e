package instance

import "errors"

// Sentinel errors returned by New and its internal validators.
// Do not wrap with fmt.Errorf where a sentinel suffices; add call-site
// context only when it aids debugging (e.g. which row failed).
var (
	// ErrMalformedInstance is the umbrella sentinel for structurally invalid
	// instance data: duplicate task ids, an empty compatible-machine list, a
	// negative speed, or a setup table whose shape does not match the task
	// table.
	ErrMalformedInstance = errors.New("instance: malformed instance data")

	// ErrNoMachines indicates machineSpeed is empty.
	ErrNoMachines = errors.New("instance: no machines")

	// ErrNoTasks indicates the task table is empty.
	ErrNoTasks = errors.New("instance: no tasks")

	// ErrNonPositiveSpeed indicates a machine speed is zero or negative.
	ErrNonPositiveSpeed = errors.New("instance: machine speed must be positive")

	// ErrNegativePieces indicates a task's workload is negative.
	ErrNegativePieces = errors.New("instance: task pieces must be non-negative")

	// ErrNoCompatibleMachine indicates a task's allowed-machine set is empty.
	ErrNoCompatibleMachine = errors.New("instance: task has no compatible machine")

	// ErrMachineOutOfRange indicates an allowed-machine index is outside [0,M).
	ErrMachineOutOfRange = errors.New("instance: allowed machine index out of range")

	// ErrDuplicateTask indicates the same (jobId, taskId) pair appears twice.
	ErrDuplicateTask = errors.New("instance: duplicate (jobId, taskId) pair")

	// ErrSetupShapeMismatch indicates the setup table is not T×T.
	ErrSetupShapeMismatch = errors.New("instance: setup table shape does not match task count")

	// ErrNegativeSetup indicates a negative setup-time entry.
	ErrNegativeSetup = errors.New("instance: setup time must be non-negative")

	// ErrUnknownTask is returned by RowOf when (jobId, taskId) is not present.
	ErrUnknownTask = errors.New("instance: unknown (jobId, taskId) pair")
)

// TaskKey uniquely identifies a task by its job and its position within
// that job's totally ordered task sequence.
type TaskKey struct {
	JobID  int
	TaskID int
}

// Task describes one task row of the job/task table: the work it
// represents and the machines it may run on.
type Task struct {
	Job     int     // JobID
	Task    int     // TaskID (0-based position within Job's sequence)
	Pieces  float64 // workload, in work units, >= 0
	Allowed []int   // compatible machine indices, sorted ascending, non-empty, unique
}
