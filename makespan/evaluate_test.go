package makespan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/makespan"
	"github.com/go-jssp/sdst-solver/matrix"
	"github.com/go-jssp/sdst-solver/schedule"
)

// buildInstance creates a 2-machine, 2-job instance with a non-trivial
// setup table so the setup lookup path is exercised.
//
// Tasks (row order): row0 = job0/task0, row1 = job0/task1, row2 = job1/task0.
// machineSpeed = [1, 1] (so runtime == pieces, keeping expected values simple).
func buildInstance(t *testing.T) *instance.Instance {
	t.Helper()
	setup, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	// setup[0][2] = 3: task row0 -> row2 on the same machine costs 3.
	require.NoError(t, setup.Set(0, 2, 3))

	tasks := []instance.Task{
		{Job: 0, Task: 0, Pieces: 10, Allowed: []int{0}},
		{Job: 0, Task: 1, Pieces: 4, Allowed: []int{1}},
		{Job: 1, Task: 0, Pieces: 5, Allowed: []int{0}},
	}
	inst, err := instance.New([]float64{1, 1}, tasks, setup)
	require.NoError(t, err)

	return inst
}

func TestEvaluate_SequentialAccumulationWithSetup(t *testing.T) {
	inst := buildInstance(t)
	rows := []schedule.Row{
		{JobID: 0, TaskID: 0, SequenceNumber: 0, MachineID: 0}, // row0: starts at 0, ends at 10
		{JobID: 1, TaskID: 0, SequenceNumber: 0, MachineID: 0}, // row2: same machine, setup[0][2]=3, starts at 10, ends at 10+3+5=18
		{JobID: 0, TaskID: 1, SequenceNumber: 1, MachineID: 1}, // row1: jobReady[0]=10 (from row0), machine 1 free at 0, starts at 10, ends at 14
	}
	om, err := schedule.NewOperationMatrix(inst, rows)
	require.NoError(t, err)

	sol, err := makespan.Evaluate(inst, om)
	require.NoError(t, err)

	require.Equal(t, []float64{18, 14}, sol.MachineMakespans())
	require.Equal(t, 18.0, sol.Makespan())
}

func TestEvaluate_NoSetupOnFirstTaskOfMachine(t *testing.T) {
	inst := buildInstance(t)
	rows := []schedule.Row{
		{JobID: 0, TaskID: 0, SequenceNumber: 0, MachineID: 0},
		{JobID: 0, TaskID: 1, SequenceNumber: 1, MachineID: 1},
		{JobID: 1, TaskID: 0, SequenceNumber: 0, MachineID: 0},
	}
	om, err := schedule.NewOperationMatrix(inst, rows)
	require.NoError(t, err)

	sol, err := makespan.Evaluate(inst, om)
	require.NoError(t, err)

	// row0: machine0 0->10; row1: machine1, jobReady[0]=10, starts 10 ends 14;
	// row2: machine0, jobReady[1]=0, machineReady[0]=10, setup[0][2]=3, start=10, end=10+3+5=18.
	require.Equal(t, []float64{18, 14}, sol.MachineMakespans())
	require.Equal(t, 18.0, sol.Makespan())
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	inst := buildInstance(t)
	rows := []schedule.Row{
		{JobID: 0, TaskID: 0, SequenceNumber: 0, MachineID: 0},
		{JobID: 1, TaskID: 0, SequenceNumber: 0, MachineID: 0},
		{JobID: 0, TaskID: 1, SequenceNumber: 1, MachineID: 1},
	}
	om, err := schedule.NewOperationMatrix(inst, rows)
	require.NoError(t, err)

	first, err := makespan.Evaluate(inst, om)
	require.NoError(t, err)
	second, err := makespan.Evaluate(inst, om)
	require.NoError(t, err)

	require.Equal(t, first.MachineMakespans(), second.MachineMakespans())
	require.Equal(t, first.Makespan(), second.Makespan())
}
