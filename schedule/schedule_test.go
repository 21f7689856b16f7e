package schedule_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/matrix"
	"github.com/go-jssp/sdst-solver/schedule"
)

func twoJobInstance(t *testing.T) *instance.Instance {
	t.Helper()
	setup, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	tasks := []instance.Task{
		{Job: 0, Task: 0, Pieces: 10, Allowed: []int{0, 1}},
		{Job: 0, Task: 1, Pieces: 20, Allowed: []int{1}},
		{Job: 1, Task: 0, Pieces: 5, Allowed: []int{0}},
	}
	inst, err := instance.New([]float64{2, 4}, tasks, setup)
	require.NoError(t, err)

	return inst
}

func feasibleRows() []schedule.Row {
	return []schedule.Row{
		{JobID: 0, TaskID: 0, SequenceNumber: 0, MachineID: 0},
		{JobID: 0, TaskID: 1, SequenceNumber: 1, MachineID: 1},
		{JobID: 1, TaskID: 0, SequenceNumber: 0, MachineID: 0},
	}
}

func TestNewOperationMatrix_HappyPath(t *testing.T) {
	inst := twoJobInstance(t)
	om, err := schedule.NewOperationMatrix(inst, feasibleRows())
	require.NoError(t, err)
	require.Equal(t, 3, om.Len())
	require.Equal(t, 0, om.MachineAt(0))
}

func TestNewOperationMatrix_RejectsRowCountMismatch(t *testing.T) {
	inst := twoJobInstance(t)
	_, err := schedule.NewOperationMatrix(inst, feasibleRows()[:2])
	require.True(t, errors.Is(err, schedule.ErrRowCountMismatch))
}

func TestNewOperationMatrix_RejectsDuplicateCoverage(t *testing.T) {
	inst := twoJobInstance(t)
	rows := feasibleRows()
	rows[2] = rows[0]
	_, err := schedule.NewOperationMatrix(inst, rows)
	require.True(t, errors.Is(err, schedule.ErrMissingCoverage))
}

func TestNewOperationMatrix_RejectsIncompatibleMachine(t *testing.T) {
	inst := twoJobInstance(t)
	rows := feasibleRows()
	rows[1].MachineID = 0 // job0/task1 only allows machine 1
	_, err := schedule.NewOperationMatrix(inst, rows)
	require.True(t, errors.Is(err, schedule.ErrIncompatibleMachine))
}

func TestNewOperationMatrix_RejectsOutOfOrder(t *testing.T) {
	inst := twoJobInstance(t)
	rows := feasibleRows()
	rows[0].SequenceNumber, rows[1].SequenceNumber = 1, 0
	_, err := schedule.NewOperationMatrix(inst, rows)
	require.True(t, errors.Is(err, schedule.ErrOutOfOrder))
}

func TestOperationMatrix_WithMachineAndSwapped(t *testing.T) {
	inst := twoJobInstance(t)
	om, err := schedule.NewOperationMatrix(inst, feasibleRows())
	require.NoError(t, err)

	moved := om.WithMachine(0, 1)
	require.Equal(t, 1, moved.MachineAt(0))
	require.Equal(t, 0, om.MachineAt(0), "original must be unmodified")

	swapped := om.Swapped(0, 2)
	require.Equal(t, 1, swapped.JobAt(0))
	require.Equal(t, 0, swapped.JobAt(2))
}

func TestLess_OrdersByMakespanThenLoadProfile(t *testing.T) {
	inst := twoJobInstance(t)
	om, err := schedule.NewOperationMatrix(inst, feasibleRows())
	require.NoError(t, err)

	lower := schedule.NewSolution(om, []float64{10, 5}, 10)
	higher := schedule.NewSolution(om, []float64{20, 5}, 20)
	require.True(t, schedule.Less(lower, higher))
	require.False(t, schedule.Less(higher, lower))

	// Tie on makespan, flatter profile (lexicographically smaller once sorted
	// descending) wins: [10,6,6] < [10,8,2].
	flat := schedule.NewSolution(om, []float64{6, 10, 6}, 10)
	peaky := schedule.NewSolution(om, []float64{10, 2, 8}, 10)
	require.True(t, schedule.Less(flat, peaky))
}

func TestSolutionKey_IdenticalMatricesProduceIdenticalKeys(t *testing.T) {
	inst := twoJobInstance(t)
	om1, err := schedule.NewOperationMatrix(inst, feasibleRows())
	require.NoError(t, err)
	om2, err := schedule.NewOperationMatrix(inst, feasibleRows())
	require.NoError(t, err)

	s1 := schedule.NewSolution(om1, []float64{10, 5}, 10)
	s2 := schedule.NewSolution(om2, []float64{10, 5}, 10)
	require.Equal(t, s1.Key(), s2.Key())

	s3 := schedule.NewSolution(om1.WithMachine(0, 1), []float64{10, 5}, 10)
	require.NotEqual(t, s1.Key(), s3.Key())
}
