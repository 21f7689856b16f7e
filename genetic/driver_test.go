package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-jssp/sdst-solver/genetic"
	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/makespan"
	"github.com/go-jssp/sdst-solver/matrix"
	"github.com/go-jssp/sdst-solver/schedule"
)

func buildInstance(t *testing.T) *instance.Instance {
	t.Helper()
	setup, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	tasks := []instance.Task{
		{Job: 0, Task: 0, Pieces: 10, Allowed: []int{0, 1}},
		{Job: 0, Task: 1, Pieces: 4, Allowed: []int{0, 1}},
		{Job: 1, Task: 0, Pieces: 5, Allowed: []int{0, 1}},
		{Job: 1, Task: 1, Pieces: 7, Allowed: []int{0, 1}},
	}
	inst, err := instance.New([]float64{1, 1}, tasks, setup)
	require.NoError(t, err)

	return inst
}

func seedSolution(t *testing.T, inst *instance.Instance, machines [4]int) *schedule.Solution {
	t.Helper()
	rows := []schedule.Row{
		{JobID: 0, TaskID: 0, SequenceNumber: 0, MachineID: machines[0]},
		{JobID: 0, TaskID: 1, SequenceNumber: 1, MachineID: machines[1]},
		{JobID: 1, TaskID: 0, SequenceNumber: 0, MachineID: machines[2]},
		{JobID: 1, TaskID: 1, SequenceNumber: 1, MachineID: machines[3]},
	}
	om, err := schedule.NewOperationMatrix(inst, rows)
	require.NoError(t, err)
	sol, err := makespan.Evaluate(inst, om)
	require.NoError(t, err)

	return sol
}

func buildPopulation(t *testing.T, inst *instance.Instance, n int) []*schedule.Solution {
	t.Helper()
	variants := [][4]int{{0, 0, 1, 1}, {1, 1, 0, 0}, {0, 1, 0, 1}, {1, 0, 1, 0}}
	pop := make([]*schedule.Solution, n)
	for i := 0; i < n; i++ {
		pop[i] = seedSolution(t, inst, variants[i%len(variants)])
	}

	return pop
}

func TestNew_RejectsSingleJobInstance(t *testing.T) {
	setup, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	tasks := []instance.Task{{Job: 0, Task: 0, Pieces: 1, Allowed: []int{0}}}
	inst, err := instance.New([]float64{1}, tasks, setup)
	require.NoError(t, err)

	_, err = genetic.New(inst)
	require.ErrorIs(t, err, genetic.ErrInstanceTooSmall)
}

func TestNew_RejectsInvalidConfiguration(t *testing.T) {
	inst := buildInstance(t)
	_, err := genetic.New(inst, genetic.WithPopulationSize(0))
	require.ErrorIs(t, err, genetic.ErrInvalidConfiguration)
}

func TestRun_RejectsPopulationSizeMismatch(t *testing.T) {
	inst := buildInstance(t)
	d, err := genetic.New(inst, genetic.WithPopulationSize(10))
	require.NoError(t, err)

	_, err = d.Run(buildPopulation(t, inst, 3))
	require.ErrorIs(t, err, genetic.ErrPopulationSizeMismatch)
}

func TestRun_BestNeverWorseThanInitialPopulation(t *testing.T) {
	inst := buildInstance(t)
	pop := buildPopulation(t, inst, 12)

	for _, method := range []genetic.SelectionMethod{genetic.Tournament, genetic.FitnessProportionate, genetic.Random} {
		d, err := genetic.New(inst,
			genetic.WithPopulationSize(12),
			genetic.WithSelectionMethod(method),
			genetic.WithSelectionSize(3),
			genetic.WithIterations(15),
			genetic.WithSeed(99),
			genetic.WithBenchmark(true),
		)
		require.NoError(t, err)

		result, err := d.Run(pop)
		require.NoError(t, err)
		require.Len(t, result.ResultPopulation, len(pop))

		for _, initial := range pop {
			require.False(t, schedule.Less(initial, result.Best), "best must be <= every initial individual")
		}

		require.NotEmpty(t, result.Trace.BestMakespanByIteration)
		require.NotEmpty(t, result.Trace.AvgPopulationMakespanByIteration)
		require.Greater(t, result.Trace.MinMakespanCoordinate.Iteration, 0)
	}
}

func TestRun_IterationTerminationProducesExactIterationCount(t *testing.T) {
	inst := buildInstance(t)
	pop := buildPopulation(t, inst, 8)

	d, err := genetic.New(inst, genetic.WithPopulationSize(8), genetic.WithIterations(7), genetic.WithSeed(5), genetic.WithBenchmark(true))
	require.NoError(t, err)

	result, err := d.Run(pop)
	require.NoError(t, err)
	require.Len(t, result.Trace.BestMakespanByIteration, 7)
}
