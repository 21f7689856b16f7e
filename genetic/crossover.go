package genetic

import (
	"math/rand"

	"github.com/go-jssp/sdst-solver/instance"
	"github.com/go-jssp/sdst-solver/schedule"
)

// crossover implements two-point, job-aligned crossover: two distinct job
// ids (j1, j2) are chosen; the child inherits every row belonging to
// {j1, j2} from parentA, in parentA's row
// order, and every remaining row from parentB, in parentB's row order.
// Each job's rows all come from exactly one parent, so intra-job order is
// preserved by construction.
func crossover(inst *instance.Instance, parentA, parentB *schedule.OperationMatrix, rng *rand.Rand) *schedule.OperationMatrix {
	j1, j2 := distinctJobPair(inst.J(), rng)

	rows := make([]schedule.Row, 0, parentA.Len())
	for i := 0; i < parentA.Len(); i++ {
		job := parentA.JobAt(i)
		if job == j1 || job == j2 {
			rows = append(rows, parentA.RowAt(i))
		}
	}
	for i := 0; i < parentB.Len(); i++ {
		job := parentB.JobAt(i)
		if job != j1 && job != j2 {
			rows = append(rows, parentB.RowAt(i))
		}
	}

	om, err := schedule.NewOperationMatrix(inst, rows)
	if err != nil {
		return nil
	}

	return om
}

// distinctJobPair draws two distinct job ids uniformly from [0, jobCount).
// jobCount must be >= 2.
func distinctJobPair(jobCount int, rng *rand.Rand) (int, int) {
	j1 := rng.Intn(jobCount)
	j2 := j1
	for j2 == j1 {
		j2 = rng.Intn(jobCount)
	}

	return j1, j2
}

// mutate applies mutation: with probability mp, pick one random row and
// reassign its machine to a uniformly random distinct compatible
// machine. A task with exactly one allowed machine makes mutation a no-op
// for that draw.
func mutate(inst *instance.Instance, om *schedule.OperationMatrix, mp float64, rng *rand.Rand) *schedule.OperationMatrix {
	if rng.Float64() >= mp {
		return om
	}

	i := rng.Intn(om.Len())
	row, err := inst.RowOf(om.JobAt(i), om.TaskAt(i))
	if err != nil {
		return om
	}

	allowed := inst.Allowed(row)
	if len(allowed) < 2 {
		return om
	}

	current := om.MachineAt(i)
	next := current
	for next == current {
		next = allowed[rng.Intn(len(allowed))]
	}

	return om.WithMachine(i, next)
}
