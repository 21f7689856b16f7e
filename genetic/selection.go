package genetic

import (
	"math/rand"

	"github.com/go-jssp/sdst-solver/schedule"
)

// selectParents returns the row indices of two parents drawn from
// population according to opts.SelectionMethod.
func selectParents(population []*schedule.Solution, opts Options, rng *rand.Rand) (int, int) {
	switch opts.SelectionMethod {
	case Tournament:
		return tournamentSelect(population, opts.SelectionSize, rng)
	case FitnessProportionate:
		return fitnessProportionateSelect(population, rng)
	default:
		return randomSelect(population, rng)
	}
}

// tournamentSelect draws SelectionSize indices uniformly with replacement
// and returns the two with the lowest makespan among them.
func tournamentSelect(population []*schedule.Solution, s int, rng *rand.Rand) (int, int) {
	bestIdx, secondIdx := -1, -1
	for i := 0; i < s; i++ {
		idx := rng.Intn(len(population))
		switch {
		case bestIdx == -1:
			bestIdx = idx
		case secondIdx == -1:
			secondIdx = idx
			if schedule.Less(population[secondIdx], population[bestIdx]) {
				bestIdx, secondIdx = secondIdx, bestIdx
			}
		case schedule.Less(population[idx], population[bestIdx]):
			secondIdx = bestIdx
			bestIdx = idx
		case schedule.Less(population[idx], population[secondIdx]):
			secondIdx = idx
		}
	}
	if secondIdx == -1 {
		secondIdx = bestIdx
	}

	return bestIdx, secondIdx
}

// fitnessProportionateSelect samples two distinct parents by roulette,
// weighted by 1/makespan.
func fitnessProportionateSelect(population []*schedule.Solution, rng *rand.Rand) (int, int) {
	weights := make([]float64, len(population))
	total := 0.0
	for i, s := range population {
		w := 1.0 / s.Makespan()
		weights[i] = w
		total += w
	}

	first := rouletteDraw(weights, total, rng)
	second := first
	for second == first {
		second = rouletteDraw(weights, total, rng)
	}

	return first, second
}

// rouletteDraw performs a single weighted draw over weights summing to
// total.
func rouletteDraw(weights []float64, total float64, rng *rand.Rand) int {
	target := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if acc >= target {
			return i
		}
	}

	return len(weights) - 1
}

// randomSelect returns two independent uniform draws.
func randomSelect(population []*schedule.Solution, rng *rand.Rand) (int, int) {
	return rng.Intn(len(population)), rng.Intn(len(population))
}
