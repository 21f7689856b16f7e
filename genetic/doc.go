// Package genetic implements a genetic-algorithm driver: a population-based
// search over Operation Matrices using Tournament, FitnessProportionate, or
// Random parent selection, two-point job-aligned crossover, and
// machine-reassignment mutation. Termination is either a fixed iteration
// (generation) count or a wall-clock runtime budget.
package genetic
