// Package tabu implements a Tabu Search driver: a single-threaded,
// cooperative local-search loop over Operation Matrices. Each call to Run
// builds a bounded neighborhood with the neighbor package's generator,
// walks it in ascending makespan order applying tabu/aspiration rules, and
// optionally performs a stagnation-break diversification jump. Multiple Run
// invocations are intended to execute in parallel, one per worker — see
// package orchestrate — sharing nothing but the read-only Problem Instance.
package tabu
