// Package orchestrate implements a parallel orchestrator: a façade that
// spawns N independent worker threads, each running one Tabu or GA driver
// on a private copy of the working state, with no communication between
// workers. It fans out a closure per worker with an independently derived
// deterministic RNG seed via errgroup, collects every worker error with
// go-multierror rather than failing fast, and reduces the surviving
// results to the minimum-makespan Solution.
package orchestrate
