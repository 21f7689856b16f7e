// Package makespan implements the makespan evaluator: a deterministic,
// order-sensitive reduction of an Operation Matrix and a Problem Instance
// into per-machine completion times and the scalar makespan. The evaluator
// performs no rounding — reproducing a result exactly requires bit-identical
// IEEE-754 double results for a fixed input, so summation order and
// arithmetic must stay fixed across callers.
package makespan
