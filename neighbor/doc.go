// Package neighbor implements a neighbor generator: given a feasible seed
// Solution and a probability p, it produces one feasible neighbor by
// either reassigning a random row to a different compatible machine or
// swapping two rows, retrying on infeasibility up to a caller-supplied
// budget.
package neighbor
