// Package container implements two Solution Value containers:
// SolutionMultiset, an ordered-by-makespan collection of Solutions (the tabu
// driver holds each neighborhood in one), and TabuList, a bounded FIFO of recently
// visited Solutions with O(1) membership testing keyed by matrix identity.
package container
