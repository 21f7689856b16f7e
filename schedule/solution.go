package schedule

import (
	"encoding/binary"
	"math"
	"sort"
)

// Solution is a feasible OperationMatrix paired with its per-machine
// makespan vector and the
// scalar makespan. Immutable once constructed; neighbor generation and
// crossover always produce a new Solution rather than mutate one in place.
type Solution struct {
	matrix           *OperationMatrix
	machineMakespans []float64
	makespan         float64
}

// NewSolution packages an already-evaluated OperationMatrix and its
// per-machine makespans into a Solution. makespan must equal
// max(machineMakespans); callers are expected to pass the value the
// makespan evaluator computed, not recompute it here.
func NewSolution(om *OperationMatrix, machineMakespans []float64, makespan float64) *Solution {
	return &Solution{
		matrix:           om,
		machineMakespans: append([]float64(nil), machineMakespans...),
		makespan:         makespan,
	}
}

// Matrix returns the underlying OperationMatrix.
func (s *Solution) Matrix() *OperationMatrix { return s.matrix }

// Makespan returns the scalar makespan (max over machineMakespans).
func (s *Solution) Makespan() float64 { return s.makespan }

// MachineMakespans returns the per-machine completion times (read-only;
// callers must not mutate the returned slice).
func (s *Solution) MachineMakespans() []float64 { return s.machineMakespans }

// Less implements the total order used to compare two Solutions: ascending
// scalar makespan; ties broken by lexicographic comparison of the
// machineMakespans vectors after each is sorted descending (the flatter
// load profile wins). This is the single comparator used by the tabu
// neighborhood scan, GA selection, and SolutionMultiset bucket ordering —
// no package may define a competing order.
func Less(a, b *Solution) bool {
	if a.makespan != b.makespan {
		return a.makespan < b.makespan
	}

	return lessByLoadProfile(a.machineMakespans, b.machineMakespans)
}

// lessByLoadProfile compares two per-machine makespan vectors, each sorted
// descending, lexicographically. Complexity: O(M log M).
func lessByLoadProfile(a, b []float64) bool {
	sa := sortedDescending(a)
	sb := sortedDescending(b)
	n := len(sa)
	if len(sb) < n {
		n = len(sb)
	}
	for i := 0; i < n; i++ {
		if sa[i] != sb[i] {
			return sa[i] < sb[i]
		}
	}

	return len(sa) < len(sb)
}

func sortedDescending(v []float64) []float64 {
	cp := append([]float64(nil), v...)
	sort.Sort(sort.Reverse(sort.Float64Slice(cp)))

	return cp
}

// Key returns a canonical byte representation of the Solution's
// OperationMatrix, suitable as a map key for O(1) tabu-membership lookups.
// Two Solutions with identical (jobId, taskId, sequenceNumber, machineId)
// rows in the same row order produce identical keys.
//
// Complexity: O(T).
func (s *Solution) Key() string {
	om := s.matrix
	buf := make([]byte, 16*om.Len())
	for i := 0; i < om.Len(); i++ {
		off := i * 16
		binary.BigEndian.PutUint32(buf[off:], uint32(om.jobID[i]))
		binary.BigEndian.PutUint32(buf[off+4:], uint32(om.taskID[i]))
		binary.BigEndian.PutUint32(buf[off+8:], uint32(om.seq[i]))
		binary.BigEndian.PutUint32(buf[off+12:], uint32(om.machineID[i]))
	}

	return string(buf)
}

// makespanBits returns the IEEE-754 bit pattern of v: an exact, hashable
// representative of a float64 rather than a string-formatted approximation.
// Nothing in this package calls it; container.SolutionMultiset computes its
// bucket keys with math.Float64bits directly.
func makespanBits(v float64) uint64 { return math.Float64bits(v) }
