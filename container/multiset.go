package container

import (
	"math"
	"sort"

	"github.com/go-jssp/sdst-solver/schedule"
)

// bucket holds every Solution sharing one exact scalar makespan, kept
// internally sorted by schedule.Less.
type bucket struct {
	makespan float64
	items    []*schedule.Solution
}

// SolutionMultiset maps makespan to an ordered bucket of Solution Values:
// Add, Size, and in-order iteration over (makespan, bucket) pairs ascending
// by makespan, with schedule.Less order within each bucket.
type SolutionMultiset struct {
	buckets map[uint64]*bucket // keyed by the IEEE-754 bit pattern of makespan
	order   []uint64           // bucket keys, kept sorted ascending by makespan
	size    int
}

// NewSolutionMultiset returns an empty SolutionMultiset.
func NewSolutionMultiset() *SolutionMultiset {
	return &SolutionMultiset{buckets: make(map[uint64]*bucket)}
}

// Add inserts s into its makespan bucket, maintaining schedule.Less order
// within the bucket and ascending-makespan order across buckets.
//
// Complexity: O(log B) to locate/create the bucket (B = distinct
// makespans seen), O(log n) to locate the insertion point within the
// bucket (n = bucket size), O(n) to shift for insertion.
func (ms *SolutionMultiset) Add(s *schedule.Solution) {
	key := math.Float64bits(s.Makespan())
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucket{makespan: s.Makespan()}
		ms.buckets[key] = b
		ms.insertKeySorted(key)
	}

	idx := sort.Search(len(b.items), func(i int) bool { return schedule.Less(s, b.items[i]) })
	b.items = append(b.items, nil)
	copy(b.items[idx+1:], b.items[idx:])
	b.items[idx] = s

	ms.size++
}

// insertKeySorted inserts key into ms.order, keeping it sorted ascending
// by the bucket's makespan value.
func (ms *SolutionMultiset) insertKeySorted(key uint64) {
	makespan := ms.buckets[key].makespan
	idx := sort.Search(len(ms.order), func(i int) bool {
		return ms.buckets[ms.order[i]].makespan >= makespan
	})
	ms.order = append(ms.order, 0)
	copy(ms.order[idx+1:], ms.order[idx:])
	ms.order[idx] = key
}

// Size returns the total number of Solutions held across all buckets.
func (ms *SolutionMultiset) Size() int { return ms.size }

// IterOrdered walks buckets in ascending makespan order, calling visit once
// per bucket with its makespan and its items (already ordered by
// schedule.Less). Stops early if visit returns false.
func (ms *SolutionMultiset) IterOrdered(visit func(makespan float64, items []*schedule.Solution) bool) {
	for _, key := range ms.order {
		b := ms.buckets[key]
		if !visit(b.makespan, b.items) {
			return
		}
	}
}

// Best returns the minimum-makespan Solution across the whole multiset, or
// nil if empty. Complexity: O(1) (the first bucket's first item, by
// construction).
func (ms *SolutionMultiset) Best() *schedule.Solution {
	if len(ms.order) == 0 {
		return nil
	}

	return ms.buckets[ms.order[0]].items[0]
}
