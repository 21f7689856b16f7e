package container

import (
	"container/list"
	"errors"

	"github.com/go-jssp/sdst-solver/schedule"
)

// ErrInvalidCapacity is returned by NewTabuList when K <= 0.
var ErrInvalidCapacity = errors.New("container: tabu list capacity must be positive")

// TabuList is a bounded FIFO of recently visited Solutions: capacity K is
// fixed at construction; once full, each Add evicts the oldest entry.
// Contains is O(1) via a membership index keyed by schedule.Solution.Key
// (matrix identity).
type TabuList struct {
	capacity int
	entries  *list.List     // doubly linked FIFO of *schedule.Solution, front == oldest
	members  map[string]int // Key() -> reference count
}

// NewTabuList constructs an empty TabuList with capacity K, optionally
// seeded with an initial Solution (per the original search routine's
// convention of pre-loading the starting point so it is never immediately
// revisited).
func NewTabuList(capacity int, seed *schedule.Solution) (*TabuList, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	tl := &TabuList{
		capacity: capacity,
		entries:  list.New(),
		members:  make(map[string]int, capacity),
	}
	if seed != nil {
		tl.Add(seed)
	}

	return tl, nil
}

// Add inserts s, evicting the oldest entry (dequeue) if the list is already
// at capacity. Complexity: O(1).
func (tl *TabuList) Add(s *schedule.Solution) {
	if tl.entries.Len() >= tl.capacity {
		oldest := tl.entries.Front()
		evicted := oldest.Value.(*schedule.Solution)
		tl.entries.Remove(oldest)
		tl.decrementMember(evicted.Key())
	}

	tl.entries.PushBack(s)
	tl.members[s.Key()]++
}

// Contains reports whether a Solution with the same matrix identity as s is
// currently held. Complexity: O(1).
func (tl *TabuList) Contains(s *schedule.Solution) bool {
	return tl.members[s.Key()] > 0
}

// Len returns the number of entries currently held (<= capacity).
func (tl *TabuList) Len() int { return tl.entries.Len() }

func (tl *TabuList) decrementMember(key string) {
	tl.members[key]--
	if tl.members[key] <= 0 {
		delete(tl.members, key)
	}
}
