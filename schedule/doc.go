// Package schedule implements the Operation Matrix and Solution Value
// building blocks of the scheduler: the canonical row-based encoding of a
// candidate schedule, its feasibility invariants, and the single total
// order used to compare two Solution Values everywhere in the search
// (tabu-list lookups, GA selection tie-breaks, multiset bucket ordering).
package schedule
