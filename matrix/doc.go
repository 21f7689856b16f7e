// Package matrix provides a small, dense, bounds-checked 2-D float64 table:
// a cache-friendly, row-major store of any r×c shape, suitable for a
// sequence-dependent setup matrix (instance.Instance.SetupTime).
package matrix
