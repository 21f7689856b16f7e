// Package instance holds the immutable Problem Instance for the
// sequence-dependent setup times job-shop scheduling problem (SDST-JSSP):
// machine speeds, the per-task compatible-machine/workload table, and the
// sequence-dependent setup table.
//
// An Instance is built once by the (external, out-of-scope) data loader and
// shared by reference across every search driver and worker for the
// lifetime of a run. Nothing in this package mutates an Instance after
// construction — every accessor returns a read-only view or a copy of a
// scalar.
package instance
