// Package bench drives solver experiments over generated graph pairs.
//
// Experimental design: for every node count n in [NMin, NMax], for every
// edge budget derived from the multipliers (the spanning-tree minimum n-1 is
// always included), and for every repetition, one fresh connected pair is
// generated and every selected algorithm is run against it.
//
// Execution model: a bounded worker pool; each timed invocation re-executes
// this binary ("mces solve") as a child process fed the pair on stdin. A
// search that overruns the per-invocation timeout is killed with its whole
// process, so the solvers themselves stay cancellation-unaware. Rows for
// timed-out or failed invocations keep their identity columns and leave the
// metric columns empty.
//
// Determinism: one master seed per run; pair seeds are derived SplitMix64-
// style from (n, m, repetition), so the schedule of the pool never changes
// which graphs are solved.
package bench
