// Package mces - the statistics recorder attached to every invocation.
//
// One fixed record (see Stats in types.go) replaces the open-ended per-solver
// stat dictionaries a looser design would accumulate: solvers increment the
// counters they produce and leave the rest at zero.
package mces

import (
	"runtime"
	"time"

	"github.com/katalvlaran/mces/core"
)

const bytesPerMiB = 1024 * 1024

// recorder accumulates counters during one solve call. It is owned by the
// top-level solver function and threaded by pointer through the search; it is
// never a process-wide singleton.
type recorder struct {
	start            time.Time
	mappingsExplored int64
	recursiveCalls   int64
	prunedBranches   int64
}

// newRecorder starts the wall clock.
func newRecorder() *recorder {
	return &recorder{start: time.Now()}
}

// finish freezes the record. optimal reports whether the solver terminated
// with a certificate of global optimality.
//
// Complexity: O(1) plus the runtime.ReadMemStats stop-the-world read, which
// is negligible next to any non-trivial search.
func (r *recorder) finish(g1, g2 *core.Graph, optimal bool) Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Stats{
		TimeMS:             float64(time.Since(r.start)) / float64(time.Millisecond),
		MappingsExplored:   r.mappingsExplored,
		RecursiveCalls:     r.recursiveCalls,
		PrunedBranches:     r.prunedBranches,
		SearchSpaceSize:    int64(g1.NodeCount()) * int64(g2.NodeCount()),
		MemoryUsageMB:      float64(mem.HeapAlloc) / bytesPerMiB,
		SolutionOptimality: optimal,
	}
}
