// Package mces - exhaustive enumeration solver (baseline of optimality).
//
// Rationale (succinct):
//  1. Enumerates every injective mapping of V1 into V2, i.e. all
//     |V2|!/(|V2|-|V1|)! k-permutations, in lexicographic order over the
//     canonical V2 index order. Fully deterministic.
//  2. Scores each complete mapping in O(|E1|). Never prunes.
//  3. Ties: the first mapping to reach the best count wins; later mappings
//     replace only on strict improvement, so results are stable under the
//     enumeration order.
//
// Complexity: O(|V2|!/(|V2|-|V1|)! * |E1|) time, O(|V1|) extra space.
// Intended only for |V1| <= 8-10; the benchmark driver bounds it externally.
package mces

import "github.com/katalvlaran/mces/core"

// exhaustiveEngine holds the enumeration state for one solve call.
type exhaustiveEngine struct {
	g1      *core.Graph
	g2      *core.Graph
	order   []string // V1 in canonical order
	targets []string // V2 in canonical order
	used    []bool   // targets currently taken by the partial permutation
	mapping *core.Mapping

	best      *core.Mapping
	bestCount int

	rec *recorder
}

// solveExhaustive is the entry point wired by the dispatcher.
func solveExhaustive(g1, g2 *core.Graph) (Result, error) {
	e := &exhaustiveEngine{
		g1:        g1,
		g2:        g2,
		order:     g1.Nodes(),
		targets:   g2.Nodes(),
		used:      make([]bool, g2.NodeCount()),
		mapping:   core.NewMapping(g1.NodeCount()),
		bestCount: -1,
		rec:       newRecorder(),
	}
	e.enumerate(0)

	// Exhaustive by construction: optimal whenever it runs to completion.
	st := e.rec.finish(g1, g2, true)

	return newResult(g1, g2, e.best, st), nil
}

// enumerate extends the permutation at position depth with every unused
// target in canonical order, scoring complete mappings at the leaves.
func (e *exhaustiveEngine) enumerate(depth int) {
	if depth == len(e.order) {
		e.score()

		return
	}

	u := e.order[depth]
	var ti int
	for ti = range e.targets {
		if e.used[ti] {
			continue
		}
		e.used[ti] = true
		_ = e.mapping.Extend(u, e.targets[ti]) // cannot fail: both sides fresh
		e.enumerate(depth + 1)
		e.mapping.Unset(u)
		e.used[ti] = false
	}
}

// score evaluates the complete mapping and keeps it on strict improvement.
func (e *exhaustiveEngine) score() {
	e.rec.mappingsExplored++
	count := core.CountPreserved(e.g1, e.g2, e.mapping)
	if count > e.bestCount {
		e.bestCount = count
		e.best = e.mapping.Clone()
	}
}
