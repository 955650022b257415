// Package mces - pruned backtracking solver, plain and connected variants.
//
// Rationale (succinct):
//  1. Depth-first search builds the mapping vertex-by-vertex in the canonical
//     V1 order; at each depth it tries every unused V2 target in canonical
//     order. Fully deterministic branching.
//  2. Optimistic upper bound: preserved-so-far plus every G1 edge that still
//     has at least one unmapped endpoint. Any completion can preserve at most
//     that many edges, so pruning on bound <= best never discards a branch
//     that could beat the incumbent; termination therefore implies global
//     optimality.
//  3. Both counters feeding the bound are maintained incrementally: extending
//     by u->v closes exactly the edges from u to already-mapped neighbors
//     (O(deg(u))), and preserves the subset of those whose images are
//     adjacent in G2.
//  4. Connected variant: identical branching and bounding, plus a leaf
//     acceptance predicate requiring the preserved subgraph to be one
//     connected component (see connectivity.go). The bound stays the
//     unconstrained one - a valid upper bound on the connected optimum too,
//     merely looser, so correctness is unaffected and only pruning strength
//     is traded away.
//  5. Ties: first-found wins; incumbents are replaced on strict improvement
//     only, matching the exhaustive solver's policy for reproducibility.
//
// Complexity: worst case O(|V2|!/(|V2|-|V1|)! * |E1|); practical speed comes
// from pruning. Memory: O(|V1| + |V2|) search state.
package mces

import "github.com/katalvlaran/mces/core"

// btEngine holds all search data for one backtracking solve.
// A dedicated engine struct (not closures over package state) keeps the
// mutable incumbent owned by exactly one top-level call.
type btEngine struct {
	g1      *core.Graph
	g2      *core.Graph
	order   []string // V1 in canonical order
	targets []string // V2 in canonical order
	used    []bool

	mapping     *core.Mapping
	preserved   int // preserved edges under the current partial mapping
	fullyMapped int // G1 edges with both endpoints mapped
	e1Total     int

	requireConnected bool

	best      *core.Mapping
	bestCount int

	rec *recorder
}

// solveBacktracking is the entry point wired by the dispatcher for both the
// plain (connected=false) and the connected (connected=true) variants.
func solveBacktracking(g1, g2 *core.Graph, connected bool) (Result, error) {
	e := &btEngine{
		g1:               g1,
		g2:               g2,
		order:            g1.Nodes(),
		targets:          g2.Nodes(),
		used:             make([]bool, g2.NodeCount()),
		mapping:          core.NewMapping(g1.NodeCount()),
		e1Total:          g1.EdgeCount(),
		requireConnected: connected,
		bestCount:        -1,
		rec:              newRecorder(),
	}
	if connected {
		// A disconnected or empty preserved set is never accepted, so the
		// incumbent starts at "no result" rather than "first leaf".
		e.bestCount = 0
	}
	e.dfs(0)

	st := e.rec.finish(g1, g2, true)

	return newResult(g1, g2, e.best, st), nil
}

// dfs explores the subtree rooted at the partial mapping of length depth.
func (e *btEngine) dfs(depth int) {
	e.rec.recursiveCalls++

	if depth == len(e.order) {
		e.acceptLeaf()

		return
	}

	u := e.order[depth]
	var (
		ti     int
		v      string
		gain   int
		closed int
	)
	for ti = range e.targets {
		if e.used[ti] {
			continue
		}
		v = e.targets[ti]
		gain, closed = e.extendDelta(u, v)

		e.used[ti] = true
		_ = e.mapping.Extend(u, v) // cannot fail: both sides fresh
		e.preserved += gain
		e.fullyMapped += closed

		// Optimistic bound: every not-yet-fully-mapped edge may still be
		// preserved. Prune when even that cannot beat the incumbent.
		if e.preserved+(e.e1Total-e.fullyMapped) > e.bestCount {
			e.dfs(depth + 1)
		} else {
			e.rec.prunedBranches++
		}

		e.fullyMapped -= closed
		e.preserved -= gain
		e.mapping.Unset(u)
		e.used[ti] = false
	}
}

// extendDelta computes, without mutating state, how many G1 edges the
// extension u->v closes (both endpoints mapped) and how many of those are
// preserved (images adjacent in G2).
//
// Complexity: O(deg_g1(u)) expected.
func (e *btEngine) extendDelta(u, v string) (gain, closed int) {
	nbrs, err := e.g1.Neighbors(u)
	if err != nil {
		return 0, 0
	}
	for _, w := range nbrs {
		img, ok := e.mapping.Image(w)
		if !ok {
			continue
		}
		closed++
		if e.g2.HasEdge(v, img) {
			gain++
		}
	}

	return gain, closed
}

// acceptLeaf scores a complete mapping and promotes it to incumbent when it
// strictly improves - and, in the connected variant, only when the preserved
// subgraph forms a single component.
func (e *btEngine) acceptLeaf() {
	e.rec.mappingsExplored++

	if e.preserved <= e.bestCount {
		return
	}
	if e.requireConnected &&
		!preservedConnected(core.PreservedEdges(e.g1, e.g2, e.mapping)) {
		return
	}
	e.bestCount = e.preserved
	e.best = e.mapping.Clone()
}
