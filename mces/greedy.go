// Package mces - greedy path-extension heuristic.
//
// Rationale (succinct):
//  1. Round-based construction, no backtracking: each round enumerates simple
//     paths of at most MaxPathLen vertices starting at every unmapped G1
//     vertex, assigns the path's unmapped vertices to available G2 targets,
//     and scores each candidate assignment by the edges it newly preserves
//     against the mapping built so far.
//  2. The single best assignment of the round is applied when its gain is
//     strictly positive; otherwise the heuristic terminates with whatever
//     mapping exists (remaining G1 vertices stay unmapped).
//  3. Determinism: paths, targets, and assignments are enumerated in the
//     canonical core order, and equal-gain candidates lose to the first one
//     found. Same input and options => same result.
//  4. AssignmentCap bounds the k-permutations scored per path, keeping dense
//     rounds polynomial at the cost of (heuristic) completeness.
//
// No optimality guarantee: SolutionOptimality is always false.
//
// Complexity: per round O(paths * assignments * |E1|) with both factors
// capped; rounds <= |V1| since every applied move maps >= 1 new vertex.
package mces

import "github.com/katalvlaran/mces/core"

// greedyEngine holds the round state for one greedy solve.
type greedyEngine struct {
	g1   *core.Graph
	g2   *core.Graph
	opts Options

	mapping   *core.Mapping
	targets   []string // V2 in canonical order
	usedTgt   []bool
	availLeft int

	// Best candidate of the current round.
	bestGain int
	bestExt  map[string]string

	// Scratch assignment being scored.
	ext    map[string]string
	scored int // assignments scored for the current path (cap accounting)
	rec    *recorder
}

// solveGreedyPath is the entry point wired by the dispatcher.
func solveGreedyPath(g1, g2 *core.Graph, opts Options) (Result, error) {
	e := &greedyEngine{
		g1:        g1,
		g2:        g2,
		opts:      opts,
		mapping:   core.NewMapping(g1.NodeCount()),
		targets:   g2.Nodes(),
		usedTgt:   make([]bool, g2.NodeCount()),
		availLeft: g2.NodeCount(),
		ext:       make(map[string]string, opts.MaxPathLen),
		rec:       newRecorder(),
	}

	for e.round() {
	}

	st := e.rec.finish(g1, g2, false) // constructive heuristic: never certified

	return newResult(g1, g2, e.mapping, st), nil
}

// round runs one improvement round; it reports whether a move was applied.
func (e *greedyEngine) round() bool {
	e.bestGain = 0
	e.bestExt = nil

	moved := false
	for _, u := range e.g1.Nodes() {
		if _, ok := e.mapping.Image(u); ok {
			continue
		}
		moved = true
		e.walkPaths([]string{u})
	}
	// All of V1 mapped: nothing left to extend.
	if !moved {
		return false
	}
	// No strictly improving move: terminate with the mapping built so far.
	if e.bestGain <= 0 {
		return false
	}

	for u, v := range e.bestExt {
		_ = e.mapping.Extend(u, v) // candidates are built injective and fresh
		e.takeTarget(v)
	}

	return true
}

// walkPaths enumerates simple paths from path[0] in canonical neighbor order,
// scoring the assignments of every prefix as it is produced.
func (e *greedyEngine) walkPaths(path []string) {
	e.rec.recursiveCalls++

	e.scorePath(path)
	if len(path) == e.opts.MaxPathLen {
		return
	}

	last := path[len(path)-1]
	nbrs, err := e.g1.Neighbors(last)
	if err != nil {
		return
	}
	for _, nbr := range nbrs {
		if containsID(path, nbr) {
			continue
		}
		e.walkPaths(append(path, nbr))
	}
}

// scorePath enumerates assignments of the path's unmapped vertices to
// available targets (canonical order, capped) and tracks the round best.
func (e *greedyEngine) scorePath(path []string) {
	// Unmapped vertices of the path, in path order.
	free := make([]string, 0, len(path))
	for _, u := range path {
		if _, ok := e.mapping.Image(u); !ok {
			free = append(free, u)
		}
	}
	if len(free) == 0 || len(free) > e.availLeft {
		return
	}

	e.scored = 0
	e.assign(free, 0)
}

// assign recursively binds free[pos:] to unused targets; leaves are scored.
func (e *greedyEngine) assign(free []string, pos int) {
	if e.scored >= e.opts.AssignmentCap {
		return
	}
	if pos == len(free) {
		e.scored++
		e.rec.mappingsExplored++
		if gain := e.extensionGain(); gain > e.bestGain {
			e.bestGain = gain
			e.bestExt = copyExt(e.ext)
		}

		return
	}

	u := free[pos]
	var ti int
	for ti = range e.targets {
		if e.usedTgt[ti] || extUses(e.ext, e.targets[ti]) {
			continue
		}
		e.ext[u] = e.targets[ti]
		e.assign(free, pos+1)
		delete(e.ext, u)
		if e.scored >= e.opts.AssignmentCap {
			return
		}
	}
}

// extensionGain counts G1 edges newly preserved by the scratch extension:
// both endpoints have images under mapping+ext, at least one endpoint is in
// ext (so the edge was not already preserved), and the images are adjacent.
//
// Complexity: O(|E1|) expected.
func (e *greedyEngine) extensionGain() int {
	var (
		gain   int
		imgU   string
		imgV   string
		inExtU bool
		inExtV bool
		ok     bool
	)
	for _, edge := range e.g1.Edges() {
		imgU, inExtU = e.ext[edge.U]
		if !inExtU {
			if imgU, ok = e.mapping.Image(edge.U); !ok {
				continue
			}
		}
		imgV, inExtV = e.ext[edge.V]
		if !inExtV {
			if imgV, ok = e.mapping.Image(edge.V); !ok {
				continue
			}
		}
		if !inExtU && !inExtV {
			continue // already counted by a previous round
		}
		if e.g2.HasEdge(imgU, imgV) {
			gain++
		}
	}

	return gain
}

// takeTarget marks target v as consumed.
func (e *greedyEngine) takeTarget(v string) {
	for ti := range e.targets {
		if e.targets[ti] == v {
			e.usedTgt[ti] = true
			e.availLeft--

			return
		}
	}
}

// containsID reports membership of id in a short path slice.
func containsID(path []string, id string) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}

	return false
}

// extUses reports whether target v is already bound by the extension.
func extUses(ext map[string]string, v string) bool {
	for _, t := range ext {
		if t == v {
			return true
		}
	}

	return false
}

// copyExt snapshots the scratch extension.
func copyExt(ext map[string]string) map[string]string {
	out := make(map[string]string, len(ext))
	for k, v := range ext {
		out[k] = v
	}

	return out
}
