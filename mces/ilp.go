// Package mces - 0/1 integer programming solver backed by an external
// pseudo-Boolean engine (gophersat).
//
// Encoding (linear, no products):
//   - x[u,v]  = 1 iff pattern node u is assigned to target node v.
//   - z[e,f]  = 1 only if pattern edge e = {u1,u2} is preserved onto target
//     edge f = {v1,v2}. Linking inequalities:
//     x[u1,v1] + x[u1,v2] >= z[e,f]
//     x[u2,v1] + x[u2,v2] >= z[e,f]
//     Together with the assignment rows/columns (<= 1 each) these force, when
//     z[e,f]=1, that {u1,u2} maps onto {v1,v2} exactly - i.e. e is preserved.
//   - Objective: maximize sum(z). The engine is a decision solver, so the
//     maximum is reached by iterative strengthening: solve, decode the
//     incumbent, demand sum(z) >= incumbent+1, repeat until UNSAT. UNSAT
//     certifies optimality of the incumbent.
//
// Responsibility split: this file owns the encoding and the decoding only;
// solving is delegated to the engine. The decoded mapping is re-scored with
// core.CountPreserved - the preserved set is never trusted from z values.
//
// Termination taxonomy (tagged, never exceptions):
//   - UNSAT on the strengthened bound  -> optimal incumbent, optimality=true.
//   - soft deadline between rounds     -> incumbent, optimality=false.
//   - engine Indet                     -> incumbent, optimality=false.
//
// Complexity: |V1||V2| + |E1||E2| variables; NP-hard in general - the engine
// carries the exponential part.
package mces

import (
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/mces/core"
)

// ilpModel holds the variable numbering and the immutable constraint base.
type ilpModel struct {
	g1 *core.Graph
	g2 *core.Graph

	nodes1 []string
	nodes2 []string
	index2 map[string]int

	xCount int             // |V1| * |V2|
	zLits  []int           // one positive literal per z variable
	ones   []int           // all-ones coefficient row for the objective bound
	base   []solver.PBConstr
}

// solveILP is the entry point wired by the dispatcher.
func solveILP(g1, g2 *core.Graph, opts Options) (Result, error) {
	rec := newRecorder()

	// Degenerate instances: nothing can be preserved, and that is a fully
	// determined optimal answer - the engine is not consulted at all.
	if g1.EdgeCount() == 0 || g2.EdgeCount() == 0 {
		return newResult(g1, g2, core.NewMapping(0), rec.finish(g1, g2, true)), nil
	}

	model := buildILPModel(g1, g2)

	var (
		best      = core.NewMapping(0)
		bestCount int
		deadline  time.Time
	)
	if opts.TimeLimit > 0 {
		deadline = rec.start.Add(opts.TimeLimit)
	}

	for {
		// Soft deadline between engine rounds: report the incumbent as
		// time-limited rather than aborting.
		if opts.TimeLimit > 0 && time.Now().After(deadline) {
			return newResult(g1, g2, best, rec.finish(g1, g2, false)), nil
		}

		rec.mappingsExplored++
		s := solver.New(solver.ParsePBConstrs(model.bound(bestCount + 1)))
		switch s.Solve() {
		case solver.Sat:
			m := model.decode(s.Model())
			count := core.CountPreserved(g1, g2, m)
			if count <= bestCount {
				// The engine claimed sum(z) >= bestCount+1 but the decoded
				// assignment does not realize it: encoding/engine mismatch.
				return Result{}, ErrEngineFailure
			}
			best, bestCount = m, count
		case solver.Unsat:
			// No assignment beats the incumbent: certified global optimum.
			return newResult(g1, g2, best, rec.finish(g1, g2, true)), nil
		default:
			// Indeterminate termination inside the engine: keep the
			// incumbent, drop the optimality claim.
			return newResult(g1, g2, best, rec.finish(g1, g2, false)), nil
		}
	}
}

// buildILPModel numbers the variables and assembles the constraint base.
//
// Variable numbering (1-based, engine convention):
//   - x[i,j]  = i*|V2| + j + 1 for nodes1[i] -> nodes2[j].
//   - z[e,f]  = xCount + e*|E2| + f + 1.
//
// Complexity: O(|V1||V2| + |E1||E2|).
func buildILPModel(g1, g2 *core.Graph) *ilpModel {
	m := &ilpModel{
		g1:     g1,
		g2:     g2,
		nodes1: g1.Nodes(),
		nodes2: g2.Nodes(),
		index2: make(map[string]int, g2.NodeCount()),
	}
	for j, id := range m.nodes2 {
		m.index2[id] = j
	}
	m.xCount = len(m.nodes1) * len(m.nodes2)

	index1 := make(map[string]int, len(m.nodes1))
	for i, id := range m.nodes1 {
		index1[id] = i
	}

	// Assignment rows: each pattern node takes at most one target.
	var i, j int
	for i = range m.nodes1 {
		row := make([]int, 0, len(m.nodes2))
		for j = range m.nodes2 {
			row = append(row, m.xVar(i, j))
		}
		m.base = append(m.base, solver.AtMost(row, 1))
	}

	// Assignment columns: each target receives at most one pattern node.
	for j = range m.nodes2 {
		col := make([]int, 0, len(m.nodes1))
		for i = range m.nodes1 {
			col = append(col, m.xVar(i, j))
		}
		m.base = append(m.base, solver.AtMost(col, 1))
	}

	// Edge-preservation links.
	var (
		edges2 = g2.Edges()
		zID    int
	)
	for ei, e := range g1.Edges() {
		u1, u2 := index1[e.U], index1[e.V]
		for fi, f := range edges2 {
			v1, v2 := m.index2[f.U], m.index2[f.V]
			zID = m.xCount + ei*len(edges2) + fi + 1
			m.zLits = append(m.zLits, zID)
			m.base = append(m.base,
				solver.AtLeast([]int{m.xVar(u1, v1), m.xVar(u1, v2), -zID}, 1),
				solver.AtLeast([]int{m.xVar(u2, v1), m.xVar(u2, v2), -zID}, 1),
			)
		}
	}
	m.ones = make([]int, len(m.zLits))
	for k := range m.ones {
		m.ones[k] = 1
	}

	return m
}

// xVar returns the 1-based engine variable for nodes1[i] -> nodes2[j].
func (m *ilpModel) xVar(i, j int) int { return i*len(m.nodes2) + j + 1 }

// bound returns the constraint base plus the objective bound sum(z) >= k.
func (m *ilpModel) bound(k int) []solver.PBConstr {
	out := make([]solver.PBConstr, 0, len(m.base)+1)
	out = append(out, m.base...)
	out = append(out, solver.GtEq(m.zLits, m.ones, k))

	return out
}

// decode reads the assignment variables out of an engine model and rebuilds
// the injective mapping. z values are ignored on purpose; the preserved set
// is re-derived from the mapping by the caller.
func (m *ilpModel) decode(model []bool) *core.Mapping {
	out := core.NewMapping(len(m.nodes1))
	var i, j, v int
	for i = range m.nodes1 {
		for j = range m.nodes2 {
			v = m.xVar(i, j)
			if v-1 < len(model) && model[v-1] {
				_ = out.Extend(m.nodes1[i], m.nodes2[j]) // rows/cols enforce injectivity
			}
		}
	}

	return out
}
