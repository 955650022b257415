// Package mces - simulated annealing solver.
//
// Rationale (succinct):
//  1. State: a total injective alignment of V1 into V2, represented as a
//     target-per-pattern-index slice (swaps are O(1), scoring is O(|E1|)).
//  2. Move: swap the images of two randomly chosen pattern vertices, then
//     (optionally) refine with greedy single-reassignment hill climbing over
//     the unused targets before scoring.
//  3. Acceptance: Metropolis - improvements always, deteriorations with
//     probability exp(delta/temperature), so early high-temperature phases
//     can escape local optima.
//  4. Schedule: geometric cooling (temperature *= CoolingRate) until the
//     temperature threshold, optionally bounded by MaxIterations.
//  5. The best alignment ever accepted is returned, not the final one.
//
// Determinism: the random stream is fully determined by Options.Seed
// (seed==0 selects the fixed package default), so repeated runs with equal
// options reproduce exactly. No optimality guarantee: SolutionOptimality is
// always false.
//
// Complexity: O(iterations * |V1| * |V2| * |E1|) with local search enabled,
// O(iterations * |E1|) without.
package mces

import (
	"math"

	"github.com/katalvlaran/mces/core"
)

// annealEngine holds the state of one annealing run.
type annealEngine struct {
	g1      *core.Graph
	g2      *core.Graph
	opts    Options
	nodes1  []string
	targets []string
	index1  map[string]int
	rec     *recorder
}

// solveAnnealing is the entry point wired by the dispatcher.
func solveAnnealing(g1, g2 *core.Graph, opts Options) (Result, error) {
	e := &annealEngine{
		g1:      g1,
		g2:      g2,
		opts:    opts,
		nodes1:  g1.Nodes(),
		targets: g2.Nodes(),
		index1:  make(map[string]int, g1.NodeCount()),
		rec:     newRecorder(),
	}
	for i, id := range e.nodes1 {
		e.index1[id] = i
	}

	rng := rngFromSeed(opts.Seed)
	n1 := len(e.nodes1)

	// Random initial injective alignment: shuffle the target pool and take a
	// prefix of size |V1|.
	pool := append([]string(nil), e.targets...)
	shuffleStringsInPlace(pool, rng)
	current := append([]string(nil), pool[:n1]...)

	var (
		curScore  = e.score(current)
		best      = append([]string(nil), current...)
		bestScore = curScore
		temp      = opts.InitialTemperature
		iter      int
	)
	for temp > minTemperature {
		if opts.MaxIterations > 0 && iter >= opts.MaxIterations {
			break
		}
		iter++
		e.rec.mappingsExplored++

		// Perturb: swap two images (needs at least two mapped vertices).
		candidate := append([]string(nil), current...)
		if n1 >= 2 {
			i, j := rng.Intn(n1), rng.Intn(n1)
			for j == i {
				j = rng.Intn(n1)
			}
			candidate[i], candidate[j] = candidate[j], candidate[i]
		}
		if opts.LocalSearch {
			e.refine(candidate)
		}
		candScore := e.score(candidate)

		// Metropolis criterion.
		delta := candScore - curScore
		if delta >= 0 || rng.Float64() < math.Exp(float64(delta)/temp) {
			current, curScore = candidate, candScore
			if curScore > bestScore {
				bestScore = curScore
				best = append(best[:0], current...)
			}
		}

		temp *= opts.CoolingRate
	}

	m := core.NewMapping(n1)
	for i, v := range best {
		_ = m.Extend(e.nodes1[i], v) // alignment is injective by construction
	}
	st := e.rec.finish(g1, g2, false) // stochastic heuristic: never certified

	return newResult(g1, g2, m, st), nil
}

// score counts preserved edges under a total alignment.
//
// Complexity: O(|E1|) expected.
func (e *annealEngine) score(assign []string) int {
	var n int
	for _, edge := range e.g1.Edges() {
		if e.g2.HasEdge(assign[e.index1[edge.U]], assign[e.index1[edge.V]]) {
			n++
		}
	}

	return n
}

// refine hill-climbs the alignment in place: for each pattern vertex in
// canonical order, greedily reassign it to the unused target that maximizes
// the score, keeping the current image on ties.
//
// Complexity: O(|V1| * |V2| * |E1|) expected.
func (e *annealEngine) refine(assign []string) {
	used := make(map[string]bool, len(assign))
	for _, v := range assign {
		used[v] = true
	}

	var (
		i         int
		orig      string
		bestT     string
		bestScore int
		s         int
	)
	for i = range assign {
		orig = assign[i]
		bestT = orig
		bestScore = e.score(assign)
		for _, t := range e.targets {
			if used[t] {
				continue
			}
			assign[i] = t
			if s = e.score(assign); s > bestScore {
				bestT, bestScore = t, s
			}
		}
		assign[i] = bestT
		if bestT != orig {
			delete(used, orig)
			used[bestT] = true
		}
	}
}
