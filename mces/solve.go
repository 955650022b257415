// Package mces - unified dispatcher for the solver portfolio.
//
// Solve is the canonical entry point: it applies strict validation once and
// routes to the requested solver. Solvers never call each other; they share
// only the core model and the Stats schema, so the dispatcher is the single
// place where the invocation contract is enforced.
package mces

import "github.com/katalvlaran/mces/core"

// Solve runs the solver selected by opts.Algo on the pattern graph g1 and the
// target graph g2 and returns the mapping, the preserved edge set, and the
// statistics record.
//
// Contracts:
//   - g1, g2 non-nil, |V1| <= |V2| (ErrPatternTooLarge otherwise - a solver
//     must reject, not silently return an empty answer).
//   - An empty preserved set with SolutionOptimality=true is a valid, fully
//     determined answer, not an error.
//   - Graphs are read-only for the duration of the call and may be shared
//     across concurrent calls.
//
// Errors: strict sentinels from types.go only.
//
// Complexity: validation O(1); the rest per algorithm (see each solver file).
func Solve(g1, g2 *core.Graph, opts Options) (Result, error) {
	if err := validate(g1, g2, opts); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case Exhaustive:
		return solveExhaustive(g1, g2)
	case Backtracking:
		return solveBacktracking(g1, g2, false)
	case ConnectedBacktracking:
		return solveBacktracking(g1, g2, true)
	case GreedyPath:
		return solveGreedyPath(g1, g2, opts)
	case ILP:
		return solveILP(g1, g2, opts)
	case SimulatedAnnealing:
		return solveAnnealing(g1, g2, opts)
	default:
		// Unreachable after validate; kept for exhaustive switch clarity.
		return Result{}, ErrUnsupportedAlgorithm
	}
}
