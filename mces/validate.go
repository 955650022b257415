// Package mces - staged validation shared by the dispatcher.
//
// Design principles (as everywhere in the suite):
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors.
//   - Structural rejection happens before any search work: |V1| > |V2| is an
//     input error, "no common edge found" is not.
package mces

import "github.com/katalvlaran/mces/core"

// validate verifies graphs and Options for the selected algorithm.
//
// Stages:
//  1. Graph shape: both non-nil, |V1| <= |V2|.
//  2. Algorithm selector known.
//  3. Algorithm-specific parameter domains.
//
// Complexity: O(1).
func validate(g1, g2 *core.Graph, opts Options) error {
	// Stage 1: graph shape.
	if g1 == nil || g2 == nil {
		return ErrNilGraph
	}
	if g1.NodeCount() > g2.NodeCount() {
		return ErrPatternTooLarge
	}

	// Stage 2: selector.
	switch opts.Algo {
	case Exhaustive, Backtracking, ConnectedBacktracking, GreedyPath, ILP, SimulatedAnnealing:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	// Stage 3: parameter domains (only for the algorithms that read them).
	switch opts.Algo {
	case GreedyPath:
		if opts.MaxPathLen < 1 || opts.AssignmentCap < 1 {
			return ErrOptionViolation
		}
	case SimulatedAnnealing:
		if opts.InitialTemperature <= 0 {
			return ErrOptionViolation
		}
		if opts.CoolingRate <= 0 || opts.CoolingRate >= 1 {
			return ErrOptionViolation
		}
		if opts.MaxIterations < 0 {
			return ErrOptionViolation
		}
	case ILP:
		if opts.TimeLimit < 0 {
			return ErrOptionViolation
		}
	}

	return nil
}
