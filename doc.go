// Package mces computes Maximum Common Edge Subgraphs — find the largest
// set of edges two graphs share under an injective node mapping, exactly or
// approximately, and benchmark the solvers against each other.
//
// 🚀 What is mces?
//
//	A solver portfolio plus the plumbing around it:
//		• Exact search: exhaustive enumeration, pruned backtracking,
//		  connected-variant backtracking
//		• Heuristics: greedy path extension, simulated annealing
//		• 0/1 programming: pseudo-Boolean encoding solved by gophersat
//		• Generator: seeded random connected graphs
//		• HTTP API: one endpoint per solver, Prometheus metrics
//		• Benchmark driver: process-isolated timed runs, CSV/JSONL output
//
// ✨ Why these six solvers?
//
//   - Exact answers certify optimality but explode combinatorially
//   - Heuristics scale but only report what they found
//   - Running all of them on the same instances is the point: the benchmark
//     grid shows where each one stops being the right tool
//
// Everything is organized under focused subpackages:
//
//	core/     — graph model, injective mapping, wire codec
//	mces/     — the six solvers behind one Solve call
//	generate/ — random connected graph construction
//	server/   — gin HTTP API
//	bench/    — experiment grid, worker pool, persistence
//	cmd/mces/ — the CLI binary (serve | solve | generate | bench)
//
// Quick ASCII example:
//
//	  1───2───3        a───b
//	                   │   │
//	                   c───d
//
//	mapping 1→a, 2→b, 3→d preserves both pattern edges.
//
//	go get github.com/katalvlaran/mces
package mces
