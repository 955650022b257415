// Package mces solves the Maximum Common (Connected) Edge Subgraph problem:
// given two undirected graphs G1 and G2, find an injective node mapping from
// V1 into V2 preserving as many G1 edges as possible, optionally requiring
// the preserved edge set to induce a single connected component.
//
// The package is a portfolio of six solvers behind one dispatcher:
//
//   - Exhaustive            - full permutation enumeration (optimal, tiny inputs).
//   - Backtracking          - DFS over partial mappings with an optimistic
//     upper bound (optimal, prunes aggressively).
//   - ConnectedBacktracking - the pruned search with a connectivity predicate
//     on leaf acceptance (optimal for MCCES).
//   - GreedyPath            - constructive path-extension heuristic (fast, no guarantee).
//   - ILP                   - 0/1 pseudo-Boolean encoding handed to an external
//     engine (optimal when the engine certifies it).
//   - SimulatedAnnealing    - Metropolis search with geometric cooling (no guarantee).
//
// All solvers share the Options/Result/Stats contract and the core graph
// model; none of them calls another. Every deterministic solver enumerates in
// the canonical node order of the core package and breaks ties first-found,
// so identical inputs yield identical results.
//
// Concurrency and cancellation: a solver invocation is a pure, sequential,
// CPU-bound computation with no cancellation awareness. Callers that need a
// wall-clock bound must enforce it externally (the bench package runs each
// timed invocation in a disposable child process); a terminated invocation
// yields no result. The single exception is the ILP component, which checks
// an optional soft deadline between engine rounds and then reports its
// incumbent with SolutionOptimality=false.
package mces
