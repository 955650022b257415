// SPDX-License-Identifier: MIT
//
// Package generate builds random test graphs for the solver suite.
//
// The single constructor, Connected, samples a connected undirected graph
// with an exact vertex and edge count: a uniformly attached spanning tree
// guarantees connectivity, then extra edges are drawn by rejection sampling
// until the budget is met.
//
// Contract (shared with the rest of the suite):
//   - Node IDs are decimal strings "1".."n", so the canonical shortlex order
//     of core matches numeric order.
//   - Determinism: a fixed seed reproduces the graph exactly; seed 0 selects
//     a fixed package default.
//   - Only sentinel errors; never panics at runtime.
package generate
