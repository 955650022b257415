// Package core defines the shared data model of the MCES suite: an immutable
// undirected simple Graph, the injective Mapping between two graphs, and the
// derivation of preserved edges under a mapping.
//
// Design contract (strict):
//   - A Graph is validated once, at construction, and never mutated afterwards.
//     Solvers may therefore share a Graph across invocations without locking.
//   - No self-loops, no duplicate edges, every edge endpoint must be a declared
//     node; violations are sentinel errors, never panics.
//   - All enumeration orders are canonical (shortlex over node IDs), so every
//     solver built on top of core is deterministic by construction.
//   - Edge endpoints are normalized (U < V in shortlex) so that an unordered
//     pair has exactly one representation and set membership is O(1).
//
// The wire shape {nodes:[{id}], edges:[{source,target}]} used by the HTTP API
// and the CLI is implemented in json.go and round-trips losslessly.
package core
