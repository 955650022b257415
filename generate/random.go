// SPDX-License-Identifier: MIT
//
// random.go - the Connected(n, m, seed) constructor.
//
// Canonical model:
//   - Spanning tree first: vertex i (i >= 2) attaches to a uniformly chosen
//     earlier vertex, which yields exactly n-1 edges and connectivity.
//   - Extra edges by rejection sampling over unordered pairs until the edge
//     budget m is reached; self-loops and duplicates are re-drawn.
//
// Determinism:
//   - Stable vertex order: "1".."n" ascending.
//   - All randomness flows from one seeded source, so a fixed (n, m, seed)
//     triple reproduces the graph exactly.
//
// Complexity: O(n + m) expected; rejection sampling degrades only on
// near-complete budgets.

package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/mces/core"
)

// Sentinel errors for the generator contract.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("generate: too few vertices")

	// ErrEdgeBudget indicates m outside [n-1, n*(n-1)/2]: below the range no
	// connected simple graph exists, above it no simple graph at all.
	ErrEdgeBudget = errors.New("generate: edge budget out of range")
)

const (
	methodConnected = "Connected"
	minVertices     = 1

	// defaultSeed backs seed 0, mirroring the solver RNG convention.
	defaultSeed int64 = 1
)

// Connected samples a connected simple undirected graph with exactly n
// vertices and m edges. Seed 0 selects the fixed package default.
func Connected(n, m int, seed int64) (*core.Graph, error) {
	// Validate parameters early, zero side effects on invalid input.
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodConnected, n, minVertices, ErrTooFewVertices)
	}
	maxEdges := n * (n - 1) / 2
	if m < n-1 || m > maxEdges {
		return nil, fmt.Errorf("%s: m=%d not in [%d,%d]: %w",
			methodConnected, m, n-1, maxEdges, ErrEdgeBudget)
	}

	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// Vertices "1".."n" in ascending order.
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = strconv.Itoa(i + 1)
	}

	// Spanning tree: attach each vertex to a uniform earlier one.
	var (
		edges = make([]core.Edge, 0, m)
		seen  = make(map[core.Edge]struct{}, m)
		e     core.Edge
	)
	for i := 1; i < n; i++ {
		e = core.NewEdge(nodes[rng.Intn(i)], nodes[i])
		edges = append(edges, e)
		seen[e] = struct{}{}
	}

	// Extra edges by rejection sampling until the budget is met.
	var i, j int
	for len(edges) < m {
		i, j = rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		e = core.NewEdge(nodes[i], nodes[j])
		if _, dup := seen[e]; dup {
			continue
		}
		edges = append(edges, e)
		seen[e] = struct{}{}
	}

	g, err := core.NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: assemble: %w", methodConnected, err)
	}

	return g, nil
}
