package mces_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mces/core"
	"github.com/katalvlaran/mces/mces"
)

// mustGraph builds a validated graph or fails the test.
func mustGraph(t *testing.T, nodes []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, core.Edge{U: p[0], V: p[1]})
	}
	g, err := core.NewGraph(nodes, edges)
	if err != nil {
		t.Fatalf("NewGraph(%v): %v", nodes, err)
	}

	return g
}

// pathGraph is G1 of the canonical scenario: path 1-2-3.
func pathGraph(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"1", "2", "3"}, [2]string{"1", "2"}, [2]string{"2", "3"})
}

// triangleGraph is G2 of the canonical scenario: triangle a-b-c.
func triangleGraph(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"a", "b", "c"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
}

// assertValidResult checks the invariants every solver must uphold: the
// mapping is injective over V1 into V2 and the preserved set is exactly
// edge-consistent with it.
func assertValidResult(t *testing.T, g1, g2 *core.Graph, res mces.Result) {
	t.Helper()
	seen := make(map[string]string, len(res.Mapping))
	for u, v := range res.Mapping {
		if !g1.HasNode(u) || !g2.HasNode(v) {
			t.Errorf("mapping pair %s->%s leaves the node sets", u, v)
		}
		if prev, dup := seen[v]; dup {
			t.Errorf("mapping not injective: %s and %s both -> %s", prev, u, v)
		}
		seen[v] = u
	}
	for _, pe := range res.PreservedEdges {
		if !g1.HasEdge(pe[0], pe[1]) {
			t.Errorf("preserved pair %v not an edge of G1", pe)
		}
		mu, okU := res.Mapping[pe[0]]
		mv, okV := res.Mapping[pe[1]]
		if !okU || !okV || !g2.HasEdge(mu, mv) {
			t.Errorf("preserved pair %v not edge-consistent with the mapping", pe)
		}
	}
}

// TestSolve_StructuralRejection verifies the |V1|>|V2| contract for every
// algorithm: a sentinel before any search work, never an empty answer.
func TestSolve_StructuralRejection(t *testing.T) {
	g1 := mustGraph(t, []string{"1", "2", "3"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "1"})
	g2 := mustGraph(t, []string{"a", "b"}, [2]string{"a", "b"})

	for _, algo := range mces.Algorithms() {
		if _, err := mces.Solve(g1, g2, mces.DefaultOptions(algo)); !errors.Is(err, mces.ErrPatternTooLarge) {
			t.Errorf("%s: want ErrPatternTooLarge, got %v", algo, err)
		}
	}
}

// TestSolve_InputErrors covers nil graphs, bad selectors, and bad options.
func TestSolve_InputErrors(t *testing.T) {
	g1 := pathGraph(t)
	g2 := triangleGraph(t)

	if _, err := mces.Solve(nil, g2, mces.DefaultOptions(mces.Exhaustive)); !errors.Is(err, mces.ErrNilGraph) {
		t.Errorf("nil g1: want ErrNilGraph, got %v", err)
	}
	if _, err := mces.Solve(g1, nil, mces.DefaultOptions(mces.Exhaustive)); !errors.Is(err, mces.ErrNilGraph) {
		t.Errorf("nil g2: want ErrNilGraph, got %v", err)
	}
	if _, err := mces.Solve(g1, g2, mces.Options{Algo: 0}); !errors.Is(err, mces.ErrUnsupportedAlgorithm) {
		t.Errorf("zero algo: want ErrUnsupportedAlgorithm, got %v", err)
	}

	bad := mces.DefaultOptions(mces.GreedyPath)
	bad.MaxPathLen = 0
	if _, err := mces.Solve(g1, g2, bad); !errors.Is(err, mces.ErrOptionViolation) {
		t.Errorf("MaxPathLen=0: want ErrOptionViolation, got %v", err)
	}

	bad = mces.DefaultOptions(mces.SimulatedAnnealing)
	bad.CoolingRate = 1.0
	if _, err := mces.Solve(g1, g2, bad); !errors.Is(err, mces.ErrOptionViolation) {
		t.Errorf("CoolingRate=1: want ErrOptionViolation, got %v", err)
	}
}

// TestSolve_PathIntoTriangle runs the canonical scenario: both exact solvers,
// the connected solver, and greedy (L>=2) must preserve both path edges.
func TestSolve_PathIntoTriangle(t *testing.T) {
	g1 := pathGraph(t)
	g2 := triangleGraph(t)

	for _, algo := range []mces.Algorithm{
		mces.Exhaustive, mces.Backtracking, mces.ConnectedBacktracking, mces.GreedyPath,
	} {
		res, err := mces.Solve(g1, g2, mces.DefaultOptions(algo))
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		assertValidResult(t, g1, g2, res)
		if got := len(res.PreservedEdges); got != 2 {
			t.Errorf("%s: preserved %d edges; want 2", algo, got)
		}
	}
}

// TestSolve_ExactCrossCheck verifies that the exhaustive and the pruned
// solver agree on the optimal preserved count for a spread of small inputs
// (their mappings may differ only when multiple optima exist).
func TestSolve_ExactCrossCheck(t *testing.T) {
	cases := []struct {
		name   string
		g1, g2 *core.Graph
	}{
		{"path3 into triangle", pathGraph(t), triangleGraph(t)},
		{"square into K4 minus edge",
			mustGraph(t, []string{"1", "2", "3", "4"},
				[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "1"}),
			mustGraph(t, []string{"a", "b", "c", "d"},
				[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"},
				[2]string{"d", "a"}, [2]string{"a", "c"})},
		{"star into path",
			mustGraph(t, []string{"1", "2", "3", "4"},
				[2]string{"1", "2"}, [2]string{"1", "3"}, [2]string{"1", "4"}),
			mustGraph(t, []string{"a", "b", "c", "d"},
				[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})},
		{"two disjoint edges into path",
			mustGraph(t, []string{"1", "2", "3", "4"},
				[2]string{"1", "2"}, [2]string{"3", "4"}),
			mustGraph(t, []string{"a", "b", "c", "d"},
				[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ex, err := mces.Solve(tc.g1, tc.g2, mces.DefaultOptions(mces.Exhaustive))
			if err != nil {
				t.Fatalf("exhaustive: %v", err)
			}
			bt, err := mces.Solve(tc.g1, tc.g2, mces.DefaultOptions(mces.Backtracking))
			if err != nil {
				t.Fatalf("backtracking: %v", err)
			}
			assertValidResult(t, tc.g1, tc.g2, ex)
			assertValidResult(t, tc.g1, tc.g2, bt)
			if len(ex.PreservedEdges) != len(bt.PreservedEdges) {
				t.Errorf("optimal counts disagree: exhaustive=%d backtracking=%d",
					len(ex.PreservedEdges), len(bt.PreservedEdges))
			}
			if !ex.Stats.SolutionOptimality || !bt.Stats.SolutionOptimality {
				t.Error("exact solvers must certify optimality on completion")
			}
		})
	}
}

// TestSolve_ConnectedRequirement: with two disjoint preservable edges, the
// unconstrained optimum (2, disconnected) must be rejected by the connected
// solver in favor of the best connected answer (1 edge).
func TestSolve_ConnectedRequirement(t *testing.T) {
	g1 := mustGraph(t, []string{"1", "2", "3", "4"},
		[2]string{"1", "2"}, [2]string{"3", "4"})
	g2 := mustGraph(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"c", "d"})

	plain, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.Backtracking))
	if err != nil {
		t.Fatalf("backtracking: %v", err)
	}
	if len(plain.PreservedEdges) != 2 {
		t.Fatalf("unconstrained optimum = %d; want 2", len(plain.PreservedEdges))
	}

	conn, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.ConnectedBacktracking))
	if err != nil {
		t.Fatalf("connected: %v", err)
	}
	assertValidResult(t, g1, g2, conn)
	if len(conn.PreservedEdges) != 1 {
		t.Errorf("connected optimum = %d; want 1", len(conn.PreservedEdges))
	}
}

// TestSolve_ConnectedImpossible: when no common edge exists at all, the
// connected solver returns an empty preserved set, never a disconnected one.
func TestSolve_ConnectedImpossible(t *testing.T) {
	g1 := mustGraph(t, []string{"1", "2"}, [2]string{"1", "2"})
	g2 := mustGraph(t, []string{"a", "b"}) // no edges

	res, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.ConnectedBacktracking))
	if err != nil {
		t.Fatalf("connected: %v", err)
	}
	if len(res.PreservedEdges) != 0 || len(res.Mapping) != 0 {
		t.Errorf("want empty result, got %+v", res)
	}
	if !res.Stats.SolutionOptimality {
		t.Error("a completed connected search is still a certified answer")
	}
}

// TestSolve_DeterministicIdempotence: the deterministic solvers return
// identical mappings and preserved sets on repeated identical input.
func TestSolve_DeterministicIdempotence(t *testing.T) {
	g1 := pathGraph(t)
	g2 := triangleGraph(t)

	for _, algo := range []mces.Algorithm{
		mces.Exhaustive, mces.Backtracking, mces.ConnectedBacktracking, mces.GreedyPath,
	} {
		a, err := mces.Solve(g1, g2, mces.DefaultOptions(algo))
		if err != nil {
			t.Fatalf("%s first run: %v", algo, err)
		}
		b, err := mces.Solve(g1, g2, mces.DefaultOptions(algo))
		if err != nil {
			t.Fatalf("%s second run: %v", algo, err)
		}
		if !reflect.DeepEqual(a.Mapping, b.Mapping) || !reflect.DeepEqual(a.PreservedEdges, b.PreservedEdges) {
			t.Errorf("%s is not idempotent on identical input", algo)
		}
	}
}

// TestSolve_StatsContract spot-checks the uniform statistics record.
func TestSolve_StatsContract(t *testing.T) {
	g1 := pathGraph(t)
	g2 := triangleGraph(t)

	res, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.Exhaustive))
	if err != nil {
		t.Fatal(err)
	}
	// 3 nodes into 3 targets: 3! complete mappings, all scored, none pruned.
	if res.Stats.MappingsExplored != 6 {
		t.Errorf("MappingsExplored = %d; want 6", res.Stats.MappingsExplored)
	}
	if res.Stats.PrunedBranches != 0 {
		t.Errorf("exhaustive must never prune; got %d", res.Stats.PrunedBranches)
	}
	if res.Stats.SearchSpaceSize != 9 {
		t.Errorf("SearchSpaceSize = %d; want 9", res.Stats.SearchSpaceSize)
	}
	if res.Stats.TimeMS < 0 {
		t.Errorf("TimeMS = %f; want >= 0", res.Stats.TimeMS)
	}

	bt, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.Backtracking))
	if err != nil {
		t.Fatal(err)
	}
	if bt.Stats.RecursiveCalls == 0 {
		t.Error("backtracking must count recursive calls")
	}
}

// TestParseAlgorithm round-trips every identifier and rejects unknowns.
func TestParseAlgorithm(t *testing.T) {
	for _, algo := range mces.Algorithms() {
		parsed, err := mces.ParseAlgorithm(algo.String())
		if err != nil || parsed != algo {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", algo.String(), parsed, err, algo)
		}
	}
	if _, err := mces.ParseAlgorithm("nope"); !errors.Is(err, mces.ErrUnsupportedAlgorithm) {
		t.Errorf("unknown id: want ErrUnsupportedAlgorithm, got %v", err)
	}
}
