package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/mces/core"
)

// TestNewGraph_Rejections verifies every construction-time sentinel.
func TestNewGraph_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		nodes []string
		edges []core.Edge
		want  error
	}{
		{"empty node ID", []string{"1", ""}, nil, core.ErrEmptyNodeID},
		{"duplicate node", []string{"1", "2", "1"}, nil, core.ErrDuplicateNode},
		{"self-loop", []string{"1", "2"}, []core.Edge{{U: "1", V: "1"}}, core.ErrSelfLoop},
		{"duplicate edge", []string{"1", "2"},
			[]core.Edge{{U: "1", V: "2"}, {U: "2", V: "1"}}, core.ErrDuplicateEdge},
		{"unknown endpoint", []string{"1", "2"},
			[]core.Edge{{U: "1", V: "3"}}, core.ErrUnknownEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.NewGraph(tc.nodes, tc.edges); !errors.Is(err, tc.want) {
				t.Errorf("NewGraph: want %v, got %v", tc.want, err)
			}
		})
	}
}

// TestGraph_CanonicalOrder checks shortlex node order and normalized edges.
func TestGraph_CanonicalOrder(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"10", "2", "1"},
		[]core.Edge{{U: "10", V: "1"}, {U: "2", V: "1"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"1", "2", "10"}; !reflect.DeepEqual(g.Nodes(), want) {
		t.Errorf("Nodes = %v; want %v", g.Nodes(), want)
	}
	// Edges normalized U<V (shortlex) and canonically ordered.
	want := []core.Edge{{U: "1", V: "2"}, {U: "1", V: "10"}}
	if !reflect.DeepEqual(g.Edges(), want) {
		t.Errorf("Edges = %v; want %v", g.Edges(), want)
	}
}

// TestGraph_AdjacencyQueries covers HasEdge symmetry, Neighbors and Degree.
func TestGraph_AdjacencyQueries(t *testing.T) {
	g, err := core.NewGraph(
		[]string{"a", "b", "c", "d"},
		[]core.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasEdge("a", "b") || !g.HasEdge("b", "a") {
		t.Error("HasEdge must be symmetric for undirected edges")
	}
	if g.HasEdge("a", "c") {
		t.Error("HasEdge(a,c) = true; want false")
	}
	nbrs, err := g.Neighbors("b")
	if err != nil {
		t.Fatalf("Neighbors(b): %v", err)
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(b) = %v; want %v", nbrs, want)
	}
	if _, err = g.Neighbors("zz"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Neighbors(zz): want ErrNodeNotFound, got %v", err)
	}
	// Isolated node: empty adjacency, no error.
	nbrs, err = g.Neighbors("d")
	if err != nil || len(nbrs) != 0 {
		t.Errorf("Neighbors(d) = %v, %v; want empty, nil", nbrs, err)
	}
	if got, want := g.Degree("b"), 2; got != want {
		t.Errorf("Degree(b) = %d; want %d", got, want)
	}
	if got, want := g.NodeCount(), 4; got != want {
		t.Errorf("NodeCount = %d; want %d", got, want)
	}
	if got, want := g.EdgeCount(), 2; got != want {
		t.Errorf("EdgeCount = %d; want %d", got, want)
	}
}

// TestGraph_WireRoundTrip checks the {nodes,edges} JSON shape survives a
// decode/encode cycle and that decoding validates structure.
func TestGraph_WireRoundTrip(t *testing.T) {
	doc := core.GraphDoc{
		Nodes: []core.NodeDoc{{ID: "1"}, {ID: "2"}, {ID: "3"}},
		Edges: []core.EdgeDoc{{Source: "1", Target: "2"}, {Source: "2", Target: "3"}},
	}
	g, err := core.FromDoc(doc)
	if err != nil {
		t.Fatalf("FromDoc: %v", err)
	}
	back := g.Doc()
	if !reflect.DeepEqual(back, doc) {
		t.Errorf("round trip = %+v; want %+v", back, doc)
	}

	bad := core.GraphDoc{
		Nodes: []core.NodeDoc{{ID: "1"}},
		Edges: []core.EdgeDoc{{Source: "1", Target: "1"}},
	}
	if _, err = core.FromDoc(bad); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("FromDoc(self-loop): want ErrSelfLoop, got %v", err)
	}
}
