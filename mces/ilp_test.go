package mces_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mces/mces"
)

// TestILP_CertifiesOptimum checks the strengthening loop against the known
// optimum of the path/triangle scenario.
func TestILP_CertifiesOptimum(t *testing.T) {
	g1 := pathGraph(t)
	g2 := triangleGraph(t)

	res, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.ILP))
	require.NoError(t, err)
	assertValidResult(t, g1, g2, res)
	require.Len(t, res.PreservedEdges, 2)
	require.True(t, res.Stats.SolutionOptimality, "UNSAT round must certify the incumbent")
}

// TestILP_AgreesWithExhaustive cross-checks the engine encoding against the
// enumeration baseline on a denser instance.
func TestILP_AgreesWithExhaustive(t *testing.T) {
	g1 := mustGraph(t, []string{"1", "2", "3", "4"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}, [2]string{"4", "1"})
	g2 := mustGraph(t, []string{"a", "b", "c", "d"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"},
		[2]string{"d", "a"}, [2]string{"a", "c"})

	ex, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.Exhaustive))
	require.NoError(t, err)
	lp, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.ILP))
	require.NoError(t, err)

	assertValidResult(t, g1, g2, lp)
	require.Equal(t, len(ex.PreservedEdges), len(lp.PreservedEdges))
	require.True(t, lp.Stats.SolutionOptimality)
}

// TestILP_DegenerateEdgeless: with no target edges nothing is preservable and
// the empty answer is a certified optimum reached without the engine.
func TestILP_DegenerateEdgeless(t *testing.T) {
	g1 := mustGraph(t, []string{"1", "2"}, [2]string{"1", "2"})
	g2 := mustGraph(t, []string{"a", "b", "c"})

	res, err := mces.Solve(g1, g2, mces.DefaultOptions(mces.ILP))
	require.NoError(t, err)
	require.Empty(t, res.Mapping)
	require.Empty(t, res.PreservedEdges)
	require.True(t, res.Stats.SolutionOptimality)
}

// TestILP_TimeLimitDropsCertificate: an already-expired deadline must yield
// the (empty) incumbent tagged non-optimal, not an error.
func TestILP_TimeLimitDropsCertificate(t *testing.T) {
	g1 := pathGraph(t)
	g2 := triangleGraph(t)

	opts := mces.DefaultOptions(mces.ILP)
	opts.TimeLimit = time.Nanosecond

	res, err := mces.Solve(g1, g2, opts)
	require.NoError(t, err)
	require.False(t, res.Stats.SolutionOptimality)
}
