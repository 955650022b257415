// Package mces - solver contract: algorithm identifiers, Options, Result,
// Stats, and the sentinel errors shared by all six solvers.
package mces

import (
	"errors"
	"time"

	"github.com/katalvlaran/mces/core"
)

// Sentinel errors for the solver contract.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("mces: nil graph")

	// ErrPatternTooLarge indicates |V1| > |V2|: no injective mapping exists,
	// so the input is structurally rejected before any search work.
	ErrPatternTooLarge = errors.New("mces: pattern graph larger than target graph")

	// ErrUnsupportedAlgorithm indicates an unknown algorithm selector.
	ErrUnsupportedAlgorithm = errors.New("mces: unsupported algorithm")

	// ErrOptionViolation indicates an Options field outside its domain.
	ErrOptionViolation = errors.New("mces: option out of range")

	// ErrEngineFailure indicates the external ILP engine returned a state the
	// decoder cannot interpret. Infeasible/time-limited termination is NOT an
	// engine failure; it is reported through Stats.SolutionOptimality.
	ErrEngineFailure = errors.New("mces: ilp engine failure")
)

// Algorithm selects one of the six solvers.
type Algorithm int

// Supported algorithms, in dispatcher order.
const (
	// Exhaustive enumerates every injective mapping (optimal; |V1| <= 8-10).
	Exhaustive Algorithm = iota + 1

	// Backtracking is DFS with an optimistic upper bound (optimal).
	Backtracking

	// ConnectedBacktracking is Backtracking with a connectivity predicate on
	// leaf acceptance (optimal for the connected variant).
	ConnectedBacktracking

	// GreedyPath is a constructive path-extension heuristic (no guarantee).
	GreedyPath

	// ILP encodes the problem as a 0/1 program for an external engine.
	ILP

	// SimulatedAnnealing is Metropolis local search with geometric cooling.
	SimulatedAnnealing
)

// algorithmIDs maps algorithms to their stable wire/CLI identifiers.
var algorithmIDs = map[Algorithm]string{
	Exhaustive:            "bruteforce",
	Backtracking:          "bruteforce_arcmatch",
	ConnectedBacktracking: "connected",
	GreedyPath:            "greedy_path",
	ILP:                   "ilp",
	SimulatedAnnealing:    "simulated_annealing",
}

// String returns the stable identifier used by the HTTP API, the CLI, and the
// benchmark rows ("bruteforce", "connected", ...).
func (a Algorithm) String() string {
	if id, ok := algorithmIDs[a]; ok {
		return id
	}

	return "unknown"
}

// ParseAlgorithm maps a stable identifier back to its Algorithm.
// Returns ErrUnsupportedAlgorithm for anything else.
func ParseAlgorithm(id string) (Algorithm, error) {
	for a, s := range algorithmIDs {
		if s == id {
			return a, nil
		}
	}

	return 0, ErrUnsupportedAlgorithm
}

// Algorithms returns all supported algorithms in dispatcher order.
func Algorithms() []Algorithm {
	return []Algorithm{
		Exhaustive, Backtracking, ConnectedBacktracking,
		GreedyPath, ILP, SimulatedAnnealing,
	}
}

// Default parameter values, shared by DefaultOptions and the outer layers.
const (
	// DefaultMaxPathLen bounds greedy paths to 4 vertices.
	DefaultMaxPathLen = 4

	// DefaultAssignmentCap bounds candidate assignments scored per path.
	DefaultAssignmentCap = 2000

	// DefaultInitialTemperature is the annealing start temperature.
	DefaultInitialTemperature = 100.0

	// DefaultCoolingRate is the geometric cooling factor.
	DefaultCoolingRate = 0.95

	// DefaultMaxIterations bounds the annealing loop.
	DefaultMaxIterations = 1000

	// minTemperature is the annealing convergence threshold.
	minTemperature = 0.001
)

// Options carries the algorithm selector and the algorithm-specific knobs.
// Fields irrelevant to the selected algorithm are ignored.
type Options struct {
	// Algo selects the solver.
	Algo Algorithm

	// MaxPathLen (GreedyPath) is the maximum number of vertices on an
	// extension path; must be >= 1.
	MaxPathLen int

	// AssignmentCap (GreedyPath) caps the candidate assignments scored per
	// path; must be >= 1. Keeps the heuristic polynomial on dense inputs.
	AssignmentCap int

	// InitialTemperature (SimulatedAnnealing) must be > 0.
	InitialTemperature float64

	// CoolingRate (SimulatedAnnealing) must lie in (0,1).
	CoolingRate float64

	// MaxIterations (SimulatedAnnealing) bounds the loop; 0 means the loop
	// runs until the temperature threshold alone.
	MaxIterations int

	// LocalSearch (SimulatedAnnealing) enables the greedy single-swap
	// refinement of each candidate before scoring.
	LocalSearch bool

	// Seed (SimulatedAnnealing) fixes the random stream; 0 selects the
	// package default seed, so runs are reproducible unless a caller opts
	// into varying seeds explicitly.
	Seed int64

	// TimeLimit (ILP) is a soft deadline checked between engine rounds;
	// 0 means unlimited. All other solvers ignore it: they are defined to be
	// cancellation-unaware and externally bounded.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical defaults for algo.
func DefaultOptions(algo Algorithm) Options {
	return Options{
		Algo:               algo,
		MaxPathLen:         DefaultMaxPathLen,
		AssignmentCap:      DefaultAssignmentCap,
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		MaxIterations:      DefaultMaxIterations,
		LocalSearch:        true,
	}
}

// Stats is the fixed statistics record attached to every solver invocation.
// Counters a solver does not produce stay at their zero value; no field is
// ever omitted from the wire form.
type Stats struct {
	// TimeMS is the wall-clock duration of the solve in milliseconds.
	TimeMS float64 `json:"time_ms"`

	// MappingsExplored counts fully scored candidate mappings.
	MappingsExplored int64 `json:"mappings_explored"`

	// RecursiveCalls counts search-tree node entries.
	RecursiveCalls int64 `json:"recursive_calls"`

	// PrunedBranches counts branches cut by the optimistic bound.
	PrunedBranches int64 `json:"pruned_branches"`

	// SearchSpaceSize is |V1| * |V2|, identifying the instance scale.
	SearchSpaceSize int64 `json:"search_space_size"`

	// MemoryUsageMB is the process heap in MiB at the end of the solve.
	MemoryUsageMB float64 `json:"memory_usage_mb"`

	// SolutionOptimality is true only when the solver terminated with a
	// certificate of global optimality. Heuristics always report false.
	SolutionOptimality bool `json:"solution_optimality"`
}

// Result is the immutable outcome of one solve call.
type Result struct {
	// Mapping is the injective node mapping found (possibly empty).
	Mapping map[string]string `json:"mapping"`

	// PreservedEdges lists the G1 edges preserved under Mapping, in G1's
	// canonical edge order, as [u, v] pairs.
	PreservedEdges [][2]string `json:"preserved_edges"`

	// Stats is the uniform statistics record.
	Stats Stats `json:"stats"`
}

// newResult assembles a Result from a mapping, re-deriving the preserved set
// so it can never disagree with the mapping that produced it.
func newResult(g1, g2 *core.Graph, m *core.Mapping, st Stats) Result {
	res := Result{
		Mapping:        map[string]string{},
		PreservedEdges: [][2]string{},
		Stats:          st,
	}
	if m == nil {
		return res
	}
	res.Mapping = m.Pairs()
	for _, e := range core.PreservedEdges(g1, g2, m) {
		res.PreservedEdges = append(res.PreservedEdges, [2]string{e.U, e.V})
	}

	return res
}
