package bench_test

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mces/bench"
	"github.com/katalvlaran/mces/core"
	"github.com/katalvlaran/mces/mces"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// inProcessInvoker runs the solve in-process, recording the pairs it saw.
// It mirrors what the child process does without the exec round trip.
type inProcessInvoker struct {
	mu    sync.Mutex
	pairs map[string][]bench.PairDoc // keyed by algorithm
}

func newInProcessInvoker() *inProcessInvoker {
	return &inProcessInvoker{pairs: map[string][]bench.PairDoc{}}
}

func (f *inProcessInvoker) Invoke(_ context.Context, algorithm string, pair bench.PairDoc) (mces.Result, error) {
	f.mu.Lock()
	f.pairs[algorithm] = append(f.pairs[algorithm], pair)
	f.mu.Unlock()

	algo, err := mces.ParseAlgorithm(algorithm)
	if err != nil {
		return mces.Result{}, err
	}
	g1, err := core.FromDoc(pair.Graph1)
	if err != nil {
		return mces.Result{}, err
	}
	g2, err := core.FromDoc(pair.Graph2)
	if err != nil {
		return mces.Result{}, err
	}

	return mces.Solve(g1, g2, mces.DefaultOptions(algo))
}

// blockingInvoker never returns before the deadline.
type blockingInvoker struct{}

func (blockingInvoker) Invoke(ctx context.Context, _ string, _ bench.PairDoc) (mces.Result, error) {
	<-ctx.Done()

	return mces.Result{}, bench.ErrInvocationTimeout
}

// failingInvoker simulates a crashed child.
type failingInvoker struct{}

func (failingInvoker) Invoke(context.Context, string, bench.PairDoc) (mces.Result, error) {
	return mces.Result{}, errors.New("exit status 1")
}

func smallConfig(t *testing.T) bench.Config {
	t.Helper()
	cfg, err := bench.LoadConfig("")
	require.NoError(t, err)
	cfg.NMin, cfg.NMax = 3, 4
	cfg.EdgeMultipliers = []float64{1.0}
	cfg.Repeats = 2
	cfg.Algorithms = []string{"bruteforce", "greedy_path"}
	cfg.MaxWorkers = 3
	cfg.Timeout = 5 * time.Second
	cfg.OutDir = t.TempDir()
	cfg.Seed = 99

	return cfg
}

// gridRows is the expected row count of smallConfig: both n=3 and n=4 get
// two budgets (the tree minimum and the 1.0 multiplier).
const gridRows = (2 + 2) /* budgets for n=3,4 */ * 2 /* repeats */ * 2 /* algorithms */

func TestRunner_FullGrid(t *testing.T) {
	cfg := smallConfig(t)
	inv := newInProcessInvoker()

	sum, err := bench.NewRunner(cfg, discardLogger(), inv).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, gridRows, sum.Rows)
	require.Equal(t, gridRows, sum.OK)
	require.Zero(t, sum.Timeouts)
	require.Zero(t, sum.Errors)
	require.Equal(t, int64(99), sum.Seed)

	// Every algorithm saw every pair of the grid.
	require.Len(t, inv.pairs["bruteforce"], gridRows/2)
	require.Len(t, inv.pairs["greedy_path"], gridRows/2)
}

func TestRunner_CSVShape(t *testing.T) {
	cfg := smallConfig(t)
	_, err := bench.NewRunner(cfg, discardLogger(), newInProcessInvoker()).Run(context.Background())
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(cfg.OutDir, "results.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, gridRows+1) // header + rows
	require.Equal(t, "run_id", records[0][0])
	for _, rec := range records[1:] {
		require.Equal(t, "ok", rec[6])
		require.NotEmpty(t, rec[8], "preserved_edges column must be filled on ok rows")
	}
}

func TestRunner_TimeoutRowsKeepIdentityOnly(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Timeout = 20 * time.Millisecond
	cfg.Algorithms = []string{"ilp"}

	sum, err := bench.NewRunner(cfg, discardLogger(), blockingInvoker{}).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, sum.Rows, sum.Timeouts)

	f, err := os.Open(filepath.Join(cfg.OutDir, "results.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	for _, rec := range records[1:] {
		require.Equal(t, "timeout", rec[6])
		require.NotEmpty(t, rec[4], "algorithm column survives a timeout")
		for col := 8; col < len(rec); col++ {
			require.Empty(t, rec[col], "metric columns stay empty on timeout")
		}
	}
}

func TestRunner_ErrorRows(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Algorithms = []string{"bruteforce"}

	sum, err := bench.NewRunner(cfg, discardLogger(), failingInvoker{}).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, sum.Rows, sum.Errors)
}

// TestRunner_DeterministicPairs: two runs with one master seed feed byte-for-
// byte identical graphs to the solvers, regardless of pool interleaving.
func TestRunner_DeterministicPairs(t *testing.T) {
	cfg := smallConfig(t)
	first := newInProcessInvoker()
	_, err := bench.NewRunner(cfg, discardLogger(), first).Run(context.Background())
	require.NoError(t, err)

	cfg.OutDir = t.TempDir()
	second := newInProcessInvoker()
	_, err = bench.NewRunner(cfg, discardLogger(), second).Run(context.Background())
	require.NoError(t, err)

	require.ElementsMatch(t, first.pairs["bruteforce"], second.pairs["bruteforce"])
}
