// Package bench - experiment planning and the worker pool.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mces/generate"
	"github.com/katalvlaran/mces/mces"
)

// job is one (pair, algorithm) invocation. The pair itself is regenerated
// inside the worker from the derived seed, so jobs are cheap to fan out and
// the pool schedule cannot change which graphs get solved.
type job struct {
	n, m, rep int
	algorithm string
	seed      int64
}

// Summary aggregates a finished run.
type Summary struct {
	RunID    string
	Seed     int64
	Rows     int
	OK       int
	Timeouts int
	Errors   int
	Elapsed  time.Duration
}

// Runner executes one configured experiment.
type Runner struct {
	cfg Config
	log *slog.Logger
	inv Invoker
}

// NewRunner wires an experiment. The invoker is injectable for tests.
func NewRunner(cfg Config, log *slog.Logger, inv Invoker) *Runner {
	return &Runner{cfg: cfg, log: log, inv: inv}
}

// Run plans the grid, fans it out over MaxWorkers, and streams rows to dir.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	started := time.Now()
	sum := Summary{RunID: uuid.NewString(), Seed: r.cfg.Seed}
	if sum.Seed == 0 {
		sum.Seed = started.UnixNano()
	}

	sink, err := NewSink(r.cfg.OutDir)
	if err != nil {
		return Summary{}, err
	}
	defer sink.Close()

	jobs := r.plan(sum.Seed)
	r.log.Info("benchmark started",
		"run_id", sum.RunID, "seed", sum.Seed, "jobs", len(jobs),
		"workers", r.cfg.MaxWorkers)

	var (
		queue = make(chan job)
		mu    sync.Mutex
		wg    sync.WaitGroup
	)
	for w := 0; w < r.cfg.MaxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				row := r.execute(ctx, sum.RunID, j)
				if werr := sink.Write(row); werr != nil {
					r.log.Error("row write failed", "err", werr)
				}
				mu.Lock()
				sum.Rows++
				switch row.Status {
				case StatusOK:
					sum.OK++
				case StatusTimeout:
					sum.Timeouts++
				default:
					sum.Errors++
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, j := range jobs {
		select {
		case queue <- j:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()

	sum.Elapsed = time.Since(started)
	r.log.Info("benchmark finished",
		"run_id", sum.RunID, "rows", sum.Rows, "ok", sum.OK,
		"timeouts", sum.Timeouts, "errors", sum.Errors,
		"elapsed", sum.Elapsed)

	return sum, ctx.Err()
}

// plan expands the experiment grid into jobs with derived pair seeds.
func (r *Runner) plan(master int64) []job {
	var jobs []job
	for n := r.cfg.NMin; n <= r.cfg.NMax; n++ {
		for _, m := range edgeBudgets(n, r.cfg.EdgeMultipliers) {
			for rep := 0; rep < r.cfg.Repeats; rep++ {
				seed := mces.DeriveSeed(master, pairStream(n, m, rep))
				for _, algo := range r.cfg.Algorithms {
					jobs = append(jobs, job{
						n: n, m: m, rep: rep, algorithm: algo, seed: seed,
					})
				}
			}
		}
	}

	return jobs
}

// edgeBudgets derives the distinct, ordered edge budgets for n vertices:
// the spanning-tree minimum plus one budget per multiplier, clamped to the
// simple-graph maximum.
func edgeBudgets(n int, multipliers []float64) []int {
	maxEdges := n * (n - 1) / 2
	budgets := []int{n - 1}
	seen := map[int]bool{n - 1: true}
	for _, mult := range multipliers {
		m := int(math.Round(float64(n) * mult))
		if m < n-1 {
			m = n - 1
		}
		if m > maxEdges {
			m = maxEdges
		}
		if !seen[m] {
			budgets = append(budgets, m)
			seen[m] = true
		}
	}

	return budgets
}

// pairStream packs (n, m, rep) into one SplitMix64 stream identifier.
func pairStream(n, m, rep int) uint64 {
	return uint64(n)<<40 | uint64(m)<<20 | uint64(rep)
}

// execute generates the pair for one job and runs a single timed invocation.
func (r *Runner) execute(ctx context.Context, runID string, j job) Row {
	row := Row{
		RunID: runID, N: j.n, M: j.m, Repetition: j.rep,
		Algorithm: j.algorithm, Seed: j.seed,
	}

	pair, err := r.pair(j)
	if err != nil {
		row.Status = StatusError
		row.Error = err.Error()

		return row
	}

	invCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	res, err := r.inv.Invoke(invCtx, j.algorithm, pair)
	switch {
	case err == nil:
		row.Status = StatusOK
		row.Result = &res
	case invCtx.Err() != nil && ctx.Err() == nil:
		row.Status = StatusTimeout
		r.log.Warn("invocation timed out",
			"algorithm", j.algorithm, "n", j.n, "m", j.m, "rep", j.rep)
	default:
		row.Status = StatusError
		row.Error = err.Error()
		r.log.Error("invocation failed",
			"algorithm", j.algorithm, "n", j.n, "m", j.m, "err", err)
	}

	return row
}

// pair regenerates the deterministic instance of a job: the pattern graph on
// n vertices and a slightly larger target so the instance stays solvable.
func (r *Runner) pair(j job) (PairDoc, error) {
	g1, err := generate.Connected(j.n, j.m, j.seed)
	if err != nil {
		return PairDoc{}, fmt.Errorf("bench: pattern n=%d m=%d: %w", j.n, j.m, err)
	}

	n2 := j.n + r.cfg.TargetExtra
	m2 := j.m + r.cfg.TargetExtra
	if max2 := n2 * (n2 - 1) / 2; m2 > max2 {
		m2 = max2
	}
	g2, err := generate.Connected(n2, m2, mces.DeriveSeed(j.seed, 1))
	if err != nil {
		return PairDoc{}, fmt.Errorf("bench: target n=%d m=%d: %w", n2, m2, err)
	}

	return PairDoc{Graph1: g1.Doc(), Graph2: g2.Doc()}, nil
}
