// Package bench - serialized CSV/JSONL persistence.
package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/katalvlaran/mces/mces"
)

// Row statuses.
const (
	StatusOK      = "ok"
	StatusTimeout = "timeout"
	StatusError   = "error"
)

// Row is one (pair, algorithm, repetition) outcome. Result is nil for
// timeout/error rows; their metric columns stay empty.
type Row struct {
	RunID      string       `json:"run_id"`
	N          int          `json:"n"`
	M          int          `json:"m"`
	Repetition int          `json:"repetition"`
	Algorithm  string       `json:"algorithm"`
	Seed       int64        `json:"seed"`
	Status     string       `json:"status"`
	Error      string       `json:"error,omitempty"`
	Result     *mces.Result `json:"result,omitempty"`
}

// csvHeader fixes the column order of results.csv.
var csvHeader = []string{
	"run_id", "n", "m", "repetition", "algorithm", "seed", "status", "error",
	"preserved_edges", "time_ms", "mappings_explored", "recursive_calls",
	"pruned_branches", "search_space_size", "memory_usage_mb",
	"solution_optimality",
}

// Sink appends rows to results.csv and results.jsonl under one mutex, so the
// worker pool can write rows as they complete.
type Sink struct {
	mu      sync.Mutex
	csvFile *os.File
	csvW    *csv.Writer
	jsonl   *os.File
}

// NewSink creates (or truncates) the result files under dir.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("bench: out dir: %w", err)
	}
	csvFile, err := os.Create(filepath.Join(dir, "results.csv"))
	if err != nil {
		return nil, fmt.Errorf("bench: results.csv: %w", err)
	}
	jsonl, err := os.Create(filepath.Join(dir, "results.jsonl"))
	if err != nil {
		csvFile.Close()

		return nil, fmt.Errorf("bench: results.jsonl: %w", err)
	}

	s := &Sink{csvFile: csvFile, csvW: csv.NewWriter(csvFile), jsonl: jsonl}
	if err = s.csvW.Write(csvHeader); err != nil {
		s.Close()

		return nil, fmt.Errorf("bench: csv header: %w", err)
	}

	return s, nil
}

// Write appends one row to both files.
func (s *Sink) Write(row Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.csvW.Write(row.record()); err != nil {
		return fmt.Errorf("bench: csv row: %w", err)
	}
	line, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("bench: jsonl row: %w", err)
	}
	if _, err = s.jsonl.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("bench: jsonl row: %w", err)
	}

	return nil
}

// Close flushes and closes both files.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.csvW.Flush()
	err := s.csvW.Error()
	if cerr := s.csvFile.Close(); err == nil {
		err = cerr
	}
	if jerr := s.jsonl.Close(); err == nil {
		err = jerr
	}

	return err
}

// record renders the CSV columns; metric columns are empty unless Status==ok.
func (r Row) record() []string {
	rec := []string{
		r.RunID,
		strconv.Itoa(r.N),
		strconv.Itoa(r.M),
		strconv.Itoa(r.Repetition),
		r.Algorithm,
		strconv.FormatInt(r.Seed, 10),
		r.Status,
		r.Error,
		"", "", "", "", "", "", "", "",
	}
	if r.Result == nil {
		return rec
	}
	st := r.Result.Stats
	rec[8] = strconv.Itoa(len(r.Result.PreservedEdges))
	rec[9] = strconv.FormatFloat(st.TimeMS, 'f', 3, 64)
	rec[10] = strconv.FormatInt(st.MappingsExplored, 10)
	rec[11] = strconv.FormatInt(st.RecursiveCalls, 10)
	rec[12] = strconv.FormatInt(st.PrunedBranches, 10)
	rec[13] = strconv.FormatInt(st.SearchSpaceSize, 10)
	rec[14] = strconv.FormatFloat(st.MemoryUsageMB, 'f', 3, 64)
	rec[15] = strconv.FormatBool(st.SolutionOptimality)

	return rec
}
