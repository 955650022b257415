// Package bench - child-process invocation of one timed solve.
package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/katalvlaran/mces/core"
	"github.com/katalvlaran/mces/mces"
)

// ErrInvocationTimeout marks a child process killed at the wall-clock budget.
var ErrInvocationTimeout = errors.New("bench: invocation timed out")

// PairDoc is the stdin wire shape of one instance, identical to the HTTP
// solve body so "mces solve" and the API share one decoder.
type PairDoc struct {
	Graph1 core.GraphDoc `json:"graph1"`
	Graph2 core.GraphDoc `json:"graph2"`
}

// Invoker runs one solve under a deadline. The process implementation is the
// production path; tests substitute an in-process fake.
type Invoker interface {
	Invoke(ctx context.Context, algorithm string, pair PairDoc) (mces.Result, error)
}

// processInvoker re-executes the solver binary so a timeout can kill the
// whole search without touching shared state.
type processInvoker struct {
	bin string
}

// NewProcessInvoker resolves the solver binary; empty means self.
func NewProcessInvoker(bin string) (Invoker, error) {
	if bin == "" {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("bench: resolve self: %w", err)
		}
		bin = self
	}

	return &processInvoker{bin: bin}, nil
}

func (p *processInvoker) Invoke(ctx context.Context, algorithm string, pair PairDoc) (mces.Result, error) {
	payload, err := json.Marshal(pair)
	if err != nil {
		return mces.Result{}, fmt.Errorf("bench: encode pair: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.bin, "solve", "--algorithm", algorithm)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return mces.Result{}, ErrInvocationTimeout
	}
	if runErr != nil {
		return mces.Result{}, fmt.Errorf("bench: %s: %w: %s",
			algorithm, runErr, bytes.TrimSpace(stderr.Bytes()))
	}

	var res mces.Result
	if err = json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return mces.Result{}, fmt.Errorf("bench: decode result: %w", err)
	}

	return res, nil
}
