// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package astx

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/astx/ast"
	"github.com/bufbuild/astx/python"
	"github.com/bufbuild/astx/reporter"
)

// ToPython renders a single tree as Python source text, with default
// options.
func ToPython(node ast.Node) (string, error) {
	return python.Transpile(python.Options{}, node)
}

// Transpiler renders batches of syntax trees as Python source text.
//
// The zero value is ready to use.
type Transpiler struct {
	// The maximum number of trees to render at once. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter, shared by every tree. It must be
	// safe for concurrent use. If unspecified, errors are only recorded in
	// each tree's [Result] and warnings are ignored.
	Reporter reporter.Reporter
	// Receives debug records about each batch. If unspecified, nothing is
	// logged.
	Logger *slog.Logger
	// The column past which bracketed lists are broken one item per line.
	// Zero means lines are never broken.
	MaxWidth int
}

// Result is the outcome of rendering one tree.
type Result struct {
	Tree ast.Node
	Text string
	Err  error
}

// Transpile renders each of trees. The results are in the same order as the
// trees.
//
// A tree that fails to render records its error in its [Result] and does
// not affect the others. The returned error is only non-nil if ctx is done
// before every tree has been rendered.
func (t *Transpiler) Transpile(ctx context.Context, trees ...ast.Node) ([]Result, error) {
	if len(trees) == 0 {
		return nil, nil
	}

	par := t.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	logger := t.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	options := python.Options{
		MaxWidth: t.MaxWidth,
		Reporter: t.Reporter,
		Logger:   logger,
	}

	logger.Debug("transpiling batch", "trees", len(trees), "parallelism", par)

	sem := semaphore.NewWeighted(int64(par))
	results := make([]Result, len(trees))
	var (
		group     errgroup.Group
		cancelled error
	)
	for i, tree := range trees {
		if cancelled = sem.Acquire(ctx, 1); cancelled != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)
			text, err := python.Transpile(options, tree)
			results[i] = Result{Tree: tree, Text: text, Err: err}
			return nil
		})
	}
	_ = group.Wait() // Per-tree errors live in the results.

	if cancelled != nil {
		logger.Debug("batch cancelled", "error", cancelled)
		return nil, cancelled
	}

	var failed int
	for i, result := range results {
		if result.Err != nil {
			failed++
			logger.Debug("tree failed", "index", i, "error", result.Err)
		}
	}
	logger.Debug("transpiled batch", "trees", len(trees), "failed", failed)
	return results, nil
}
