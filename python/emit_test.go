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

package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/astx/emit"
	"github.com/bufbuild/astx/ir"
	"github.com/bufbuild/astx/reporter"
)

func TestEmitErrorsAreReported(t *testing.T) {
	t.Parallel()

	var reported []reporter.ErrorWithPos
	rep := reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		reported = append(reported, err)
		return err
	}, nil)

	r := newRenderer(Options{Reporter: rep}.withDefaults())
	_, err := r.emit(&ir.Compound{})
	require.ErrorIs(t, err, emit.ErrInvalid)
	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], emit.ErrInvalid)

	// A reporter that swallows the error still fails the render.
	rep = reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }, nil)
	r = newRenderer(Options{Reporter: rep}.withDefaults())
	_, err = r.emit(&ir.Module{Stmts: []ir.Stmt{nil}})
	require.ErrorIs(t, err, reporter.ErrInvalidTree)
}

func TestSyntaxIsFresh(t *testing.T) {
	t.Parallel()

	s := Syntax()
	s.EmptyBody = "..."
	assert.Equal(t, "pass", Syntax().EmptyBody)
}
