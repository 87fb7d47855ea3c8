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

package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/astx/ast"
	"github.com/bufbuild/astx/symtab"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	table := symtab.New("print")
	_, ok := table.Lookup("x")
	assert.False(t, ok)

	entry, ok := table.Lookup("print")
	require.True(t, ok)
	assert.Equal(t, symtab.KindBuiltin, entry.Kind)
	assert.Zero(t, entry.Depth)
	assert.False(t, table.Declared("print"))

	table.Define("x", symtab.Entry{Kind: symtab.KindVariable, Type: ast.TypeInt32})
	entry, ok = table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "x", entry.Name)
	assert.Equal(t, 1, entry.Depth)
	assert.Equal(t, ast.TypeInt32, entry.Type)
	assert.True(t, table.Declared("x"))
}

func TestShadowing(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	table.Define("x", symtab.Entry{Kind: symtab.KindVariable, Type: ast.TypeInt32})
	table.Scoped(func() {
		assert.False(t, table.Declared("x"))
		table.Define("x", symtab.Entry{Kind: symtab.KindArgument, Type: ast.TypeString})

		entry, ok := table.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, symtab.KindArgument, entry.Kind)
		assert.Equal(t, 2, entry.Depth)
		assert.Equal(t, 2, table.Depth())
	})

	entry, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, symtab.KindVariable, entry.Kind)
	assert.Equal(t, 1, table.Depth())
}

func TestRedefine(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	table.Define("f", symtab.Entry{Kind: symtab.KindFunction})
	table.Define("f", symtab.Entry{Kind: symtab.KindVariable})
	entry, _ := table.Lookup("f")
	assert.Equal(t, symtab.KindVariable, entry.Kind)
}

func TestExit(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	assert.False(t, table.Exit())
	table.Enter()
	table.Define("y", symtab.Entry{})
	assert.True(t, table.Exit())
	_, ok := table.Lookup("y")
	assert.False(t, ok)
}

func TestScopedPanic(t *testing.T) {
	t.Parallel()

	table := symtab.New()
	assert.Panics(t, func() {
		table.Scoped(func() { panic("boom") })
	})
	assert.Equal(t, 1, table.Depth())
}

func TestNames(t *testing.T) {
	t.Parallel()

	table := symtab.New("len")
	for _, name := range []string{"zeta", "alpha", "mu"} {
		table.Define(name, symtab.Entry{})
	}
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, table.Names())
	table.Scoped(func() {
		assert.Empty(t, table.Names())
	})
	assert.Equal(t, "import", symtab.KindImport.String())
}
