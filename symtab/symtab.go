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

// Package symtab provides a scoped symbol table for backends that need to
// know which names have been declared so far.
//
// A [Table] is a stack of scopes. Lookups search from the innermost scope
// outwards, so an inner definition shadows an outer one; redefining a name
// is never an error. A table is meant to live for a single render call and
// is not safe for concurrent use.
package symtab

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/bufbuild/astx/ast"
)

// Kind is what sort of declaration introduced a name.
type Kind int8

const (
	KindUnknown Kind = iota
	KindBuiltin
	KindImport
	KindFunction
	KindArgument
	KindVariable
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindImport:
		return "import"
	case KindFunction:
		return "function"
	case KindArgument:
		return "argument"
	case KindVariable:
		return "variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is what a [Table] records about a name.
type Entry struct {
	Kind Kind
	// The declared type, or ast.TypeInvalid if the declaration has none.
	Type ast.DataType
	// The declaring node, if there is one.
	Node ast.Node

	// Set by [Table.Define].
	Name  string
	Depth int // Zero for predeclared names, one for the outermost scope.
}

// Table is a stack of scopes.
//
// The zero Table is not ready to use; construct one with [New].
type Table struct {
	scopes []*btree.Map[string, Entry]
}

// New returns a table with a single open scope, nested inside of a scope
// that holds the given predeclared names.
func New(predeclared ...string) *Table {
	builtins := new(btree.Map[string, Entry])
	for _, name := range predeclared {
		builtins.Set(name, Entry{Kind: KindBuiltin, Name: name})
	}
	return &Table{scopes: []*btree.Map[string, Entry]{builtins, new(btree.Map[string, Entry])}}
}

// Define records name in the innermost scope, replacing any definition it
// already has there.
func (t *Table) Define(name string, entry Entry) {
	entry.Name = name
	entry.Depth = t.Depth()
	t.current().Set(name, entry)
}

// Lookup returns the innermost definition of name.
func (t *Table) Lookup(name string) (Entry, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if entry, ok := t.scopes[i].Get(name); ok {
			return entry, true
		}
	}
	return Entry{}, false
}

// Declared returns whether name is defined in the innermost scope.
func (t *Table) Declared(name string) bool {
	_, ok := t.current().Get(name)
	return ok
}

// Enter opens a new innermost scope.
func (t *Table) Enter() {
	t.scopes = append(t.scopes, new(btree.Map[string, Entry]))
}

// Exit discards the innermost scope and everything defined in it. It
// returns false, and does nothing, if there is no scope opened by [Table.Enter]
// to exit.
func (t *Table) Exit() bool {
	if t.Depth() <= 1 {
		return false
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
	return true
}

// Scoped runs body inside of a new scope, which is discarded when body
// returns or panics.
func (t *Table) Scoped(body func()) {
	t.Enter()
	defer t.Exit()
	body()
}

// Depth returns the number of open scopes, not counting the predeclared
// scope.
func (t *Table) Depth() int {
	return len(t.scopes) - 1
}

// Names returns the names defined in the innermost scope, in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.current().Len())
	t.current().Scan(func(name string, _ Entry) bool {
		names = append(names, name)
		return true
	})
	return names
}

func (t *Table) current() *btree.Map[string, Entry] {
	return t.scopes[len(t.scopes)-1]
}
