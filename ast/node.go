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

package ast

import (
	"fmt"
	"iter"
	"reflect"
	"sync/atomic"
)

// Node is any node in a syntax tree.
//
// All implementations of Node live in this package. A tree is strictly
// hierarchical: every node is owned by exactly one parent, and nothing in
// this module mutates a node after its constructor returns.
type Node interface {
	fmt.Stringer

	// Kind returns this node's kind tag.
	Kind() Kind
	// ID returns this node's structural identity. See [ID].
	ID() ID
	// Pos returns the source position this node was annotated with, if any.
	Pos() Position
	// Children yields this node's child nodes, in slot order.
	Children() iter.Seq[Node]

	base() *nodeBase
}

// Expr is a [Node] that produces a value.
type Expr interface {
	Node
	expr()
}

// Stmt is a [Node] that produces no value. Statements are never nested
// inside of expressions.
type Stmt interface {
	Node
	stmt()
}

// ID is an opaque node identity, unique within a process.
//
// IDs are assigned from a monotonically increasing counter when a node is
// constructed. They exist for tooling that needs to tell apart two
// structurally equal nodes (diffing, visualization); rendering never looks at
// them.
type ID uint64

var lastID atomic.Uint64

// String implements [fmt.Stringer].
func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Position is a 1-indexed line and column in some original source text.
//
// The zero Position means "no source".
type Position struct {
	Line, Column int
}

// IsValid returns whether this position refers to real source.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if !p.IsValid() {
		return "<no source>"
	}
	if p.Column <= 0 {
		return fmt.Sprintf("%d", p.Line)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Option configures a node at construction time.
type Option func(*nodeBase)

// At returns an [Option] that annotates a node with a source position.
func At(line, column int) Option {
	return func(b *nodeBase) {
		b.pos = Position{Line: line, Column: column}
	}
}

// nodeBase holds the fields every node has.
type nodeBase struct {
	id  ID
	pos Position
}

func newBase(opts []Option) nodeBase {
	b := nodeBase{id: ID(lastID.Add(1))}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

// ID implements [Node].
func (b *nodeBase) ID() ID { return b.id }

// Pos implements [Node].
func (b *nodeBase) Pos() Position { return b.pos }

func (b *nodeBase) base() *nodeBase { return b }

// Must panics if err is non-nil, and otherwise returns v.
//
// It is intended for building trees out of values that are known to be
// valid, such as in tests.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// isNil returns whether n is nil, including a typed nil pointer.
func isNil(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// isBuilt returns whether n was produced by one of this package's
// constructors.
func isBuilt(n Node) bool {
	return !isNil(n) && n.base().id != 0
}

// children builds a child iterator out of a list of possibly-nil nodes.
func children(nodes ...Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range nodes {
			if isNil(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// childSeq builds a child iterator out of a slice of nodes.
func childSeq[N Node](nodes []N) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range nodes {
			if !yield(n) {
				return
			}
		}
	}
}
