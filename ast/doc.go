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

// Package ast defines a language-agnostic syntax tree for building
// compiler front-ends, interpreters, and source-to-source translators.
//
// All nodes of the tree implement the Node interface. Nodes that produce a
// value implement Expr, and nodes that do not implement Stmt; the two sets
// are disjoint, so a statement can never be nested inside of an expression.
// Every node carries a Kind tag, an ID that is unique within the process,
// and an optional source Position.
//
// Creation of nodes must use the New* factory functions in this package
// instead of struct literals. The factories check each node's invariants
// (known operators, valid identifiers, unique argument names, and so on)
// and return an *Error wrapping ErrInvariantViolation if they do not hold.
// Nodes are immutable once built, so a tree may be read from any number of
// goroutines at once.
//
// Backends consume a tree by implementing Visitor, which has one method per
// kind, and calling Visit. This package defines numerous interfaces, but
// user code should not attempt to implement Node, Expr, or Stmt.
package ast
