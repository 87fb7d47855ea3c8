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

// Package ir defines the intermediate form that sits between a syntax tree
// and source text.
//
// A backend lowers each syntax tree node into ir values that say which
// tokens to print and how tightly each expression binds, but not where
// parentheses, line breaks, or indentation go. Those are decided by package
// emit, the same way for every target language.
//
// Precedence levels are plain integers chosen by the backend: higher levels
// bind tighter. An expression is parenthesized when its level is below the
// minimum its context requires.
package ir

import "math"

// Atomic is the precedence level of expressions that never need
// parentheses, such as names and bracketed displays.
const Atomic = math.MaxInt32

// Node is any node of the intermediate form.
type Node interface {
	irNode()
}

// Expr is an expression: something that can be parenthesized.
type Expr interface {
	Node

	// Prec returns how tightly this expression binds.
	Prec() int
}

// Stmt is a statement: something that is printed on its own line(s).
type Stmt interface {
	Node
	irStmt()
}

// Assoc is the associativity of a binary operator.
type Assoc int8

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

// String implements [fmt.Stringer].
func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Operator is an operator token together with its precedence and
// associativity.
type Operator struct {
	Text  string
	Prec  int
	Assoc Assoc
}

// Atom is an indivisible piece of text, such as a name or literal.
//
// Level is zero for text that never needs parentheses. Text that does, such
// as a negative number, sets Level to the precedence of the matching
// operator.
type Atom struct {
	Text  string
	Level int
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Op          Operator
	Left, Right Expr
}

// Unary is a prefix operator applied to an operand.
type Unary struct {
	Op      Operator
	Operand Expr
}

// Apply is a postfix bracketed argument list, such as a call or subscript.
type Apply struct {
	Callee      Expr
	Open, Close string
	Args        []Expr
	Level       int
}

// Group is a bracketed, comma-separated list of items, such as a list
// display or a parameter list.
//
// If Trailing is set, a lone item is followed by a comma, as a one-element
// tuple requires.
type Group struct {
	Open, Close string
	Items       []Expr
	Trailing    bool
}

// Template is an expression made of fixed text interleaved with
// subexpressions, such as a conditional expression or a lambda.
type Template struct {
	Level int
	Parts []Part
}

// Part is one piece of a [Template] or statement: either fixed text, or an
// expression that must bind at least as tightly as Min.
type Part struct {
	Text string
	Expr Expr
	Min  int
}

// Text returns a [Part] of fixed text.
func Text(text string) Part {
	return Part{Text: text}
}

// Slot returns a [Part] holding expr, which is parenthesized if its
// precedence is below min.
func Slot(expr Expr, min int) Part {
	return Part{Expr: expr, Min: min}
}

// Line is a simple statement printed on a single line.
type Line struct {
	Parts []Part
}

// Compound is a statement made of one or more clauses, each with a header
// and an indented body, such as an if/else chain.
type Compound struct {
	Clauses []Clause
}

// Clause is one header and body of a [Compound].
type Clause struct {
	Header []Part
	Body   []Stmt
}

// Block is a sequence of statements at the current indentation. An empty
// Block prints the target's no-op statement.
type Block struct {
	Stmts []Stmt
}

// Module is a sequence of top-level statements. An empty Module prints
// nothing.
type Module struct {
	Stmts []Stmt
}

// Prec implements [Expr].
func (a *Atom) Prec() int {
	if a.Level == 0 {
		return Atomic
	}
	return a.Level
}

// Prec implements [Expr].
func (b *Binary) Prec() int { return b.Op.Prec }

// Prec implements [Expr].
func (u *Unary) Prec() int { return u.Op.Prec }

// Prec implements [Expr].
func (a *Apply) Prec() int { return a.Level }

// Prec implements [Expr].
func (*Group) Prec() int { return Atomic }

// Prec implements [Expr].
func (t *Template) Prec() int { return t.Level }

func (*Atom) irNode()     {}
func (*Binary) irNode()   {}
func (*Unary) irNode()    {}
func (*Apply) irNode()    {}
func (*Group) irNode()    {}
func (*Template) irNode() {}
func (*Line) irNode()     {}
func (*Compound) irNode() {}
func (*Block) irNode()    {}
func (*Module) irNode()   {}

func (*Line) irStmt()     {}
func (*Compound) irStmt() {}
func (*Block) irStmt()    {}
