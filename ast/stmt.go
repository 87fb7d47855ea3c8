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
	"iter"
	"slices"
	"strconv"
	"strings"
)

// FunctionReturn returns from the enclosing function, optionally with a
// value.
type FunctionReturn struct {
	nodeBase
	value Expr
}

// NewFunctionReturn builds a new FunctionReturn. value may be nil.
func NewFunctionReturn(value Expr, opts ...Option) (*FunctionReturn, error) {
	if isNil(value) {
		value = nil
	}
	return &FunctionReturn{nodeBase: newBase(opts), value: value}, nil
}

// Value returns the returned value, or nil for a bare return.
func (n *FunctionReturn) Value() Expr { return n.value }

// Kind implements [Node].
func (*FunctionReturn) Kind() Kind { return KindFunctionReturn }

// Children implements [Node].
func (n *FunctionReturn) Children() iter.Seq[Node] { return children(n.value) }

// String implements [fmt.Stringer].
func (*FunctionReturn) String() string { return "FunctionReturn" }

// ImportStmt imports one or more modules.
type ImportStmt struct {
	nodeBase
	names []*AliasExpr
}

// NewImportStmt builds a new ImportStmt. There must be at least one name.
func NewImportStmt(names []*AliasExpr, opts ...Option) (*ImportStmt, error) {
	if err := checkAliases(KindImportStmt, names, opts); err != nil {
		return nil, err
	}
	return &ImportStmt{nodeBase: newBase(opts), names: slices.Clone(names)}, nil
}

// Names returns the imported names, in order. The returned slice must not be
// modified.
func (n *ImportStmt) Names() []*AliasExpr { return n.names }

// Kind implements [Node].
func (*ImportStmt) Kind() Kind { return KindImportStmt }

// Children implements [Node].
func (n *ImportStmt) Children() iter.Seq[Node] { return childSeq(n.names) }

// String implements [fmt.Stringer].
func (n *ImportStmt) String() string { return "ImportStmt[" + joinAliases(n.names) + "]" }

// ImportFromStmt imports names from a module.
//
// Level is the number of leading dots of a relative import; the module may be
// empty only if Level is positive.
type ImportFromStmt struct {
	nodeBase
	module string
	level  int
	names  []*AliasExpr
}

// NewImportFromStmt builds a new ImportFromStmt.
func NewImportFromStmt(module string, level int, names []*AliasExpr, opts ...Option) (*ImportFromStmt, error) {
	switch {
	case level < 0:
		return nil, violation(KindImportFromStmt, opts, "negative import level %d", level)
	case module == "" && level == 0:
		return nil, violation(KindImportFromStmt, opts, "absolute import without a module")
	case module != "" && !IsDottedName(module):
		return nil, violation(KindImportFromStmt, opts, "%q is not a valid dotted name", module)
	}
	if err := checkAliases(KindImportFromStmt, names, opts); err != nil {
		return nil, err
	}
	for _, name := range names {
		if strings.Contains(name.name, ".") {
			return nil, violation(KindImportFromStmt, opts, "cannot import dotted name %q from a module", name.name)
		}
	}
	return &ImportFromStmt{nodeBase: newBase(opts), module: module, level: level, names: slices.Clone(names)}, nil
}

// Module returns the module being imported from.
func (n *ImportFromStmt) Module() string { return n.module }

// Level returns the relative import level.
func (n *ImportFromStmt) Level() int { return n.level }

// Names returns the imported names, in order. The returned slice must not be
// modified.
func (n *ImportFromStmt) Names() []*AliasExpr { return n.names }

// Kind implements [Node].
func (*ImportFromStmt) Kind() Kind { return KindImportFromStmt }

// Children implements [Node].
func (n *ImportFromStmt) Children() iter.Seq[Node] { return childSeq(n.names) }

// String implements [fmt.Stringer].
func (n *ImportFromStmt) String() string {
	return "ImportFromStmt[" + strings.Repeat(".", n.level) + n.module + ": " + joinAliases(n.names) + "]"
}

// Assignment assigns a value to an existing name.
type Assignment struct {
	nodeBase
	name  string
	value Expr
}

// NewAssignment builds a new Assignment.
func NewAssignment(name string, value Expr, opts ...Option) (*Assignment, error) {
	switch {
	case !IsIdent(name):
		return nil, violation(KindAssignment, opts, "%q is not a valid identifier", name)
	case isNil(value):
		return nil, violation(KindAssignment, opts, "missing value assigned to %q", name)
	}
	return &Assignment{nodeBase: newBase(opts), name: name, value: value}, nil
}

// Name returns the assigned name.
func (n *Assignment) Name() string { return n.name }

// Value returns the assigned value.
func (n *Assignment) Value() Expr { return n.value }

// Kind implements [Node].
func (*Assignment) Kind() Kind { return KindAssignment }

// Children implements [Node].
func (n *Assignment) Children() iter.Seq[Node] { return children(n.value) }

// String implements [fmt.Stringer].
func (n *Assignment) String() string { return "Assignment[" + n.name + "]" }

// VariableDeclaration declares a typed variable, optionally with an initial
// value.
type VariableDeclaration struct {
	nodeBase
	name  string
	typ   DataType
	value Expr
}

// NewVariableDeclaration builds a new VariableDeclaration. value may be nil.
func NewVariableDeclaration(name string, typ DataType, value Expr, opts ...Option) (*VariableDeclaration, error) {
	switch {
	case !IsIdent(name):
		return nil, violation(KindVariableDeclaration, opts, "%q is not a valid identifier", name)
	case !typ.IsValid():
		return nil, violation(KindVariableDeclaration, opts, "variable %q has invalid type %v", name, typ)
	}
	if isNil(value) {
		value = nil
	}
	return &VariableDeclaration{nodeBase: newBase(opts), name: name, typ: typ, value: value}, nil
}

// Name returns the declared name.
func (n *VariableDeclaration) Name() string { return n.name }

// Type returns the declared type.
func (n *VariableDeclaration) Type() DataType { return n.typ }

// Value returns the initial value, or nil if there is none.
func (n *VariableDeclaration) Value() Expr { return n.value }

// Kind implements [Node].
func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

// Children implements [Node].
func (n *VariableDeclaration) Children() iter.Seq[Node] { return children(n.value) }

// String implements [fmt.Stringer].
func (n *VariableDeclaration) String() string {
	return "VariableDeclaration[" + n.name + ": " + n.typ.String() + "]"
}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	nodeBase
	value Expr
}

// NewExprStmt builds a new ExprStmt.
func NewExprStmt(value Expr, opts ...Option) (*ExprStmt, error) {
	if isNil(value) {
		return nil, violation(KindExprStmt, opts, "missing expression")
	}
	return &ExprStmt{nodeBase: newBase(opts), value: value}, nil
}

// Value returns the evaluated expression.
func (n *ExprStmt) Value() Expr { return n.value }

// Kind implements [Node].
func (*ExprStmt) Kind() Kind { return KindExprStmt }

// Children implements [Node].
func (n *ExprStmt) Children() iter.Seq[Node] { return children(n.value) }

// String implements [fmt.Stringer].
func (*ExprStmt) String() string { return "ExprStmt" }

// If is a conditional statement. Else may be nil.
type If struct {
	nodeBase
	cond      Expr
	then, els *Block
}

// NewIf builds a new If. els may be nil.
func NewIf(cond Expr, then, els *Block, opts ...Option) (*If, error) {
	switch {
	case isNil(cond):
		return nil, violation(KindIf, opts, "missing condition")
	case !isBuilt(then):
		return nil, violation(KindIf, opts, "missing then-block")
	case !isNil(els) && !isBuilt(els):
		return nil, violation(KindIf, opts, "else-block was not constructed with NewBlock")
	}
	if isNil(els) {
		els = nil
	}
	return &If{nodeBase: newBase(opts), cond: cond, then: then, els: els}, nil
}

// Cond returns the condition.
func (n *If) Cond() Expr { return n.cond }

// Then returns the block run when the condition holds.
func (n *If) Then() *Block { return n.then }

// Else returns the block run when the condition does not hold, or nil.
func (n *If) Else() *Block { return n.els }

// Kind implements [Node].
func (*If) Kind() Kind { return KindIf }

// Children implements [Node].
func (n *If) Children() iter.Seq[Node] {
	if n.els == nil {
		return children(n.cond, n.then)
	}
	return children(n.cond, n.then, n.els)
}

// String implements [fmt.Stringer].
func (*If) String() string { return "If" }

// While repeats its body while a condition holds.
type While struct {
	nodeBase
	cond Expr
	body *Block
}

// NewWhile builds a new While.
func NewWhile(cond Expr, body *Block, opts ...Option) (*While, error) {
	switch {
	case isNil(cond):
		return nil, violation(KindWhile, opts, "missing condition")
	case !isBuilt(body):
		return nil, violation(KindWhile, opts, "missing body")
	}
	return &While{nodeBase: newBase(opts), cond: cond, body: body}, nil
}

// Cond returns the loop condition.
func (n *While) Cond() Expr { return n.cond }

// Body returns the loop body.
func (n *While) Body() *Block { return n.body }

// Kind implements [Node].
func (*While) Kind() Kind { return KindWhile }

// Children implements [Node].
func (n *While) Children() iter.Seq[Node] { return children(n.cond, n.body) }

// String implements [fmt.Stringer].
func (*While) String() string { return "While" }

// ForRangeLoop iterates a variable over an integer range [start, end) with
// an optional step.
type ForRangeLoop struct {
	nodeBase
	variable         string
	start, end, step Expr
	body             *Block
}

// NewForRangeLoop builds a new ForRangeLoop. step may be nil.
func NewForRangeLoop(variable string, start, end, step Expr, body *Block, opts ...Option) (*ForRangeLoop, error) {
	switch {
	case !IsIdent(variable):
		return nil, violation(KindForRangeLoop, opts, "%q is not a valid identifier", variable)
	case isNil(start):
		return nil, violation(KindForRangeLoop, opts, "missing range start")
	case isNil(end):
		return nil, violation(KindForRangeLoop, opts, "missing range end")
	case !isBuilt(body):
		return nil, violation(KindForRangeLoop, opts, "missing body")
	}
	if isNil(step) {
		step = nil
	}
	return &ForRangeLoop{
		nodeBase: newBase(opts),
		variable: variable,
		start:    start,
		end:      end,
		step:     step,
		body:     body,
	}, nil
}

// Variable returns the loop variable's name.
func (n *ForRangeLoop) Variable() string { return n.variable }

// Start returns the inclusive start of the range.
func (n *ForRangeLoop) Start() Expr { return n.start }

// End returns the exclusive end of the range.
func (n *ForRangeLoop) End() Expr { return n.end }

// Step returns the range step, or nil for the default step.
func (n *ForRangeLoop) Step() Expr { return n.step }

// Body returns the loop body.
func (n *ForRangeLoop) Body() *Block { return n.body }

// Kind implements [Node].
func (*ForRangeLoop) Kind() Kind { return KindForRangeLoop }

// Children implements [Node].
func (n *ForRangeLoop) Children() iter.Seq[Node] {
	return children(n.start, n.end, n.step, n.body)
}

// String implements [fmt.Stringer].
func (n *ForRangeLoop) String() string { return "ForRangeLoop[" + n.variable + "]" }

// ForInLoop iterates a variable over the values of an iterable expression.
type ForInLoop struct {
	nodeBase
	variable string
	iterable Expr
	body     *Block
}

// NewForInLoop builds a new ForInLoop.
func NewForInLoop(variable string, iterable Expr, body *Block, opts ...Option) (*ForInLoop, error) {
	switch {
	case !IsIdent(variable):
		return nil, violation(KindForInLoop, opts, "%q is not a valid identifier", variable)
	case isNil(iterable):
		return nil, violation(KindForInLoop, opts, "missing iterable")
	case !isBuilt(body):
		return nil, violation(KindForInLoop, opts, "missing body")
	}
	return &ForInLoop{nodeBase: newBase(opts), variable: variable, iterable: iterable, body: body}, nil
}

// Variable returns the loop variable's name.
func (n *ForInLoop) Variable() string { return n.variable }

// Iterable returns the iterated expression.
func (n *ForInLoop) Iterable() Expr { return n.iterable }

// Body returns the loop body.
func (n *ForInLoop) Body() *Block { return n.body }

// Kind implements [Node].
func (*ForInLoop) Kind() Kind { return KindForInLoop }

// Children implements [Node].
func (n *ForInLoop) Children() iter.Seq[Node] { return children(n.iterable, n.body) }

// String implements [fmt.Stringer].
func (n *ForInLoop) String() string { return "ForInLoop[" + n.variable + "]" }

// Break exits the innermost loop.
type Break struct {
	nodeBase
}

// NewBreak builds a new Break.
func NewBreak(opts ...Option) (*Break, error) {
	return &Break{nodeBase: newBase(opts)}, nil
}

// Kind implements [Node].
func (*Break) Kind() Kind { return KindBreak }

// Children implements [Node].
func (*Break) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (*Break) String() string { return "Break" }

// Continue skips to the next iteration of the innermost loop.
type Continue struct {
	nodeBase
}

// NewContinue builds a new Continue.
func NewContinue(opts ...Option) (*Continue, error) {
	return &Continue{nodeBase: newBase(opts)}, nil
}

// Kind implements [Node].
func (*Continue) Kind() Kind { return KindContinue }

// Children implements [Node].
func (*Continue) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (*Continue) String() string { return "Continue" }

// WithStmt runs a body inside of one or more context managers.
type WithStmt struct {
	nodeBase
	items []*WithItem
	body  *Block
}

// NewWithStmt builds a new WithStmt. There must be at least one item.
func NewWithStmt(items []*WithItem, body *Block, opts ...Option) (*WithStmt, error) {
	if len(items) == 0 {
		return nil, violation(KindWithStmt, opts, "with statement has no items")
	}
	for i, item := range items {
		if !isBuilt(item) {
			return nil, violation(KindWithStmt, opts, "item %d is missing", i)
		}
	}
	if !isBuilt(body) {
		return nil, violation(KindWithStmt, opts, "missing body")
	}
	return &WithStmt{nodeBase: newBase(opts), items: slices.Clone(items), body: body}, nil
}

// Items returns the context managers, in order. The returned slice must not
// be modified.
func (n *WithStmt) Items() []*WithItem { return n.items }

// Body returns the managed body.
func (n *WithStmt) Body() *Block { return n.body }

// Kind implements [Node].
func (*WithStmt) Kind() Kind { return KindWithStmt }

// Children implements [Node].
func (n *WithStmt) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, item := range n.items {
			if !yield(item) {
				return
			}
		}
		if n.body != nil {
			yield(n.body)
		}
	}
}

// String implements [fmt.Stringer].
func (n *WithStmt) String() string {
	items := make([]string, len(n.items))
	for i, item := range n.items {
		items[i] = item.String()
	}
	return "WithStmt[" + strings.Join(items, ", ") + "]"
}

func (*FunctionDef) stmt()         {}
func (*FunctionReturn) stmt()      {}
func (*ImportStmt) stmt()          {}
func (*ImportFromStmt) stmt()      {}
func (*Assignment) stmt()          {}
func (*VariableDeclaration) stmt() {}
func (*ExprStmt) stmt()            {}
func (*If) stmt()                  {}
func (*While) stmt()               {}
func (*ForRangeLoop) stmt()        {}
func (*ForInLoop) stmt()           {}
func (*Break) stmt()               {}
func (*Continue) stmt()            {}
func (*WithStmt) stmt()            {}

func checkAliases(kind Kind, names []*AliasExpr, opts []Option) error {
	if len(names) == 0 {
		return violation(kind, opts, "no names to import")
	}
	for i, name := range names {
		if !isBuilt(name) {
			return violation(kind, opts, "name %d is missing", i)
		}
	}
	return nil
}

func joinAliases(names []*AliasExpr) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name.name
		if name.asName != "" {
			parts[i] += " as " + name.asName
		}
	}
	return strings.Join(parts, ", ")
}

// Block is an ordered sequence of statements. An empty Block is legal.
type Block struct {
	nodeBase
	stmts []Stmt
}

// NewBlock builds a new Block.
func NewBlock(stmts []Stmt, opts ...Option) (*Block, error) {
	if i := slices.IndexFunc(stmts, func(s Stmt) bool { return isNil(s) }); i >= 0 {
		return nil, violation(KindBlock, opts, "statement %d is missing", i)
	}
	return &Block{nodeBase: newBase(opts), stmts: slices.Clone(stmts)}, nil
}

// Stmts returns the block's statements, in order. The returned slice must
// not be modified.
func (n *Block) Stmts() []Stmt { return n.stmts }

// Len returns the number of statements in the block.
func (n *Block) Len() int { return len(n.stmts) }

// Kind implements [Node].
func (*Block) Kind() Kind { return KindBlock }

// Children implements [Node].
func (n *Block) Children() iter.Seq[Node] { return childSeq(n.stmts) }

// String implements [fmt.Stringer].
func (n *Block) String() string { return "Block[" + strconv.Itoa(len(n.stmts)) + "]" }

// Module is a named top-level sequence of statements, such as a file.
type Module struct {
	nodeBase
	name  string
	stmts []Stmt
}

// NewModule builds a new Module. name may be empty.
func NewModule(name string, stmts []Stmt, opts ...Option) (*Module, error) {
	if name != "" && !IsDottedName(name) {
		return nil, violation(KindModule, opts, "%q is not a valid dotted name", name)
	}
	if i := slices.IndexFunc(stmts, func(s Stmt) bool { return isNil(s) }); i >= 0 {
		return nil, violation(KindModule, opts, "statement %d is missing", i)
	}
	return &Module{nodeBase: newBase(opts), name: name, stmts: slices.Clone(stmts)}, nil
}

// Name returns the module's name, which may be empty.
func (n *Module) Name() string { return n.name }

// Stmts returns the module's statements, in order. The returned slice must
// not be modified.
func (n *Module) Stmts() []Stmt { return n.stmts }

// Kind implements [Node].
func (*Module) Kind() Kind { return KindModule }

// Children implements [Node].
func (n *Module) Children() iter.Seq[Node] { return childSeq(n.stmts) }

// String implements [fmt.Stringer].
func (n *Module) String() string { return "Module[" + n.name + "]" }
