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
)

// Variable is a reference to a name.
type Variable struct {
	nodeBase
	name string
}

// NewVariable builds a new Variable.
func NewVariable(name string, opts ...Option) (*Variable, error) {
	if !IsIdent(name) {
		return nil, violation(KindVariable, opts, "%q is not a valid identifier", name)
	}
	return &Variable{nodeBase: newBase(opts), name: name}, nil
}

// Name returns the referenced name.
func (n *Variable) Name() string { return n.name }

// Kind implements [Node].
func (*Variable) Kind() Kind { return KindVariable }

// Children implements [Node].
func (*Variable) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *Variable) String() string { return "Variable[" + n.name + "]" }

// BinaryOp applies a binary operator to two operands.
type BinaryOp struct {
	nodeBase
	op       BinaryOperator
	lhs, rhs Expr
}

// NewBinaryOp builds a new BinaryOp.
func NewBinaryOp(op BinaryOperator, lhs, rhs Expr, opts ...Option) (*BinaryOp, error) {
	switch {
	case !op.IsValid():
		return nil, violation(KindBinaryOp, opts, "unknown binary operator %q", op)
	case isNil(lhs):
		return nil, violation(KindBinaryOp, opts, "missing left operand of %q", op)
	case isNil(rhs):
		return nil, violation(KindBinaryOp, opts, "missing right operand of %q", op)
	}
	return &BinaryOp{nodeBase: newBase(opts), op: op, lhs: lhs, rhs: rhs}, nil
}

// Op returns this expression's operator.
func (n *BinaryOp) Op() BinaryOperator { return n.op }

// LHS returns the left operand.
func (n *BinaryOp) LHS() Expr { return n.lhs }

// RHS returns the right operand.
func (n *BinaryOp) RHS() Expr { return n.rhs }

// Kind implements [Node].
func (*BinaryOp) Kind() Kind { return KindBinaryOp }

// Children implements [Node].
func (n *BinaryOp) Children() iter.Seq[Node] { return children(n.lhs, n.rhs) }

// String implements [fmt.Stringer].
func (n *BinaryOp) String() string { return "BinaryOp[" + string(n.op) + "]" }

// UnaryOp applies a prefix operator to an operand.
type UnaryOp struct {
	nodeBase
	op      UnaryOperator
	operand Expr
}

// NewUnaryOp builds a new UnaryOp.
func NewUnaryOp(op UnaryOperator, operand Expr, opts ...Option) (*UnaryOp, error) {
	switch {
	case !op.IsValid():
		return nil, violation(KindUnaryOp, opts, "unknown unary operator %q", op)
	case isNil(operand):
		return nil, violation(KindUnaryOp, opts, "missing operand of %q", op)
	}
	return &UnaryOp{nodeBase: newBase(opts), op: op, operand: operand}, nil
}

// Op returns this expression's operator.
func (n *UnaryOp) Op() UnaryOperator { return n.op }

// Operand returns the operand.
func (n *UnaryOp) Operand() Expr { return n.operand }

// Kind implements [Node].
func (*UnaryOp) Kind() Kind { return KindUnaryOp }

// Children implements [Node].
func (n *UnaryOp) Children() iter.Seq[Node] { return children(n.operand) }

// String implements [fmt.Stringer].
func (n *UnaryOp) String() string { return "UnaryOp[" + string(n.op) + "]" }

// Call calls a function by name with positional arguments.
type Call struct {
	nodeBase
	callee string
	args   []Expr
}

// NewCall builds a new Call. callee may be a dotted name, such as
// "os.path.join".
func NewCall(callee string, args []Expr, opts ...Option) (*Call, error) {
	if !IsDottedName(callee) {
		return nil, violation(KindCall, opts, "%q is not a valid function name", callee)
	}
	if i := slices.IndexFunc(args, func(e Expr) bool { return isNil(e) }); i >= 0 {
		return nil, violation(KindCall, opts, "argument %d of call to %q is missing", i, callee)
	}
	return &Call{nodeBase: newBase(opts), callee: callee, args: slices.Clone(args)}, nil
}

// Callee returns the called function's name.
func (n *Call) Callee() string { return n.callee }

// Args returns the call's arguments, in order. The returned slice must not be
// modified.
func (n *Call) Args() []Expr { return n.args }

// Kind implements [Node].
func (*Call) Kind() Kind { return KindCall }

// Children implements [Node].
func (n *Call) Children() iter.Seq[Node] { return childSeq(n.args) }

// String implements [fmt.Stringer].
func (n *Call) String() string { return "Call[" + n.callee + "]" }

// Lambda is an anonymous function whose body is a single expression.
type Lambda struct {
	nodeBase
	params *Arguments
	body   Expr
}

// NewLambda builds a new Lambda.
func NewLambda(params *Arguments, body Expr, opts ...Option) (*Lambda, error) {
	switch {
	case !isBuilt(params):
		return nil, violation(KindLambda, opts, "missing parameter list")
	case isNil(body):
		return nil, violation(KindLambda, opts, "missing body")
	}
	return &Lambda{nodeBase: newBase(opts), params: params, body: body}, nil
}

// Params returns the lambda's parameters.
func (n *Lambda) Params() *Arguments { return n.params }

// Body returns the lambda's body.
func (n *Lambda) Body() Expr { return n.body }

// Kind implements [Node].
func (*Lambda) Kind() Kind { return KindLambda }

// Children implements [Node].
func (n *Lambda) Children() iter.Seq[Node] { return children(n.params, n.body) }

// String implements [fmt.Stringer].
func (n *Lambda) String() string { return "Lambda" }

// IfExpr is a conditional expression: Then if Cond holds, else Else.
type IfExpr struct {
	nodeBase
	cond, then, els Expr
}

// NewIfExpr builds a new IfExpr.
func NewIfExpr(cond, then, els Expr, opts ...Option) (*IfExpr, error) {
	switch {
	case isNil(cond):
		return nil, violation(KindIfExpr, opts, "missing condition")
	case isNil(then):
		return nil, violation(KindIfExpr, opts, "missing then-value")
	case isNil(els):
		return nil, violation(KindIfExpr, opts, "missing else-value")
	}
	return &IfExpr{nodeBase: newBase(opts), cond: cond, then: then, els: els}, nil
}

// Cond returns the condition.
func (n *IfExpr) Cond() Expr { return n.cond }

// Then returns the value when the condition holds.
func (n *IfExpr) Then() Expr { return n.then }

// Else returns the value when the condition does not hold.
func (n *IfExpr) Else() Expr { return n.els }

// Kind implements [Node].
func (*IfExpr) Kind() Kind { return KindIfExpr }

// Children implements [Node].
func (n *IfExpr) Children() iter.Seq[Node] { return children(n.cond, n.then, n.els) }

// String implements [fmt.Stringer].
func (*IfExpr) String() string { return "IfExpr" }

// ListExpr is a list display.
type ListExpr struct {
	nodeBase
	elems []Expr
}

// NewListExpr builds a new ListExpr.
func NewListExpr(elems []Expr, opts ...Option) (*ListExpr, error) {
	if i := slices.IndexFunc(elems, func(e Expr) bool { return isNil(e) }); i >= 0 {
		return nil, violation(KindListExpr, opts, "element %d is missing", i)
	}
	return &ListExpr{nodeBase: newBase(opts), elems: slices.Clone(elems)}, nil
}

// Elems returns the list's elements. The returned slice must not be modified.
func (n *ListExpr) Elems() []Expr { return n.elems }

// Kind implements [Node].
func (*ListExpr) Kind() Kind { return KindListExpr }

// Children implements [Node].
func (n *ListExpr) Children() iter.Seq[Node] { return childSeq(n.elems) }

// String implements [fmt.Stringer].
func (*ListExpr) String() string { return "ListExpr" }

// TupleExpr is a tuple display.
type TupleExpr struct {
	nodeBase
	elems []Expr
}

// NewTupleExpr builds a new TupleExpr.
func NewTupleExpr(elems []Expr, opts ...Option) (*TupleExpr, error) {
	if i := slices.IndexFunc(elems, func(e Expr) bool { return isNil(e) }); i >= 0 {
		return nil, violation(KindTupleExpr, opts, "element %d is missing", i)
	}
	return &TupleExpr{nodeBase: newBase(opts), elems: slices.Clone(elems)}, nil
}

// Elems returns the tuple's elements. The returned slice must not be
// modified.
func (n *TupleExpr) Elems() []Expr { return n.elems }

// Kind implements [Node].
func (*TupleExpr) Kind() Kind { return KindTupleExpr }

// Children implements [Node].
func (n *TupleExpr) Children() iter.Seq[Node] { return childSeq(n.elems) }

// String implements [fmt.Stringer].
func (*TupleExpr) String() string { return "TupleExpr" }

// Subscript indexes into a value.
type Subscript struct {
	nodeBase
	value, index Expr
}

// NewSubscript builds a new Subscript.
func NewSubscript(value, index Expr, opts ...Option) (*Subscript, error) {
	switch {
	case isNil(value):
		return nil, violation(KindSubscript, opts, "missing indexed value")
	case isNil(index):
		return nil, violation(KindSubscript, opts, "missing index")
	}
	return &Subscript{nodeBase: newBase(opts), value: value, index: index}, nil
}

// Value returns the indexed value.
func (n *Subscript) Value() Expr { return n.value }

// Index returns the index.
func (n *Subscript) Index() Expr { return n.index }

// Kind implements [Node].
func (*Subscript) Kind() Kind { return KindSubscript }

// Children implements [Node].
func (n *Subscript) Children() iter.Seq[Node] { return children(n.value, n.index) }

// String implements [fmt.Stringer].
func (*Subscript) String() string { return "Subscript" }

func (*Variable) expr()  {}
func (*BinaryOp) expr()  {}
func (*UnaryOp) expr()   {}
func (*Call) expr()      {}
func (*Lambda) expr()    {}
func (*IfExpr) expr()    {}
func (*ListExpr) expr()  {}
func (*TupleExpr) expr() {}
func (*Subscript) expr() {}
