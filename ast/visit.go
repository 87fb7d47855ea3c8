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

// Visitor is a backend over the syntax tree: one method per [Kind].
//
// Because there is one method per kind, adding a kind to this package breaks
// the build of every Visitor implementation until it handles the new kind.
// Backends that are intentionally partial may embed [Unimplemented].
type Visitor[R any] interface {
	// Literals.
	VisitLiteralInt32(*LiteralInt32) (R, error)
	VisitLiteralInt64(*LiteralInt64) (R, error)
	VisitLiteralFloat64(*LiteralFloat64) (R, error)
	VisitLiteralBoolean(*LiteralBoolean) (R, error)
	VisitLiteralString(*LiteralString) (R, error)
	VisitLiteralNone(*LiteralNone) (R, error)

	// Expressions.
	VisitVariable(*Variable) (R, error)
	VisitBinaryOp(*BinaryOp) (R, error)
	VisitUnaryOp(*UnaryOp) (R, error)
	VisitCall(*Call) (R, error)
	VisitLambda(*Lambda) (R, error)
	VisitIfExpr(*IfExpr) (R, error)
	VisitListExpr(*ListExpr) (R, error)
	VisitTupleExpr(*TupleExpr) (R, error)
	VisitSubscript(*Subscript) (R, error)

	// Declarations and auxiliary nodes.
	VisitAliasExpr(*AliasExpr) (R, error)
	VisitWithItem(*WithItem) (R, error)
	VisitArgument(*Argument) (R, error)
	VisitArguments(*Arguments) (R, error)
	VisitFunctionPrototype(*FunctionPrototype) (R, error)

	// Statements.
	VisitFunctionDef(*FunctionDef) (R, error)
	VisitFunctionReturn(*FunctionReturn) (R, error)
	VisitImportStmt(*ImportStmt) (R, error)
	VisitImportFromStmt(*ImportFromStmt) (R, error)
	VisitAssignment(*Assignment) (R, error)
	VisitVariableDeclaration(*VariableDeclaration) (R, error)
	VisitExprStmt(*ExprStmt) (R, error)
	VisitIf(*If) (R, error)
	VisitWhile(*While) (R, error)
	VisitForRangeLoop(*ForRangeLoop) (R, error)
	VisitForInLoop(*ForInLoop) (R, error)
	VisitBreak(*Break) (R, error)
	VisitContinue(*Continue) (R, error)
	VisitWithStmt(*WithStmt) (R, error)

	// Containers.
	VisitBlock(*Block) (R, error)
	VisitModule(*Module) (R, error)
}

// Visit calls the method of v that corresponds to n's kind.
//
// It returns an [ErrUnsupportedNodeKind] error if n has no valid kind, and an
// [ErrMalformedNode] error if n's concrete type does not match its kind.
func Visit[R any](v Visitor[R], n Node) (R, error) {
	var zero R
	if isNil(n) {
		return zero, Unsupported(nil)
	}
	switch n.Kind() {
	case KindLiteralInt32:
		return dispatch(n, v.VisitLiteralInt32)
	case KindLiteralInt64:
		return dispatch(n, v.VisitLiteralInt64)
	case KindLiteralFloat64:
		return dispatch(n, v.VisitLiteralFloat64)
	case KindLiteralBoolean:
		return dispatch(n, v.VisitLiteralBoolean)
	case KindLiteralString:
		return dispatch(n, v.VisitLiteralString)
	case KindLiteralNone:
		return dispatch(n, v.VisitLiteralNone)
	case KindVariable:
		return dispatch(n, v.VisitVariable)
	case KindBinaryOp:
		return dispatch(n, v.VisitBinaryOp)
	case KindUnaryOp:
		return dispatch(n, v.VisitUnaryOp)
	case KindCall:
		return dispatch(n, v.VisitCall)
	case KindLambda:
		return dispatch(n, v.VisitLambda)
	case KindIfExpr:
		return dispatch(n, v.VisitIfExpr)
	case KindListExpr:
		return dispatch(n, v.VisitListExpr)
	case KindTupleExpr:
		return dispatch(n, v.VisitTupleExpr)
	case KindSubscript:
		return dispatch(n, v.VisitSubscript)
	case KindAliasExpr:
		return dispatch(n, v.VisitAliasExpr)
	case KindWithItem:
		return dispatch(n, v.VisitWithItem)
	case KindArgument:
		return dispatch(n, v.VisitArgument)
	case KindArguments:
		return dispatch(n, v.VisitArguments)
	case KindFunctionPrototype:
		return dispatch(n, v.VisitFunctionPrototype)
	case KindFunctionDef:
		return dispatch(n, v.VisitFunctionDef)
	case KindFunctionReturn:
		return dispatch(n, v.VisitFunctionReturn)
	case KindImportStmt:
		return dispatch(n, v.VisitImportStmt)
	case KindImportFromStmt:
		return dispatch(n, v.VisitImportFromStmt)
	case KindAssignment:
		return dispatch(n, v.VisitAssignment)
	case KindVariableDeclaration:
		return dispatch(n, v.VisitVariableDeclaration)
	case KindExprStmt:
		return dispatch(n, v.VisitExprStmt)
	case KindIf:
		return dispatch(n, v.VisitIf)
	case KindWhile:
		return dispatch(n, v.VisitWhile)
	case KindForRangeLoop:
		return dispatch(n, v.VisitForRangeLoop)
	case KindForInLoop:
		return dispatch(n, v.VisitForInLoop)
	case KindBreak:
		return dispatch(n, v.VisitBreak)
	case KindContinue:
		return dispatch(n, v.VisitContinue)
	case KindWithStmt:
		return dispatch(n, v.VisitWithStmt)
	case KindBlock:
		return dispatch(n, v.VisitBlock)
	case KindModule:
		return dispatch(n, v.VisitModule)
	default:
		return zero, Unsupported(n)
	}
}

func dispatch[N Node, R any](n Node, visit func(N) (R, error)) (R, error) {
	m, ok := n.(N)
	if !ok {
		var zero R
		return zero, Malformed(n, "node of type %T claims kind %v", n, n.Kind())
	}
	if !isBuilt(m) {
		var zero R
		return zero, Malformed(n, "node was not built by its constructor")
	}
	return visit(m)
}

// Unimplemented implements every method of [Visitor] by returning an
// [ErrUnsupportedNodeKind] error. Embed it in a backend that only handles
// some kinds.
type Unimplemented[R any] struct{}

var _ Visitor[any] = Unimplemented[any]{}

func (Unimplemented[R]) VisitLiteralInt32(n *LiteralInt32) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitLiteralInt64(n *LiteralInt64) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitLiteralFloat64(n *LiteralFloat64) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitLiteralBoolean(n *LiteralBoolean) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitLiteralString(n *LiteralString) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitLiteralNone(n *LiteralNone) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitVariable(n *Variable) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitBinaryOp(n *BinaryOp) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitUnaryOp(n *UnaryOp) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitCall(n *Call) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitLambda(n *Lambda) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitIfExpr(n *IfExpr) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitListExpr(n *ListExpr) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitTupleExpr(n *TupleExpr) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitSubscript(n *Subscript) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitAliasExpr(n *AliasExpr) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitWithItem(n *WithItem) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitArgument(n *Argument) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitArguments(n *Arguments) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitFunctionPrototype(n *FunctionPrototype) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitFunctionDef(n *FunctionDef) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitFunctionReturn(n *FunctionReturn) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitImportStmt(n *ImportStmt) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitImportFromStmt(n *ImportFromStmt) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitAssignment(n *Assignment) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitVariableDeclaration(n *VariableDeclaration) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitExprStmt(n *ExprStmt) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitIf(n *If) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitWhile(n *While) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitForRangeLoop(n *ForRangeLoop) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitForInLoop(n *ForInLoop) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitBreak(n *Break) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitContinue(n *Continue) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitWithStmt(n *WithStmt) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitBlock(n *Block) (R, error) { return unsupported[R](n) }
func (Unimplemented[R]) VisitModule(n *Module) (R, error) { return unsupported[R](n) }

func unsupported[R any](n Node) (R, error) {
	var zero R
	return zero, Unsupported(n)
}
