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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/astx/ast"
)

// evaluator is a deliberately partial backend: it folds integer arithmetic
// and nothing else.
type evaluator struct {
	ast.Unimplemented[int64]
}

func (evaluator) VisitLiteralInt32(n *ast.LiteralInt32) (int64, error) {
	return int64(n.Int()), nil
}

func (e evaluator) VisitBinaryOp(n *ast.BinaryOp) (int64, error) {
	lhs, err := ast.Visit[int64](e, n.LHS())
	if err != nil {
		return 0, err
	}
	rhs, err := ast.Visit[int64](e, n.RHS())
	if err != nil {
		return 0, err
	}
	switch n.Op() {
	case ast.OpAdd:
		return lhs + rhs, nil
	case ast.OpMul:
		return lhs * rhs, nil
	default:
		return 0, ast.Unsupported(n)
	}
}

func TestVisit(t *testing.T) {
	t.Parallel()

	sum := ast.Must(ast.NewBinaryOp(ast.OpMul,
		ast.Must(ast.NewBinaryOp(ast.OpAdd, i32(5), i32(3))),
		i32(2),
	))
	got, err := ast.Visit[int64](evaluator{}, sum)
	require.NoError(t, err)
	assert.Equal(t, int64(16), got)
}

func TestVisitUnsupported(t *testing.T) {
	t.Parallel()

	tree := ast.Must(ast.NewBinaryOp(ast.OpAdd, i32(1), v("x")))
	_, err := ast.Visit[int64](evaluator{}, tree)
	require.ErrorIs(t, err, ast.ErrUnsupportedNodeKind)

	var astErr *ast.Error
	require.ErrorAs(t, err, &astErr)
	assert.Equal(t, ast.KindVariable, astErr.Kind)

	_, err = ast.Visit[int64](evaluator{}, nil)
	require.ErrorIs(t, err, ast.ErrUnsupportedNodeKind)
}

func TestVisitMalformed(t *testing.T) {
	t.Parallel()

	_, err := ast.Visit[int64](evaluator{}, &ast.LiteralInt32{})
	require.ErrorIs(t, err, ast.ErrMalformedNode)
}

// kindNamer returns the kind name of every node it visits, and so covers
// every method of [ast.Visitor].
type kindNamer struct{}

var _ ast.Visitor[string] = kindNamer{}

func name(n ast.Node) (string, error) { return n.Kind().String(), nil }

func (kindNamer) VisitLiteralInt32(n *ast.LiteralInt32) (string, error)     { return name(n) }
func (kindNamer) VisitLiteralInt64(n *ast.LiteralInt64) (string, error)     { return name(n) }
func (kindNamer) VisitLiteralFloat64(n *ast.LiteralFloat64) (string, error) { return name(n) }
func (kindNamer) VisitLiteralBoolean(n *ast.LiteralBoolean) (string, error) { return name(n) }
func (kindNamer) VisitLiteralString(n *ast.LiteralString) (string, error)   { return name(n) }
func (kindNamer) VisitLiteralNone(n *ast.LiteralNone) (string, error)       { return name(n) }
func (kindNamer) VisitVariable(n *ast.Variable) (string, error)             { return name(n) }
func (kindNamer) VisitBinaryOp(n *ast.BinaryOp) (string, error)             { return name(n) }
func (kindNamer) VisitUnaryOp(n *ast.UnaryOp) (string, error)               { return name(n) }
func (kindNamer) VisitCall(n *ast.Call) (string, error)                     { return name(n) }
func (kindNamer) VisitLambda(n *ast.Lambda) (string, error)                 { return name(n) }
func (kindNamer) VisitIfExpr(n *ast.IfExpr) (string, error)                 { return name(n) }
func (kindNamer) VisitListExpr(n *ast.ListExpr) (string, error)             { return name(n) }
func (kindNamer) VisitTupleExpr(n *ast.TupleExpr) (string, error)           { return name(n) }
func (kindNamer) VisitSubscript(n *ast.Subscript) (string, error)           { return name(n) }
func (kindNamer) VisitAliasExpr(n *ast.AliasExpr) (string, error)           { return name(n) }
func (kindNamer) VisitWithItem(n *ast.WithItem) (string, error)             { return name(n) }
func (kindNamer) VisitArgument(n *ast.Argument) (string, error)             { return name(n) }
func (kindNamer) VisitArguments(n *ast.Arguments) (string, error)           { return name(n) }
func (kindNamer) VisitFunctionPrototype(n *ast.FunctionPrototype) (string, error) {
	return name(n)
}
func (kindNamer) VisitFunctionDef(n *ast.FunctionDef) (string, error)       { return name(n) }
func (kindNamer) VisitFunctionReturn(n *ast.FunctionReturn) (string, error) { return name(n) }
func (kindNamer) VisitImportStmt(n *ast.ImportStmt) (string, error)         { return name(n) }
func (kindNamer) VisitImportFromStmt(n *ast.ImportFromStmt) (string, error) { return name(n) }
func (kindNamer) VisitAssignment(n *ast.Assignment) (string, error)         { return name(n) }
func (kindNamer) VisitVariableDeclaration(n *ast.VariableDeclaration) (string, error) {
	return name(n)
}
func (kindNamer) VisitExprStmt(n *ast.ExprStmt) (string, error)         { return name(n) }
func (kindNamer) VisitIf(n *ast.If) (string, error)                     { return name(n) }
func (kindNamer) VisitWhile(n *ast.While) (string, error)               { return name(n) }
func (kindNamer) VisitForRangeLoop(n *ast.ForRangeLoop) (string, error) { return name(n) }
func (kindNamer) VisitForInLoop(n *ast.ForInLoop) (string, error)       { return name(n) }
func (kindNamer) VisitBreak(n *ast.Break) (string, error)               { return name(n) }
func (kindNamer) VisitContinue(n *ast.Continue) (string, error)         { return name(n) }
func (kindNamer) VisitWithStmt(n *ast.WithStmt) (string, error)         { return name(n) }
func (kindNamer) VisitBlock(n *ast.Block) (string, error)               { return name(n) }
func (kindNamer) VisitModule(n *ast.Module) (string, error)             { return name(n) }

// everyKind returns one node of every kind.
func everyKind() []ast.Node {
	args := ast.Must(ast.NewArguments([]*ast.Argument{arg("x", nil)}))
	proto := ast.Must(ast.NewFunctionPrototype("f", args, ast.TypeInt32))
	alias := ast.Must(ast.NewAliasExpr("os", ""))
	item := ast.Must(ast.NewWithItem(v("x"), ""))
	return []ast.Node{
		i32(1),
		ast.Must(ast.NewLiteralInt64(1)),
		ast.Must(ast.NewLiteralFloat64(1)),
		ast.Must(ast.NewLiteralBoolean(true)),
		ast.Must(ast.NewLiteralString("s")),
		ast.Must(ast.NewLiteralNone()),
		v("x"),
		ast.Must(ast.NewBinaryOp(ast.OpAdd, v("x"), v("y"))),
		ast.Must(ast.NewUnaryOp(ast.OpNeg, v("x"))),
		ast.Must(ast.NewCall("f", nil)),
		ast.Must(ast.NewLambda(args, v("x"))),
		ast.Must(ast.NewIfExpr(v("c"), v("x"), v("y"))),
		ast.Must(ast.NewListExpr(nil)),
		ast.Must(ast.NewTupleExpr(nil)),
		ast.Must(ast.NewSubscript(v("x"), i32(0))),
		alias,
		item,
		arg("x", nil),
		args,
		proto,
		ast.Must(ast.NewFunctionDef(proto, block())),
		ast.Must(ast.NewFunctionReturn(nil)),
		ast.Must(ast.NewImportStmt([]*ast.AliasExpr{alias})),
		ast.Must(ast.NewImportFromStmt("", 1, []*ast.AliasExpr{alias})),
		ast.Must(ast.NewAssignment("x", i32(1))),
		ast.Must(ast.NewVariableDeclaration("x", ast.TypeInt32, nil)),
		ast.Must(ast.NewExprStmt(v("x"))),
		ast.Must(ast.NewIf(v("c"), block(), nil)),
		ast.Must(ast.NewWhile(v("c"), block())),
		ast.Must(ast.NewForRangeLoop("i", i32(0), i32(1), nil, block())),
		ast.Must(ast.NewForInLoop("x", v("xs"), block())),
		ast.Must(ast.NewBreak()),
		ast.Must(ast.NewContinue()),
		ast.Must(ast.NewWithStmt([]*ast.WithItem{item}, block())),
		block(),
		ast.Must(ast.NewModule("m", nil)),
	}
}

func TestVisitEveryKind(t *testing.T) {
	t.Parallel()

	nodes := everyKind()
	require.Len(t, nodes, len(ast.Kinds()))
	for i, kind := range ast.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			n := nodes[i]
			assert.Equal(t, kind, n.Kind())
			assert.Equal(t, kind.IsExpr(), isExpr(n))
			assert.Equal(t, kind.IsStmt(), isStmt(n))

			got, err := ast.Visit[string](kindNamer{}, n)
			require.NoError(t, err)
			assert.Equal(t, kind.String(), got)

			_, err = ast.Visit[int64](ast.Unimplemented[int64]{}, n)
			require.ErrorIs(t, err, ast.ErrUnsupportedNodeKind)
			assert.Contains(t, err.Error(), kind.String()+n.ID().String())
		})
	}
}

func isExpr(n ast.Node) bool {
	_, ok := n.(ast.Expr)
	return ok
}

func isStmt(n ast.Node) bool {
	_, ok := n.(ast.Stmt)
	return ok
}
