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
	"strings"

	"github.com/bufbuild/astx/ast"
	"github.com/bufbuild/astx/internal/ext/stringsx"
	"github.com/bufbuild/astx/ir"
	"github.com/bufbuild/astx/reporter"
	"github.com/bufbuild/astx/symtab"
)

// renderer lowers a syntax tree into the intermediate form. It is not safe
// for concurrent use; each call to [Lower] makes its own.
type renderer struct {
	options Options
	symbols *symtab.Table
	handler *reporter.Handler
}

var _ ast.Visitor[ir.Node] = (*renderer)(nil)

func newRenderer(options Options) *renderer {
	return &renderer{
		options: options,
		symbols: symtab.New(builtins...),
		handler: reporter.NewHandler(options.Reporter),
	}
}

func (r *renderer) node(n ast.Node) (ir.Node, error) {
	return ast.Visit[ir.Node](r, n)
}

func (r *renderer) expr(n ast.Expr) (ir.Expr, error) {
	lowered, err := ast.Visit[ir.Node](r, n)
	if err != nil {
		return nil, err
	}
	x, ok := lowered.(ir.Expr)
	if !ok {
		return nil, ast.Malformed(n, "expression lowered to %T", lowered)
	}
	return x, nil
}

func (r *renderer) exprs(ns []ast.Expr) ([]ir.Expr, error) {
	xs := make([]ir.Expr, 0, len(ns))
	for _, n := range ns {
		x, err := r.expr(n)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// use records a reference to name, warning if no scope declares it.
func (r *renderer) use(n ast.Node, name string) {
	if _, ok := r.symbols.Lookup(name); ok {
		return
	}
	r.options.Logger.Warn("undeclared name",
		"name", name,
		"kind", n.Kind(),
		"id", n.ID(),
		"pos", n.Pos(),
	)
	r.handler.HandleWarning(ast.NewError(n, ErrUndeclaredName, "%q is not declared", name))
}

func (r *renderer) typeName(n ast.Node, t ast.DataType) (string, error) {
	name, ok := typeNames[t]
	if !ok {
		return "", ast.Malformed(n, "no Python type for %v", t)
	}
	return name, nil
}

// ident checks that name, and each part of it if it is dotted, can be
// spelled in Python.
func ident(n ast.Node, name string) error {
	for part := range stringsx.Split(name, '.') {
		if keywords[part] {
			return ast.Malformed(n, "%q is a Python keyword", part)
		}
	}
	return nil
}

func number(text string, negative bool) *ir.Atom {
	atom := &ir.Atom{Text: text}
	if negative {
		atom.Level = precUnary
	}
	return atom
}

// Literals.

func (r *renderer) VisitLiteralInt32(n *ast.LiteralInt32) (ir.Node, error) {
	return number(formatInt(int64(n.Int())), n.Int() < 0), nil
}

func (r *renderer) VisitLiteralInt64(n *ast.LiteralInt64) (ir.Node, error) {
	return number(formatInt(n.Int()), n.Int() < 0), nil
}

func (r *renderer) VisitLiteralFloat64(n *ast.LiteralFloat64) (ir.Node, error) {
	return number(formatFloat(n.Float()), isNegative(n.Float())), nil
}

func (r *renderer) VisitLiteralBoolean(n *ast.LiteralBoolean) (ir.Node, error) {
	if n.Bool() {
		return &ir.Atom{Text: "True"}, nil
	}
	return &ir.Atom{Text: "False"}, nil
}

func (r *renderer) VisitLiteralString(n *ast.LiteralString) (ir.Node, error) {
	return &ir.Atom{Text: quote(n.Text())}, nil
}

func (r *renderer) VisitLiteralNone(*ast.LiteralNone) (ir.Node, error) {
	return &ir.Atom{Text: "None"}, nil
}

// Expressions.

func (r *renderer) VisitVariable(n *ast.Variable) (ir.Node, error) {
	if err := ident(n, n.Name()); err != nil {
		return nil, err
	}
	r.use(n, n.Name())
	return &ir.Atom{Text: n.Name()}, nil
}

func (r *renderer) VisitBinaryOp(n *ast.BinaryOp) (ir.Node, error) {
	op, ok := binaryOps[n.Op()]
	if !ok {
		return nil, ast.Malformed(n, "no Python operator for %q", n.Op())
	}
	lhs, err := r.expr(n.LHS())
	if err != nil {
		return nil, err
	}
	rhs, err := r.expr(n.RHS())
	if err != nil {
		return nil, err
	}
	return &ir.Binary{Op: op, Left: lhs, Right: rhs}, nil
}

func (r *renderer) VisitUnaryOp(n *ast.UnaryOp) (ir.Node, error) {
	op, ok := unaryOps[n.Op()]
	if !ok {
		return nil, ast.Malformed(n, "no Python operator for %q", n.Op())
	}
	operand, err := r.expr(n.Operand())
	if err != nil {
		return nil, err
	}
	return &ir.Unary{Op: op, Operand: operand}, nil
}

func (r *renderer) VisitCall(n *ast.Call) (ir.Node, error) {
	if err := ident(n, n.Callee()); err != nil {
		return nil, err
	}
	root, _, _ := strings.Cut(n.Callee(), ".")
	r.use(n, root)
	args, err := r.exprs(n.Args())
	if err != nil {
		return nil, err
	}
	return &ir.Apply{
		Callee: &ir.Atom{Text: n.Callee()},
		Open:   "(",
		Close:  ")",
		Args:   args,
		Level:  precCall,
	}, nil
}

func (r *renderer) VisitLambda(n *ast.Lambda) (ir.Node, error) {
	params := n.Params()
	for _, arg := range params.All() {
		if err := ident(arg, arg.Name()); err != nil {
			return nil, err
		}
	}
	defaults, err := r.defaults(params)
	if err != nil {
		return nil, err
	}

	var body ir.Expr
	r.symbols.Scoped(func() {
		r.declare(params)
		body, err = r.expr(n.Body())
	})
	if err != nil {
		return nil, err
	}

	// Lambda parameters cannot be annotated.
	parts := []ir.Part{ir.Text("lambda")}
	for i, arg := range params.All() {
		if i == 0 {
			parts = append(parts, ir.Text(" "))
		} else {
			parts = append(parts, ir.Text(", "))
		}
		parts = append(parts, ir.Text(arg.Name()))
		if defaults[i] != nil {
			parts = append(parts, ir.Text("="), ir.Slot(defaults[i], precLambda))
		}
	}
	parts = append(parts, ir.Text(": "), ir.Slot(body, precLambda))
	return &ir.Template{Level: precLambda, Parts: parts}, nil
}

func (r *renderer) VisitIfExpr(n *ast.IfExpr) (ir.Node, error) {
	cond, err := r.expr(n.Cond())
	if err != nil {
		return nil, err
	}
	then, err := r.expr(n.Then())
	if err != nil {
		return nil, err
	}
	els, err := r.expr(n.Else())
	if err != nil {
		return nil, err
	}
	return &ir.Template{
		Level: precCond,
		Parts: []ir.Part{
			ir.Slot(then, precOr),
			ir.Text(" if "),
			ir.Slot(cond, precOr),
			ir.Text(" else "),
			ir.Slot(els, precCond),
		},
	}, nil
}

func (r *renderer) VisitListExpr(n *ast.ListExpr) (ir.Node, error) {
	elems, err := r.exprs(n.Elems())
	if err != nil {
		return nil, err
	}
	return &ir.Group{Open: "[", Close: "]", Items: elems}, nil
}

func (r *renderer) VisitTupleExpr(n *ast.TupleExpr) (ir.Node, error) {
	elems, err := r.exprs(n.Elems())
	if err != nil {
		return nil, err
	}
	return &ir.Group{Open: "(", Close: ")", Items: elems, Trailing: true}, nil
}

func (r *renderer) VisitSubscript(n *ast.Subscript) (ir.Node, error) {
	value, err := r.expr(n.Value())
	if err != nil {
		return nil, err
	}
	index, err := r.expr(n.Index())
	if err != nil {
		return nil, err
	}
	return &ir.Apply{
		Callee: value,
		Open:   "[",
		Close:  "]",
		Args:   []ir.Expr{index},
		Level:  precCall,
	}, nil
}

// Declarations and auxiliary nodes.

func (r *renderer) VisitAliasExpr(n *ast.AliasExpr) (ir.Node, error) {
	text, err := alias(n)
	if err != nil {
		return nil, err
	}
	return &ir.Atom{Text: text}, nil
}

func (r *renderer) VisitWithItem(n *ast.WithItem) (ir.Node, error) {
	parts, err := r.withItem(n)
	if err != nil {
		return nil, err
	}
	return &ir.Template{Parts: parts}, nil
}

func (r *renderer) VisitArgument(n *ast.Argument) (ir.Node, error) {
	var deflt ir.Expr
	if n.Default() != nil {
		var err error
		if deflt, err = r.expr(n.Default()); err != nil {
			return nil, err
		}
	}
	return r.param(n, deflt)
}

func (r *renderer) VisitArguments(n *ast.Arguments) (ir.Node, error) {
	return r.params(n)
}

func (r *renderer) VisitFunctionPrototype(n *ast.FunctionPrototype) (ir.Node, error) {
	header, err := r.signature(n)
	if err != nil {
		return nil, err
	}
	r.symbols.Define(n.Name(), symtab.Entry{Kind: symtab.KindFunction, Type: n.ReturnType(), Node: n})
	return &ir.Line{Parts: append(header, ir.Text(": ..."))}, nil
}

func (r *renderer) VisitFunctionDef(n *ast.FunctionDef) (ir.Node, error) {
	proto := n.Prototype()
	header, err := r.signature(proto)
	if err != nil {
		return nil, err
	}
	r.symbols.Define(proto.Name(), symtab.Entry{Kind: symtab.KindFunction, Type: proto.ReturnType(), Node: n})

	var body []ir.Stmt
	r.symbols.Scoped(func() {
		r.declare(proto.Args())
		body, err = r.block(n.Body())
	})
	if err != nil {
		return nil, err
	}
	return &ir.Compound{Clauses: []ir.Clause{{Header: header, Body: body}}}, nil
}

// signature returns the header of a function definition, such as
// "def f(x: int) -> int".
func (r *renderer) signature(n *ast.FunctionPrototype) ([]ir.Part, error) {
	if err := ident(n, n.Name()); err != nil {
		return nil, err
	}
	params, err := r.params(n.Args())
	if err != nil {
		return nil, err
	}
	ret, err := r.typeName(n, n.ReturnType())
	if err != nil {
		return nil, err
	}
	return []ir.Part{
		ir.Text("def " + n.Name()),
		ir.Slot(params, 0),
		ir.Text(" -> " + ret),
	}, nil
}

// params lowers a parameter list. Defaults are evaluated in the current
// scope, before the parameters are declared.
func (r *renderer) params(n *ast.Arguments) (*ir.Group, error) {
	defaults, err := r.defaults(n)
	if err != nil {
		return nil, err
	}
	group := &ir.Group{Open: "(", Close: ")"}
	for i, arg := range n.All() {
		param, err := r.param(arg, defaults[i])
		if err != nil {
			return nil, err
		}
		group.Items = append(group.Items, param)
	}
	return group, nil
}

func (r *renderer) param(n *ast.Argument, deflt ir.Expr) (*ir.Template, error) {
	if err := ident(n, n.Name()); err != nil {
		return nil, err
	}
	typ, err := r.typeName(n, n.Type())
	if err != nil {
		return nil, err
	}
	parts := []ir.Part{ir.Text(n.Name() + ": " + typ)}
	if deflt != nil {
		parts = append(parts, ir.Text(" = "), ir.Slot(deflt, 0))
	}
	return &ir.Template{Parts: parts}, nil
}

// defaults lowers the default values of n's arguments. The result has a nil
// entry for each argument without one.
func (r *renderer) defaults(n *ast.Arguments) ([]ir.Expr, error) {
	if n == nil {
		return nil, nil
	}
	defaults := make([]ir.Expr, n.Len())
	for i, arg := range n.All() {
		if arg.Default() == nil {
			continue
		}
		x, err := r.expr(arg.Default())
		if err != nil {
			return nil, err
		}
		defaults[i] = x
	}
	return defaults, nil
}

// declare defines every argument of n in the current scope.
func (r *renderer) declare(n *ast.Arguments) {
	if n == nil {
		return
	}
	for _, arg := range n.All() {
		r.symbols.Define(arg.Name(), symtab.Entry{Kind: symtab.KindArgument, Type: arg.Type(), Node: arg})
	}
}

func alias(n *ast.AliasExpr) (string, error) {
	if err := ident(n, n.Name()); err != nil {
		return "", err
	}
	if n.AsName() == "" {
		return n.Name(), nil
	}
	if err := ident(n, n.AsName()); err != nil {
		return "", err
	}
	return n.Name() + " as " + n.AsName(), nil
}

func aliases(names []*ast.AliasExpr) (string, error) {
	texts := make([]string, len(names))
	for i, name := range names {
		text, err := alias(name)
		if err != nil {
			return "", err
		}
		texts[i] = text
	}
	return strings.Join(texts, ", "), nil
}
