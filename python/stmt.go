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
	"github.com/bufbuild/astx/ir"
	"github.com/bufbuild/astx/symtab"
)

func (r *renderer) stmt(n ast.Stmt) (ir.Stmt, error) {
	lowered, err := ast.Visit[ir.Node](r, n)
	if err != nil {
		return nil, err
	}
	s, ok := lowered.(ir.Stmt)
	if !ok {
		return nil, ast.Malformed(n, "statement lowered to %T", lowered)
	}
	return s, nil
}

// stmts lowers a statement list. Functions defined anywhere in the list are
// declared before any statement is lowered, since Python resolves names
// when a function is called rather than when it is defined.
func (r *renderer) stmts(ns []ast.Stmt) ([]ir.Stmt, error) {
	for _, n := range ns {
		def, ok := n.(*ast.FunctionDef)
		if !ok || def == nil || def.Prototype() == nil {
			continue
		}
		name := def.Prototype().Name()
		if !r.symbols.Declared(name) {
			r.symbols.Define(name, symtab.Entry{Kind: symtab.KindFunction, Type: def.Prototype().ReturnType(), Node: def})
		}
	}

	out := make([]ir.Stmt, 0, len(ns))
	for _, n := range ns {
		s, err := r.stmt(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *renderer) block(n *ast.Block) ([]ir.Stmt, error) {
	if n == nil {
		return nil, nil
	}
	return r.stmts(n.Stmts())
}

// line lowers a simple statement consisting of a keyword and an optional
// expression.
func (r *renderer) line(keyword string, value ast.Expr) (ir.Node, error) {
	if value == nil {
		return &ir.Line{Parts: []ir.Part{ir.Text(keyword)}}, nil
	}
	x, err := r.expr(value)
	if err != nil {
		return nil, err
	}
	if keyword == "" {
		return &ir.Line{Parts: []ir.Part{ir.Slot(x, 0)}}, nil
	}
	return &ir.Line{Parts: []ir.Part{ir.Text(keyword), ir.Slot(x, 0)}}, nil
}

// Statements.

func (r *renderer) VisitFunctionReturn(n *ast.FunctionReturn) (ir.Node, error) {
	if n.Value() == nil {
		return r.line("return", nil)
	}
	return r.line("return ", n.Value())
}

func (r *renderer) VisitImportStmt(n *ast.ImportStmt) (ir.Node, error) {
	names, err := aliases(n.Names())
	if err != nil {
		return nil, err
	}
	r.imported(n.Names())
	return &ir.Line{Parts: []ir.Part{ir.Text("import " + names)}}, nil
}

func (r *renderer) VisitImportFromStmt(n *ast.ImportFromStmt) (ir.Node, error) {
	if n.Module() != "" {
		if err := ident(n, n.Module()); err != nil {
			return nil, err
		}
	}
	names, err := aliases(n.Names())
	if err != nil {
		return nil, err
	}
	r.imported(n.Names())
	from := strings.Repeat(".", n.Level()) + n.Module()
	return &ir.Line{Parts: []ir.Part{ir.Text("from " + from + " import " + names)}}, nil
}

func (r *renderer) imported(names []*ast.AliasExpr) {
	for _, name := range names {
		r.symbols.Define(name.Bound(), symtab.Entry{Kind: symtab.KindImport, Node: name})
	}
}

func (r *renderer) VisitAssignment(n *ast.Assignment) (ir.Node, error) {
	if err := ident(n, n.Name()); err != nil {
		return nil, err
	}
	// The value is lowered first, so that x = x + 1 warns about x.
	node, err := r.line(n.Name()+" = ", n.Value())
	if err != nil {
		return nil, err
	}
	if !r.symbols.Declared(n.Name()) {
		r.symbols.Define(n.Name(), symtab.Entry{Kind: symtab.KindVariable, Node: n})
	}
	return node, nil
}

func (r *renderer) VisitVariableDeclaration(n *ast.VariableDeclaration) (ir.Node, error) {
	if err := ident(n, n.Name()); err != nil {
		return nil, err
	}
	if n.Value() != nil && r.symbols.Declared(n.Name()) {
		return r.line(n.Name()+" = ", n.Value())
	}

	typ, err := r.typeName(n, n.Type())
	if err != nil {
		return nil, err
	}
	parts := []ir.Part{ir.Text(n.Name() + ": " + typ)}
	if n.Value() != nil {
		x, err := r.expr(n.Value())
		if err != nil {
			return nil, err
		}
		parts = append(parts, ir.Text(" = "), ir.Slot(x, 0))
	}
	r.symbols.Define(n.Name(), symtab.Entry{Kind: symtab.KindVariable, Type: n.Type(), Node: n})
	return &ir.Line{Parts: parts}, nil
}

func (r *renderer) VisitExprStmt(n *ast.ExprStmt) (ir.Node, error) {
	return r.line("", n.Value())
}

func (r *renderer) VisitIf(n *ast.If) (ir.Node, error) {
	cond, err := r.expr(n.Cond())
	if err != nil {
		return nil, err
	}
	then, err := r.block(n.Then())
	if err != nil {
		return nil, err
	}
	clauses := []ir.Clause{{
		Header: []ir.Part{ir.Text("if "), ir.Slot(cond, 0)},
		Body:   then,
	}}

	els := n.Else()
	if els == nil {
		return &ir.Compound{Clauses: clauses}, nil
	}

	// An else block holding nothing but another if statement becomes an
	// elif chain.
	if next, ok := soleIf(els); ok {
		lowered, err := r.stmt(next)
		if err != nil {
			return nil, err
		}
		chain, ok := lowered.(*ir.Compound)
		if !ok || len(chain.Clauses) == 0 {
			return nil, ast.Malformed(next, "if statement lowered to %T", lowered)
		}
		first := chain.Clauses[0]
		elif := ir.Clause{
			Header: append([]ir.Part{ir.Text("elif ")}, first.Header[1:]...),
			Body:   first.Body,
		}
		clauses = append(clauses, elif)
		clauses = append(clauses, chain.Clauses[1:]...)
		return &ir.Compound{Clauses: clauses}, nil
	}

	body, err := r.block(els)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, ir.Clause{Header: []ir.Part{ir.Text("else")}, Body: body})
	return &ir.Compound{Clauses: clauses}, nil
}

func soleIf(b *ast.Block) (*ast.If, bool) {
	if b.Len() != 1 {
		return nil, false
	}
	next, ok := b.Stmts()[0].(*ast.If)
	return next, ok
}

func (r *renderer) VisitWhile(n *ast.While) (ir.Node, error) {
	cond, err := r.expr(n.Cond())
	if err != nil {
		return nil, err
	}
	body, err := r.block(n.Body())
	if err != nil {
		return nil, err
	}
	return &ir.Compound{Clauses: []ir.Clause{{
		Header: []ir.Part{ir.Text("while "), ir.Slot(cond, 0)},
		Body:   body,
	}}}, nil
}

func (r *renderer) VisitForRangeLoop(n *ast.ForRangeLoop) (ir.Node, error) {
	if err := ident(n, n.Variable()); err != nil {
		return nil, err
	}
	bounds := []ast.Expr{n.Start(), n.End()}
	if n.Step() != nil {
		bounds = append(bounds, n.Step())
	}
	args, err := r.exprs(bounds)
	if err != nil {
		return nil, err
	}
	rng := &ir.Apply{
		Callee: &ir.Atom{Text: "range"},
		Open:   "(",
		Close:  ")",
		Args:   args,
		Level:  precCall,
	}

	r.symbols.Define(n.Variable(), symtab.Entry{Kind: symtab.KindVariable, Type: ast.TypeInt64, Node: n})
	body, err := r.block(n.Body())
	if err != nil {
		return nil, err
	}
	return &ir.Compound{Clauses: []ir.Clause{{
		Header: []ir.Part{ir.Text("for " + n.Variable() + " in "), ir.Slot(rng, 0)},
		Body:   body,
	}}}, nil
}

func (r *renderer) VisitForInLoop(n *ast.ForInLoop) (ir.Node, error) {
	if err := ident(n, n.Variable()); err != nil {
		return nil, err
	}
	iterable, err := r.expr(n.Iterable())
	if err != nil {
		return nil, err
	}
	r.symbols.Define(n.Variable(), symtab.Entry{Kind: symtab.KindVariable, Node: n})
	body, err := r.block(n.Body())
	if err != nil {
		return nil, err
	}
	return &ir.Compound{Clauses: []ir.Clause{{
		Header: []ir.Part{ir.Text("for " + n.Variable() + " in "), ir.Slot(iterable, 0)},
		Body:   body,
	}}}, nil
}

func (r *renderer) VisitBreak(*ast.Break) (ir.Node, error) {
	return r.line("break", nil)
}

func (r *renderer) VisitContinue(*ast.Continue) (ir.Node, error) {
	return r.line("continue", nil)
}

func (r *renderer) VisitWithStmt(n *ast.WithStmt) (ir.Node, error) {
	header := []ir.Part{ir.Text("with ")}
	for i, item := range n.Items() {
		if i > 0 {
			header = append(header, ir.Text(", "))
		}
		parts, err := r.withItem(item)
		if err != nil {
			return nil, err
		}
		header = append(header, parts...)
	}
	body, err := r.block(n.Body())
	if err != nil {
		return nil, err
	}
	return &ir.Compound{Clauses: []ir.Clause{{Header: header, Body: body}}}, nil
}

func (r *renderer) withItem(n *ast.WithItem) ([]ir.Part, error) {
	ctx, err := r.expr(n.Context())
	if err != nil {
		return nil, err
	}
	parts := []ir.Part{ir.Slot(ctx, 0)}
	if name := n.InstanceName(); name != "" {
		if err := ident(n, name); err != nil {
			return nil, err
		}
		parts = append(parts, ir.Text(" as "+name))
		r.symbols.Define(name, symtab.Entry{Kind: symtab.KindVariable, Node: n})
	}
	return parts, nil
}

// Containers.

func (r *renderer) VisitBlock(n *ast.Block) (ir.Node, error) {
	stmts, err := r.block(n)
	if err != nil {
		return nil, err
	}
	return &ir.Block{Stmts: stmts}, nil
}

func (r *renderer) VisitModule(n *ast.Module) (ir.Node, error) {
	stmts, err := r.stmts(n.Stmts())
	if err != nil {
		return nil, err
	}
	return &ir.Module{Stmts: stmts}, nil
}
