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

package python_test

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/astx/ast"
)

// parseTree builds a syntax tree out of a YAML document. Each node of the
// tree is a single-entry mapping from a kind name to the node's fields, or a
// plain scalar for names and literals:
//
//	module:
//	  name: example
//	  body:
//	    - import: [os, os.path as p]
//	    - def:
//	        name: add
//	        args: [{name: x, type: int32}]
//	        returns: int32
//	        body:
//	          - return: {binary: [+, x, 1]}
//
// Every node is positioned at the line and column of its YAML node.
func parseTree(text string) (ast.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New("expected a single YAML document")
	}
	n := doc.Content[0]
	if n.Kind == yaml.ScalarNode {
		return buildExpr(n)
	}

	key, value, err := entry(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "module":
		return buildModule(n, value)
	case "block":
		return buildBlock(value)
	}
	if _, ok := stmtBuilders[key]; ok {
		return buildStmt(n)
	}
	return buildExpr(n)
}

type yamlError struct {
	node *yaml.Node
	msg  string
}

func (e *yamlError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.node.Line, e.node.Column, e.msg)
}

func errorf(n *yaml.Node, format string, args ...any) error {
	return &yamlError{node: n, msg: fmt.Sprintf(format, args...)}
}

func at(n *yaml.Node) ast.Option {
	return ast.At(n.Line, n.Column)
}

// entry returns the key and value of a single-entry mapping.
func entry(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, errorf(n, "expected a single-entry mapping")
	}
	return n.Content[0].Value, n.Content[1], nil
}

// field returns the value of key in a mapping, or nil if there is none.
func field(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func scalarField(n *yaml.Node, key string) string {
	if v := field(n, key); v != nil {
		return v.Value
	}
	return ""
}

func items(n *yaml.Node) ([]*yaml.Node, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.SequenceNode:
		return n.Content, nil
	default:
		return nil, errorf(n, "expected a sequence")
	}
}

var dataTypes = map[string]ast.DataType{
	"int32":   ast.TypeInt32,
	"int64":   ast.TypeInt64,
	"float64": ast.TypeFloat64,
	"bool":    ast.TypeBoolean,
	"string":  ast.TypeString,
	"none":    ast.TypeNone,
}

func dataType(n *yaml.Node) (ast.DataType, error) {
	if n == nil {
		return ast.TypeInvalid, nil
	}
	t, ok := dataTypes[n.Value]
	if !ok {
		return ast.TypeInvalid, errorf(n, "unknown type %q", n.Value)
	}
	return t, nil
}

func buildExpr(n *yaml.Node) (ast.Expr, error) {
	if n == nil {
		return nil, errors.New("missing expression")
	}
	if n.Kind == yaml.ScalarNode {
		return buildScalar(n)
	}
	key, value, err := entry(n)
	if err != nil {
		return nil, err
	}
	build, ok := exprBuilders[key]
	if !ok {
		return nil, errorf(n, "unknown expression %q", key)
	}
	return build(n, value)
}

func buildScalar(n *yaml.Node) (ast.Expr, error) {
	switch n.Tag {
	case "!!null":
		return ast.NewLiteralNone(at(n))
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return ast.NewLiteralBoolean(b, at(n))
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, err
		}
		return ast.NewLiteralInt32(i, at(n))
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return ast.NewLiteralFloat64(f, at(n))
	default:
		return ast.NewVariable(n.Value, at(n))
	}
}

func buildExprs(nodes []*yaml.Node) ([]ast.Expr, error) {
	exprs := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		x, err := buildExpr(n)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, x)
	}
	return exprs, nil
}

// operands builds the elements of a sequence such as [op, lhs, rhs], after
// checking its length.
func operands(n, value *yaml.Node, want int) ([]*yaml.Node, error) {
	list, err := items(value)
	if err != nil {
		return nil, err
	}
	if len(list) != want {
		return nil, errorf(n, "expected %d elements, got %d", want, len(list))
	}
	return list, nil
}

type exprBuilder func(n, value *yaml.Node) (ast.Expr, error)

var exprBuilders map[string]exprBuilder

func init() {
	exprBuilders = map[string]exprBuilder{
		"var": func(n, value *yaml.Node) (ast.Expr, error) {
			return ast.NewVariable(value.Value, at(n))
		},
		"int64": func(n, value *yaml.Node) (ast.Expr, error) {
			var i int64
			if err := value.Decode(&i); err != nil {
				return nil, err
			}
			return ast.NewLiteralInt64(i, at(n))
		},
		"float": func(n, value *yaml.Node) (ast.Expr, error) {
			var f float64
			if err := value.Decode(&f); err != nil {
				return nil, err
			}
			return ast.NewLiteralFloat64(f, at(n))
		},
		"str": func(n, value *yaml.Node) (ast.Expr, error) {
			return ast.NewLiteralString(value.Value, at(n))
		},
		"binary": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := operands(n, value, 3)
			if err != nil {
				return nil, err
			}
			xs, err := buildExprs(list[1:])
			if err != nil {
				return nil, err
			}
			return ast.NewBinaryOp(ast.BinaryOperator(list[0].Value), xs[0], xs[1], at(n))
		},
		"unary": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := operands(n, value, 2)
			if err != nil {
				return nil, err
			}
			x, err := buildExpr(list[1])
			if err != nil {
				return nil, err
			}
			return ast.NewUnaryOp(ast.UnaryOperator(list[0].Value), x, at(n))
		},
		"call": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := items(value)
			if err != nil {
				return nil, err
			}
			if len(list) == 0 {
				return nil, errorf(n, "call without callee")
			}
			args, err := buildExprs(list[1:])
			if err != nil {
				return nil, err
			}
			return ast.NewCall(list[0].Value, args, at(n))
		},
		"lambda": func(n, value *yaml.Node) (ast.Expr, error) {
			params, err := buildArgs(field(value, "args"))
			if err != nil {
				return nil, err
			}
			body := field(value, "body")
			if body == nil {
				return nil, errorf(n, "lambda without body")
			}
			x, err := buildExpr(body)
			if err != nil {
				return nil, err
			}
			return ast.NewLambda(params, x, at(n))
		},
		"ifexpr": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := operands(n, value, 3)
			if err != nil {
				return nil, err
			}
			xs, err := buildExprs(list)
			if err != nil {
				return nil, err
			}
			return ast.NewIfExpr(xs[0], xs[1], xs[2], at(n))
		},
		"list": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := items(value)
			if err != nil {
				return nil, err
			}
			xs, err := buildExprs(list)
			if err != nil {
				return nil, err
			}
			return ast.NewListExpr(xs, at(n))
		},
		"tuple": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := items(value)
			if err != nil {
				return nil, err
			}
			xs, err := buildExprs(list)
			if err != nil {
				return nil, err
			}
			return ast.NewTupleExpr(xs, at(n))
		},
		"index": func(n, value *yaml.Node) (ast.Expr, error) {
			list, err := operands(n, value, 2)
			if err != nil {
				return nil, err
			}
			xs, err := buildExprs(list)
			if err != nil {
				return nil, err
			}
			return ast.NewSubscript(xs[0], xs[1], at(n))
		},
	}
}

func buildArgs(n *yaml.Node) (*ast.Arguments, error) {
	list, err := items(n)
	if err != nil {
		return nil, err
	}
	args := make([]*ast.Argument, 0, len(list))
	for _, item := range list {
		typ, err := dataType(field(item, "type"))
		if err != nil {
			return nil, err
		}
		var deflt ast.Expr
		if d := field(item, "default"); d != nil {
			if deflt, err = buildExpr(d); err != nil {
				return nil, err
			}
		}
		arg, err := ast.NewArgument(scalarField(item, "name"), typ, deflt, at(item))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if n == nil {
		return ast.NewArguments(args)
	}
	return ast.NewArguments(args, at(n))
}

// buildAliases builds import names written as "a.b" or "a.b as c".
func buildAliases(n *yaml.Node) ([]*ast.AliasExpr, error) {
	list, err := items(n)
	if err != nil {
		return nil, err
	}
	aliases := make([]*ast.AliasExpr, 0, len(list))
	for _, item := range list {
		name, as, _ := strings.Cut(item.Value, " as ")
		alias, err := ast.NewAliasExpr(name, as, at(item))
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

func buildStmt(n *yaml.Node) (ast.Stmt, error) {
	// Keywords without operands may be written as plain scalars.
	if n.Kind == yaml.ScalarNode {
		switch n.Value {
		case "break":
			return ast.NewBreak(at(n))
		case "continue":
			return ast.NewContinue(at(n))
		case "return":
			return ast.NewFunctionReturn(nil, at(n))
		}
		return nil, errorf(n, "unknown statement %q", n.Value)
	}

	key, value, err := entry(n)
	if err != nil {
		return nil, err
	}
	build, ok := stmtBuilders[key]
	if !ok {
		return nil, errorf(n, "unknown statement %q", key)
	}
	return build(n, value)
}

func buildStmts(n *yaml.Node) ([]ast.Stmt, error) {
	list, err := items(n)
	if err != nil {
		return nil, err
	}
	stmts := make([]ast.Stmt, 0, len(list))
	for _, item := range list {
		s, err := buildStmt(item)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func buildBlock(n *yaml.Node) (*ast.Block, error) {
	stmts, err := buildStmts(n)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return ast.NewBlock(stmts)
	}
	return ast.NewBlock(stmts, at(n))
}

func buildModule(n, value *yaml.Node) (*ast.Module, error) {
	stmts, err := buildStmts(field(value, "body"))
	if err != nil {
		return nil, err
	}
	return ast.NewModule(scalarField(value, "name"), stmts, at(n))
}

func buildProto(n, value *yaml.Node) (*ast.FunctionPrototype, error) {
	args, err := buildArgs(field(value, "args"))
	if err != nil {
		return nil, err
	}
	ret, err := dataType(field(value, "returns"))
	if err != nil {
		return nil, err
	}
	if ret == ast.TypeInvalid {
		ret = ast.TypeNone
	}
	return ast.NewFunctionPrototype(scalarField(value, "name"), args, ret, at(n))
}

// optionalExpr builds n, or returns nil if n is absent or null.
func optionalExpr(n *yaml.Node) (ast.Expr, error) {
	if isNull(n) {
		return nil, nil
	}
	return buildExpr(n)
}

type stmtBuilder func(n, value *yaml.Node) (ast.Stmt, error)

var stmtBuilders map[string]stmtBuilder

func init() {
	stmtBuilders = map[string]stmtBuilder{
		"def": func(n, value *yaml.Node) (ast.Stmt, error) {
			proto, err := buildProto(n, value)
			if err != nil {
				return nil, err
			}
			body, err := buildBlock(field(value, "body"))
			if err != nil {
				return nil, err
			}
			return ast.NewFunctionDef(proto, body, at(n))
		},
		"return": func(n, value *yaml.Node) (ast.Stmt, error) {
			x, err := optionalExpr(value)
			if err != nil {
				return nil, err
			}
			return ast.NewFunctionReturn(x, at(n))
		},
		"import": func(n, value *yaml.Node) (ast.Stmt, error) {
			names, err := buildAliases(value)
			if err != nil {
				return nil, err
			}
			return ast.NewImportStmt(names, at(n))
		},
		"from": func(n, value *yaml.Node) (ast.Stmt, error) {
			var level int
			if l := field(value, "level"); l != nil {
				if err := l.Decode(&level); err != nil {
					return nil, err
				}
			}
			names, err := buildAliases(field(value, "names"))
			if err != nil {
				return nil, err
			}
			return ast.NewImportFromStmt(scalarField(value, "module"), level, names, at(n))
		},
		"assign": func(n, value *yaml.Node) (ast.Stmt, error) {
			list, err := operands(n, value, 2)
			if err != nil {
				return nil, err
			}
			x, err := buildExpr(list[1])
			if err != nil {
				return nil, err
			}
			return ast.NewAssignment(list[0].Value, x, at(n))
		},
		"declare": func(n, value *yaml.Node) (ast.Stmt, error) {
			typ, err := dataType(field(value, "type"))
			if err != nil {
				return nil, err
			}
			x, err := optionalExpr(field(value, "value"))
			if err != nil {
				return nil, err
			}
			return ast.NewVariableDeclaration(scalarField(value, "name"), typ, x, at(n))
		},
		"expr": func(n, value *yaml.Node) (ast.Stmt, error) {
			x, err := buildExpr(value)
			if err != nil {
				return nil, err
			}
			return ast.NewExprStmt(x, at(n))
		},
		"if": func(n, value *yaml.Node) (ast.Stmt, error) {
			cond, err := buildExpr(field(value, "cond"))
			if err != nil {
				return nil, err
			}
			then, err := buildBlock(field(value, "then"))
			if err != nil {
				return nil, err
			}
			var els *ast.Block
			if e := field(value, "else"); e != nil {
				if els, err = buildBlock(e); err != nil {
					return nil, err
				}
			}
			return ast.NewIf(cond, then, els, at(n))
		},
		"while": func(n, value *yaml.Node) (ast.Stmt, error) {
			cond, err := buildExpr(field(value, "cond"))
			if err != nil {
				return nil, err
			}
			body, err := buildBlock(field(value, "body"))
			if err != nil {
				return nil, err
			}
			return ast.NewWhile(cond, body, at(n))
		},
		"range": func(n, value *yaml.Node) (ast.Stmt, error) {
			var bounds [3]ast.Expr
			for i, key := range []string{"start", "end", "step"} {
				x, err := optionalExpr(field(value, key))
				if err != nil {
					return nil, err
				}
				bounds[i] = x
			}
			body, err := buildBlock(field(value, "body"))
			if err != nil {
				return nil, err
			}
			return ast.NewForRangeLoop(scalarField(value, "var"), bounds[0], bounds[1], bounds[2], body, at(n))
		},
		"for": func(n, value *yaml.Node) (ast.Stmt, error) {
			iterable, err := optionalExpr(field(value, "in"))
			if err != nil {
				return nil, err
			}
			body, err := buildBlock(field(value, "body"))
			if err != nil {
				return nil, err
			}
			return ast.NewForInLoop(scalarField(value, "var"), iterable, body, at(n))
		},
		"with": func(n, value *yaml.Node) (ast.Stmt, error) {
			list, err := items(field(value, "items"))
			if err != nil {
				return nil, err
			}
			var withItems []*ast.WithItem
			for _, item := range list {
				x, err := buildExpr(field(item, "expr"))
				if err != nil {
					return nil, err
				}
				withItem, err := ast.NewWithItem(x, scalarField(item, "as"), at(item))
				if err != nil {
					return nil, err
				}
				withItems = append(withItems, withItem)
			}
			body, err := buildBlock(field(value, "body"))
			if err != nil {
				return nil, err
			}
			return ast.NewWithStmt(withItems, body, at(n))
		},
	}
}
