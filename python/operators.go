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
	"github.com/bufbuild/astx/ast"
	"github.com/bufbuild/astx/ir"
)

// Precedence levels, loosest first.
const (
	precLambda = 1 + iota
	precCond
	precOr
	precAnd
	precNot
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdd
	precMul
	precUnary // Also negative numeric literals.
	precPow
	precCall // Calls and subscripts.
)

var binaryOps = map[ast.BinaryOperator]ir.Operator{
	ast.OpOr:  {Text: "or", Prec: precOr, Assoc: ir.AssocLeft},
	ast.OpAnd: {Text: "and", Prec: precAnd, Assoc: ir.AssocLeft},

	// Python chains comparisons, so a < b < c is not (a < b) < c. Neither
	// side may be a bare comparison.
	ast.OpEq: {Text: "==", Prec: precCompare},
	ast.OpNe: {Text: "!=", Prec: precCompare},
	ast.OpLt: {Text: "<", Prec: precCompare},
	ast.OpLe: {Text: "<=", Prec: precCompare},
	ast.OpGt: {Text: ">", Prec: precCompare},
	ast.OpGe: {Text: ">=", Prec: precCompare},

	ast.OpBitOr:  {Text: "|", Prec: precBitOr, Assoc: ir.AssocLeft},
	ast.OpBitXor: {Text: "^", Prec: precBitXor, Assoc: ir.AssocLeft},
	ast.OpBitAnd: {Text: "&", Prec: precBitAnd, Assoc: ir.AssocLeft},
	ast.OpShl:    {Text: "<<", Prec: precShift, Assoc: ir.AssocLeft},
	ast.OpShr:    {Text: ">>", Prec: precShift, Assoc: ir.AssocLeft},

	ast.OpAdd: {Text: "+", Prec: precAdd, Assoc: ir.AssocLeft},
	ast.OpSub: {Text: "-", Prec: precAdd, Assoc: ir.AssocLeft},

	ast.OpMul:      {Text: "*", Prec: precMul, Assoc: ir.AssocLeft},
	ast.OpDiv:      {Text: "/", Prec: precMul, Assoc: ir.AssocLeft},
	ast.OpFloorDiv: {Text: "//", Prec: precMul, Assoc: ir.AssocLeft},
	ast.OpMod:      {Text: "%", Prec: precMul, Assoc: ir.AssocLeft},

	ast.OpPow: {Text: "**", Prec: precPow, Assoc: ir.AssocRight},
}

var unaryOps = map[ast.UnaryOperator]ir.Operator{
	ast.OpNot:    {Text: "not", Prec: precNot},
	ast.OpNeg:    {Text: "-", Prec: precUnary},
	ast.OpPos:    {Text: "+", Prec: precUnary},
	ast.OpBitNot: {Text: "~", Prec: precUnary},
}

var typeNames = map[ast.DataType]string{
	ast.TypeInt32:   "int",
	ast.TypeInt64:   "int",
	ast.TypeFloat64: "float",
	ast.TypeBoolean: "bool",
	ast.TypeString:  "str",
	ast.TypeNone:    "None",
}

// builtins are the names every Python module can refer to without
// importing or defining them.
var builtins = []string{
	"abs", "all", "any", "ascii", "bin", "bool", "breakpoint", "bytearray",
	"bytes", "callable", "chr", "classmethod", "compile", "complex",
	"delattr", "dict", "dir", "divmod", "enumerate", "eval", "exec",
	"filter", "float", "format", "frozenset", "getattr", "globals",
	"hasattr", "hash", "help", "hex", "id", "input", "int", "isinstance",
	"issubclass", "iter", "len", "list", "locals", "map", "max",
	"memoryview", "min", "next", "object", "oct", "open", "ord", "pow",
	"print", "property", "range", "repr", "reversed", "round", "set",
	"setattr", "slice", "sorted", "staticmethod", "str", "sum", "super",
	"tuple", "type", "vars", "zip", "__import__", "__name__", "__file__",
	"Exception", "ValueError", "TypeError", "KeyError", "IndexError",
	"RuntimeError", "StopIteration", "NotImplemented", "Ellipsis",
}

// keywords are the reserved words of Python 3, which can never be used as
// names. Soft keywords such as match and type are not reserved.
var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true,
}
