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

import "fmt"

// Kind identifies the syntactic category of a [Node].
//
// The set of kinds is closed: adding a kind means adding a node type, a
// [Visitor] method, and a case in [Visit].
type Kind int8

const (
	KindInvalid Kind = iota

	KindLiteralInt32
	KindLiteralInt64
	KindLiteralFloat64
	KindLiteralBoolean
	KindLiteralString
	KindLiteralNone

	KindVariable
	KindBinaryOp
	KindUnaryOp
	KindCall
	KindLambda
	KindIfExpr
	KindListExpr
	KindTupleExpr
	KindSubscript

	KindAliasExpr
	KindWithItem
	KindArgument
	KindArguments
	KindFunctionPrototype

	KindFunctionDef
	KindFunctionReturn
	KindImportStmt
	KindImportFromStmt
	KindAssignment
	KindVariableDeclaration
	KindExprStmt
	KindIf
	KindWhile
	KindForRangeLoop
	KindForInLoop
	KindBreak
	KindContinue
	KindWithStmt

	KindBlock
	KindModule

	// KindTotal is the number of kinds, including KindInvalid.
	KindTotal
)

var kindNames = [...]string{
	KindInvalid:             "Invalid",
	KindLiteralInt32:        "LiteralInt32",
	KindLiteralInt64:        "LiteralInt64",
	KindLiteralFloat64:      "LiteralFloat64",
	KindLiteralBoolean:      "LiteralBoolean",
	KindLiteralString:       "LiteralString",
	KindLiteralNone:         "LiteralNone",
	KindVariable:            "Variable",
	KindBinaryOp:            "BinaryOp",
	KindUnaryOp:             "UnaryOp",
	KindCall:                "Call",
	KindLambda:              "Lambda",
	KindIfExpr:              "IfExpr",
	KindListExpr:            "ListExpr",
	KindTupleExpr:           "TupleExpr",
	KindSubscript:           "Subscript",
	KindAliasExpr:           "AliasExpr",
	KindWithItem:            "WithItem",
	KindArgument:            "Argument",
	KindArguments:           "Arguments",
	KindFunctionPrototype:   "FunctionPrototype",
	KindFunctionDef:         "FunctionDef",
	KindFunctionReturn:      "FunctionReturn",
	KindImportStmt:          "ImportStmt",
	KindImportFromStmt:      "ImportFromStmt",
	KindAssignment:          "Assignment",
	KindVariableDeclaration: "VariableDeclaration",
	KindExprStmt:            "ExprStmt",
	KindIf:                  "If",
	KindWhile:               "While",
	KindForRangeLoop:        "ForRangeLoop",
	KindForInLoop:           "ForInLoop",
	KindBreak:               "Break",
	KindContinue:            "Continue",
	KindWithStmt:            "WithStmt",
	KindBlock:               "Block",
	KindModule:              "Module",
}

// Fails to compile if a kind is added without a name.
var _ [0]struct{} = [len(kindNames) - int(KindTotal)]struct{}{}

// Kinds returns every valid kind, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindTotal-1)
	for k := KindInvalid + 1; k < KindTotal; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < 0 || k >= KindTotal {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsLiteral returns whether nodes of this kind implement [Literal].
func (k Kind) IsLiteral() bool {
	return k >= KindLiteralInt32 && k <= KindLiteralNone
}

// IsExpr returns whether nodes of this kind implement [Expr].
func (k Kind) IsExpr() bool {
	return k >= KindLiteralInt32 && k <= KindSubscript
}

// IsStmt returns whether nodes of this kind implement [Stmt].
func (k Kind) IsStmt() bool {
	return k >= KindFunctionDef && k <= KindWithStmt
}
