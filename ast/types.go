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
	"fmt"
	"strings"
	"unicode"
)

// DataType is the declared type of an argument, variable, or return value.
type DataType int8

const (
	TypeInvalid DataType = iota
	TypeInt32
	TypeInt64
	TypeFloat64
	TypeBoolean
	TypeString
	TypeNone
)

var typeNames = [...]string{
	TypeInvalid: "Invalid",
	TypeInt32:   "Int32",
	TypeInt64:   "Int64",
	TypeFloat64: "Float64",
	TypeBoolean: "Boolean",
	TypeString:  "String",
	TypeNone:    "None",
}

// IsValid returns whether this is one of the named data types.
func (t DataType) IsValid() bool {
	return t > TypeInvalid && t <= TypeNone
}

// String implements [fmt.Stringer].
func (t DataType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("DataType(%d)", int(t))
	}
	return typeNames[t]
}

// BinaryOperator is the symbol of a binary operator.
//
// Symbols are target-neutral: "&&" and "||" are logical conjunction and
// disjunction, regardless of how a backend spells them.
type BinaryOperator string

const (
	OpAdd      BinaryOperator = "+"
	OpSub      BinaryOperator = "-"
	OpMul      BinaryOperator = "*"
	OpDiv      BinaryOperator = "/"
	OpFloorDiv BinaryOperator = "//"
	OpMod      BinaryOperator = "%"
	OpPow      BinaryOperator = "**"
	OpEq       BinaryOperator = "=="
	OpNe       BinaryOperator = "!="
	OpLt       BinaryOperator = "<"
	OpLe       BinaryOperator = "<="
	OpGt       BinaryOperator = ">"
	OpGe       BinaryOperator = ">="
	OpAnd      BinaryOperator = "&&"
	OpOr       BinaryOperator = "||"
	OpBitAnd   BinaryOperator = "&"
	OpBitOr    BinaryOperator = "|"
	OpBitXor   BinaryOperator = "^"
	OpShl      BinaryOperator = "<<"
	OpShr      BinaryOperator = ">>"
)

// BinaryOperators returns every binary operator a [BinaryOp] may carry.
func BinaryOperators() []BinaryOperator {
	return []BinaryOperator{
		OpAdd, OpSub, OpMul, OpDiv, OpFloorDiv, OpMod, OpPow,
		OpEq, OpNe, OpLt, OpLe, OpGt, OpGe,
		OpAnd, OpOr,
		OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr,
	}
}

// IsValid returns whether this is a known binary operator.
func (op BinaryOperator) IsValid() bool {
	for _, known := range BinaryOperators() {
		if op == known {
			return true
		}
	}
	return false
}

// UnaryOperator is the symbol of a prefix operator.
type UnaryOperator string

const (
	OpNeg    UnaryOperator = "-"
	OpPos    UnaryOperator = "+"
	OpNot    UnaryOperator = "!"
	OpBitNot UnaryOperator = "~"
)

// UnaryOperators returns every operator a [UnaryOp] may carry.
func UnaryOperators() []UnaryOperator {
	return []UnaryOperator{OpNeg, OpPos, OpNot, OpBitNot}
}

// IsValid returns whether this is a known unary operator.
func (op UnaryOperator) IsValid() bool {
	switch op {
	case OpNeg, OpPos, OpNot, OpBitNot:
		return true
	default:
		return false
	}
}

// IsIdent returns whether s is a valid identifier: a letter or underscore
// followed by letters, digits, and underscores.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsDottedName returns whether s is one or more identifiers joined by dots,
// such as a module path.
func IsDottedName(s string) bool {
	for part := range strings.SplitSeq(s, ".") {
		if !IsIdent(part) {
			return false
		}
	}
	return true
}
