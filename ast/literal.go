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
	"iter"
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/exp/constraints" //nolint:exptostd // Needs constraints.Signed.
)

// Literal is an [Expr] that carries exactly one scalar value and has no
// children.
type Literal interface {
	Expr

	// Value returns this literal's payload. For LiteralNone, this is nil.
	Value() any
}

var (
	_ Literal = (*LiteralInt32)(nil)
	_ Literal = (*LiteralInt64)(nil)
	_ Literal = (*LiteralFloat64)(nil)
	_ Literal = (*LiteralBoolean)(nil)
	_ Literal = (*LiteralString)(nil)
	_ Literal = (*LiteralNone)(nil)
)

// LiteralInt32 is a 32-bit signed integer literal.
type LiteralInt32 struct {
	nodeBase
	value int32
}

// NewLiteralInt32 builds a new LiteralInt32. The value must fit in 32 bits.
func NewLiteralInt32(value int64, opts ...Option) (*LiteralInt32, error) {
	if !fits[int32](value) {
		return nil, violation(KindLiteralInt32, opts,
			"value %d does not fit in a 32-bit signed integer", value)
	}
	return &LiteralInt32{nodeBase: newBase(opts), value: int32(value)}, nil
}

// Int returns this literal's value.
func (n *LiteralInt32) Int() int32 { return n.value }

// Value implements [Literal].
func (n *LiteralInt32) Value() any { return n.value }

// Kind implements [Node].
func (*LiteralInt32) Kind() Kind { return KindLiteralInt32 }

// Children implements [Node].
func (*LiteralInt32) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *LiteralInt32) String() string { return fmt.Sprintf("LiteralInt32(%d)", n.value) }

// LiteralInt64 is a 64-bit signed integer literal.
type LiteralInt64 struct {
	nodeBase
	value int64
}

// NewLiteralInt64 builds a new LiteralInt64.
func NewLiteralInt64(value int64, opts ...Option) (*LiteralInt64, error) {
	return &LiteralInt64{nodeBase: newBase(opts), value: value}, nil
}

// Int returns this literal's value.
func (n *LiteralInt64) Int() int64 { return n.value }

// Value implements [Literal].
func (n *LiteralInt64) Value() any { return n.value }

// Kind implements [Node].
func (*LiteralInt64) Kind() Kind { return KindLiteralInt64 }

// Children implements [Node].
func (*LiteralInt64) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *LiteralInt64) String() string { return fmt.Sprintf("LiteralInt64(%d)", n.value) }

// LiteralFloat64 is a finite double-precision floating point literal.
type LiteralFloat64 struct {
	nodeBase
	value float64
}

// NewLiteralFloat64 builds a new LiteralFloat64. NaN and infinities are
// rejected, since they have no literal spelling.
func NewLiteralFloat64(value float64, opts ...Option) (*LiteralFloat64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, violation(KindLiteralFloat64, opts, "value %v is not finite", value)
	}
	return &LiteralFloat64{nodeBase: newBase(opts), value: value}, nil
}

// Float returns this literal's value.
func (n *LiteralFloat64) Float() float64 { return n.value }

// Value implements [Literal].
func (n *LiteralFloat64) Value() any { return n.value }

// Kind implements [Node].
func (*LiteralFloat64) Kind() Kind { return KindLiteralFloat64 }

// Children implements [Node].
func (*LiteralFloat64) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *LiteralFloat64) String() string {
	return "LiteralFloat64(" + strconv.FormatFloat(n.value, 'g', -1, 64) + ")"
}

// LiteralBoolean is a boolean literal.
type LiteralBoolean struct {
	nodeBase
	value bool
}

// NewLiteralBoolean builds a new LiteralBoolean.
func NewLiteralBoolean(value bool, opts ...Option) (*LiteralBoolean, error) {
	return &LiteralBoolean{nodeBase: newBase(opts), value: value}, nil
}

// Bool returns this literal's value.
func (n *LiteralBoolean) Bool() bool { return n.value }

// Value implements [Literal].
func (n *LiteralBoolean) Value() any { return n.value }

// Kind implements [Node].
func (*LiteralBoolean) Kind() Kind { return KindLiteralBoolean }

// Children implements [Node].
func (*LiteralBoolean) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *LiteralBoolean) String() string { return fmt.Sprintf("LiteralBoolean(%t)", n.value) }

// LiteralString is a string literal. Its value is always valid UTF-8.
type LiteralString struct {
	nodeBase
	value string
}

// NewLiteralString builds a new LiteralString.
func NewLiteralString(value string, opts ...Option) (*LiteralString, error) {
	if !utf8.ValidString(value) {
		return nil, violation(KindLiteralString, opts, "value %q is not valid UTF-8", value)
	}
	return &LiteralString{nodeBase: newBase(opts), value: value}, nil
}

// Text returns this literal's value.
func (n *LiteralString) Text() string { return n.value }

// Value implements [Literal].
func (n *LiteralString) Value() any { return n.value }

// Kind implements [Node].
func (*LiteralString) Kind() Kind { return KindLiteralString }

// Children implements [Node].
func (*LiteralString) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *LiteralString) String() string { return fmt.Sprintf("LiteralString(%q)", n.value) }

// LiteralNone is the absent value (None, null, nil).
type LiteralNone struct {
	nodeBase
}

// NewLiteralNone builds a new LiteralNone.
func NewLiteralNone(opts ...Option) (*LiteralNone, error) {
	return &LiteralNone{nodeBase: newBase(opts)}, nil
}

// Value implements [Literal].
func (*LiteralNone) Value() any { return nil }

// Kind implements [Node].
func (*LiteralNone) Kind() Kind { return KindLiteralNone }

// Children implements [Node].
func (*LiteralNone) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (*LiteralNone) String() string { return "LiteralNone" }

func (*LiteralInt32) expr()   {}
func (*LiteralInt64) expr()   {}
func (*LiteralFloat64) expr() {}
func (*LiteralBoolean) expr() {}
func (*LiteralString) expr()  {}
func (*LiteralNone) expr()    {}

// fits returns whether v is representable as a T.
func fits[T constraints.Signed](v int64) bool {
	return int64(T(v)) == v
}
