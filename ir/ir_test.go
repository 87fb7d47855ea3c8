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

package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/astx/ir"
)

func TestPrec(t *testing.T) {
	t.Parallel()

	add := ir.Operator{Text: "+", Prec: 11, Assoc: ir.AssocLeft}
	assert.Equal(t, ir.Atomic, (&ir.Atom{Text: "x"}).Prec())
	assert.Equal(t, 13, (&ir.Atom{Text: "-1", Level: 13}).Prec())
	assert.Equal(t, 11, (&ir.Binary{Op: add}).Prec())
	assert.Equal(t, ir.Atomic, (&ir.Group{Open: "[", Close: "]"}).Prec())
	assert.Equal(t, 15, (&ir.Apply{Level: 15}).Prec())
	assert.Equal(t, 1, (&ir.Template{Level: 1}).Prec())
	assert.Equal(t, "left", add.Assoc.String())
	assert.Equal(t, "none", ir.AssocNone.String())
}

func TestParts(t *testing.T) {
	t.Parallel()

	x := &ir.Atom{Text: "x"}
	assert.Equal(t, ir.Part{Text: "return "}, ir.Text("return "))
	assert.Equal(t, ir.Part{Expr: x, Min: 3}, ir.Slot(x, 3))
}
