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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/astx/ast"
	"github.com/bufbuild/astx/ir"
)

func TestOperatorTableIsComplete(t *testing.T) {
	t.Parallel()

	for _, op := range ast.BinaryOperators() {
		python, ok := binaryOps[op]
		if assert.True(t, ok, "no entry for %q", op) {
			assert.NotEmpty(t, python.Text)
			assert.Less(t, python.Prec, precCall)
		}
	}
	assert.Len(t, binaryOps, len(ast.BinaryOperators()))

	for _, op := range ast.UnaryOperators() {
		python, ok := unaryOps[op]
		if assert.True(t, ok, "no entry for %q", op) {
			assert.NotEmpty(t, python.Text)
			assert.Equal(t, ir.AssocNone, python.Assoc)
		}
	}
	assert.Len(t, unaryOps, len(ast.UnaryOperators()))

	for _, typ := range []ast.DataType{
		ast.TypeInt32, ast.TypeInt64, ast.TypeFloat64,
		ast.TypeBoolean, ast.TypeString, ast.TypeNone,
	} {
		assert.Contains(t, typeNames, typ)
	}
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{123456.789, "123456.789"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{-1.25e-7, "-1.25e-07"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, formatFloat(test.value), "%v", test.value)
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value, want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
		{"tab\tnewline\n\r", `"tab\tnewline\n\r"`},
		{"\x00\x7f", `"\x00\x7f"`},
		{"café", `"café"`},
		{"\u00a0", `"\xa0"`},
		{"\u2028", `"\u2028"`},
		{"'single'", `"'single'"`},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, quote(test.value), "%q", test.value)
	}
}
