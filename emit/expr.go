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

package emit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/astx/dom"
	"github.com/bufbuild/astx/ir"
)

// expr emits x, parenthesized if it binds more loosely than minPrec.
func (e *emitter) expr(x ir.Expr, minPrec int) {
	e.exprWrap(x, minPrec, false)
}

// root emits x as the whole of a statement's expression or of the emitted
// text. See [Syntax.WrapOperatorRoots].
func (e *emitter) root(x ir.Expr, minPrec int) {
	_, binary := x.(*ir.Binary)
	e.exprWrap(x, minPrec, binary && e.options.Syntax.WrapOperatorRoots)
}

func (e *emitter) exprWrap(x ir.Expr, minPrec int, wrap bool) {
	if e.err != nil {
		return
	}
	if isNil(x) {
		e.fail("missing expression")
		return
	}

	if wrap || x.Prec() < minPrec {
		e.push(dom.Text("("))
		e.bare(x)
		e.push(dom.Text(")"))
		return
	}
	e.bare(x)
}

// bare emits x without any surrounding parentheses.
func (e *emitter) bare(x ir.Expr) {
	switch x := x.(type) {
	case *ir.Atom:
		e.push(dom.Text(x.Text))

	case *ir.Binary:
		if x.Op.Text == "" {
			e.fail("binary operator without text")
			return
		}
		// The side that would regroup differently at equal precedence
		// needs to bind strictly tighter.
		left, right := x.Op.Prec+1, x.Op.Prec+1
		switch x.Op.Assoc {
		case ir.AssocLeft:
			left = x.Op.Prec
		case ir.AssocRight:
			right = x.Op.Prec
		}
		e.expr(x.Left, left)
		e.push(dom.Text(" " + x.Op.Text + " "))
		e.expr(x.Right, right)

	case *ir.Unary:
		if x.Op.Text == "" {
			e.fail("unary operator without text")
			return
		}
		e.push(dom.Text(x.Op.Text))
		if isNil(x.Operand) {
			e.fail("missing operand of %q", x.Op.Text)
			return
		}
		if isWord(x.Op.Text) || fuses(x.Op.Text, leading(x.Operand, x.Op.Prec)) {
			e.push(dom.Text(" "))
		}
		e.expr(x.Operand, x.Op.Prec)

	case *ir.Apply:
		e.expr(x.Callee, x.Level)
		e.list(x.Open, x.Close, x.Args, false)

	case *ir.Group:
		e.list(x.Open, x.Close, x.Items, x.Trailing)

	case *ir.Template:
		e.parts(x.Parts, false)

	default:
		e.fail("unknown expression %T", x)
	}
}

// list emits a bracketed list of items that breaks one item per line if it
// does not fit.
func (e *emitter) list(opening, closing string, items []ir.Expr, trailing bool) {
	if len(items) == 0 {
		e.push(dom.Text(opening + closing))
		return
	}

	e.withGroup(func() {
		e.push(dom.Text(opening))
		e.withIndent(func() {
			e.push(dom.TextIf(dom.Broken, "\n"))
			for i, item := range items {
				if i > 0 {
					e.push(
						dom.Text(","),
						dom.TextIf(dom.Flat, " "),
						dom.TextIf(dom.Broken, "\n"),
					)
				}
				e.expr(item, 0)
			}
			if trailing && len(items) == 1 {
				e.push(dom.Text(","))
			} else {
				e.push(dom.TextIf(dom.Broken, ","))
			}
		})
		e.push(dom.TextIf(dom.Broken, "\n"), dom.Text(closing))
	})
}

// parts emits a sequence of text and expression slots. If root is set, the
// slots are statement-level expressions.
func (e *emitter) parts(parts []ir.Part, root bool) {
	for _, part := range parts {
		switch {
		case part.Expr == nil:
			e.push(dom.Text(part.Text))
		case root:
			e.root(part.Expr, part.Min)
		default:
			e.expr(part.Expr, part.Min)
		}
	}
}

// leading returns the first rune x prints as when placed in a context that
// requires minPrec, or zero if it prints nothing.
func leading(x ir.Expr, minPrec int) rune {
	for !isNil(x) {
		if x.Prec() < minPrec {
			return '('
		}
		switch y := x.(type) {
		case *ir.Atom:
			r, _ := utf8.DecodeRuneInString(y.Text)
			return r
		case *ir.Unary:
			r, _ := utf8.DecodeRuneInString(y.Op.Text)
			return r
		case *ir.Binary:
			x, minPrec = y.Left, y.Op.Prec
			if y.Op.Assoc != ir.AssocLeft {
				minPrec++
			}
		case *ir.Apply:
			x, minPrec = y.Callee, y.Level
		case *ir.Group:
			r, _ := utf8.DecodeRuneInString(y.Open)
			return r
		case *ir.Template:
			if len(y.Parts) == 0 {
				return 0
			}
			if y.Parts[0].Expr == nil {
				r, _ := utf8.DecodeRuneInString(y.Parts[0].Text)
				return r
			}
			x, minPrec = y.Parts[0].Expr, y.Parts[0].Min
		default:
			return 0
		}
	}
	return 0
}

// isWord returns whether op is spelled with letters, like "not", and so
// must be separated from its operand.
func isWord(op string) bool {
	r, _ := utf8.DecodeLastRuneInString(op)
	return unicode.IsLetter(r) || r == '_'
}

// fuses returns whether writing next directly after op would read as a
// different token, as "-" followed by "-1" would.
func fuses(op string, next rune) bool {
	last, _ := utf8.DecodeLastRuneInString(op)
	return strings.ContainsRune("+-~!*/<>=&|^%", last) && strings.ContainsRune("+-", next)
}
