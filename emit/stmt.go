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
	"github.com/bufbuild/astx/dom"
	"github.com/bufbuild/astx/ir"
)

// stmt emits a single statement, starting on the current line.
func (e *emitter) stmt(s ir.Stmt) {
	if e.err != nil {
		return
	}
	if isNil(s) {
		e.fail("missing statement")
		return
	}

	syntax := e.options.Syntax
	switch s := s.(type) {
	case *ir.Line:
		e.parts(s.Parts, true)
		e.push(dom.Text(syntax.Terminator))

	case *ir.Compound:
		if len(s.Clauses) == 0 {
			e.fail("compound statement without clauses")
			return
		}
		for i, clause := range s.Clauses {
			if i > 0 {
				e.push(dom.Text("\n"))
			}
			e.parts(clause.Header, true)
			e.push(dom.Text(syntax.BlockOpen))
			e.body(clause.Body)
			if syntax.BlockClose != "" {
				e.push(dom.Text("\n"), dom.Text(syntax.BlockClose))
			}
		}

	case *ir.Block:
		if len(s.Stmts) == 0 {
			e.empty()
			return
		}
		e.stmts(s.Stmts)

	default:
		e.fail("unknown statement %T", s)
	}
}

// stmts emits a sequence of statements, one per line.
func (e *emitter) stmts(stmts []ir.Stmt) {
	for i, s := range stmts {
		if i > 0 {
			e.push(dom.Text("\n"))
		}
		e.stmt(s)
	}
}

// body emits the indented body of a compound statement, starting on a new
// line.
func (e *emitter) body(stmts []ir.Stmt) {
	e.withIndent(func() {
		e.push(dom.Text("\n"))
		if len(stmts) == 0 {
			e.empty()
			return
		}
		e.stmts(stmts)
	})
}

// empty emits the no-op statement.
func (e *emitter) empty() {
	e.push(dom.Text(e.options.Syntax.EmptyBody), dom.Text(e.options.Syntax.Terminator))
}
