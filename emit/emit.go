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

// Package emit turns the intermediate form of package ir into source text.
//
// The emitter owns the concerns that are the same for every target
// language: it inserts parentheses where an operand binds more loosely than
// its context requires, separates statements with newlines, indents the
// bodies of compound statements, and, given a width limit, breaks long
// bracketed lists one item per line. Everything target-specific is either
// already spelled out in the ir or described by a [Syntax].
//
// Emitting is a pure function of its input: the same ir always produces the
// same text.
package emit

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/bufbuild/astx/dom"
	"github.com/bufbuild/astx/ir"
)

// ErrInvalid is returned when the ir contains a nil or unknown node.
var ErrInvalid = errors.New("invalid intermediate form")

// Text renders node as source text. The result has no trailing newline.
func Text(options Options, node ir.Node) (string, error) {
	options = options.withDefaults()
	var err error
	text := dom.Render(options.domOptions(), func(push dom.Sink) {
		e := &emitter{options: options, push: push}
		e.node(node)
		err = e.err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// Lines is like [Text], but splits the result into lines.
func Lines(options Options, node ir.Node) ([]string, error) {
	text, err := Text(options, node)
	if err != nil || text == "" {
		return nil, err
	}
	return strings.Split(text, "\n"), nil
}

// emitter converts ir into dom tags.
type emitter struct {
	options Options
	push    dom.Sink
	err     error // The first error encountered. Once set, nothing more is pushed.
}

func (e *emitter) node(n ir.Node) {
	switch n := n.(type) {
	case ir.Expr:
		e.root(n, 0)
	case ir.Stmt:
		e.stmt(n)
	case *ir.Module:
		if n == nil {
			e.fail("nil %T", n)
			return
		}
		e.stmts(n.Stmts)
	default:
		e.fail("unknown node %T", n)
	}
}

// fail records an error, unless one was recorded already.
func (e *emitter) fail(format string, args ...any) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
}

// withIndent runs fn with every tag it pushes indented one level.
func (e *emitter) withIndent(fn func()) {
	push := e.push
	defer func() { e.push = push }()
	push(dom.Indent(e.options.Syntax.Indent, func(inner dom.Sink) {
		e.push = inner
		fn()
	}))
}

// withGroup runs fn with every tag it pushes inside of a group.
func (e *emitter) withGroup(fn func()) {
	push := e.push
	defer func() { e.push = push }()
	push(dom.Group(0, func(inner dom.Sink) {
		e.push = inner
		fn()
	}))
}

// isNil returns whether n is nil, including a typed nil pointer.
func isNil(n ir.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
