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

// Package python renders syntax trees as Python 3 source text.
//
// Rendering happens in two steps. A renderer lowers the tree into the
// intermediate form of package ir, choosing Python's spelling of every
// construct and the precedence of every operator; package emit then turns
// that into text. [Transpile] does both.
//
// The renderer keeps a symbol table of the names each scope has declared.
// It uses the table to decide whether a repeated variable declaration is an
// assignment, and to warn about references to names that were never
// declared. Warnings never cause rendering to fail.
package python

import (
	"errors"
	"io"
	"log/slog"

	"github.com/bufbuild/astx/ast"
	"github.com/bufbuild/astx/emit"
	"github.com/bufbuild/astx/ir"
	"github.com/bufbuild/astx/reporter"
)

// ErrUndeclaredName is the category of the warning reported for a
// reference to a name that no enclosing scope declares.
var ErrUndeclaredName = errors.New("undeclared name")

// Syntax returns the statement punctuation of Python.
func Syntax() emit.Syntax {
	return emit.Syntax{
		Indent:            "    ",
		BlockOpen:         ":",
		EmptyBody:         "pass",
		WrapOperatorRoots: true,
	}
}

// Options configures [Transpile] and [Lower].
type Options struct {
	// MaxWidth is the column past which bracketed lists are broken one item
	// per line. Zero means lines are never broken.
	MaxWidth int

	// Reporter receives errors and warnings. If nil, errors are returned
	// unchanged and warnings are only logged.
	Reporter reporter.Reporter

	// Logger receives debug records about rendering. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Transpile renders node, which may be any kind of node, as Python source
// text. The result has no trailing newline.
//
// Errors from either step are passed to options.Reporter.
func Transpile(options Options, node ast.Node) (string, error) {
	options = options.withDefaults()
	r := newRenderer(options)
	lowered, err := r.lower(node)
	if err != nil {
		return "", err
	}
	return r.emit(lowered)
}

// Lower converts node into the intermediate form, without emitting it.
func Lower(options Options, node ast.Node) (ir.Node, error) {
	return newRenderer(options.withDefaults()).lower(node)
}

func (r *renderer) lower(node ast.Node) (ir.Node, error) {
	lowered, err := r.node(node)
	if err != nil {
		_ = r.handler.HandleError(err)
		return nil, r.handler.Error()
	}
	r.options.Logger.Debug("lowered tree",
		"kind", node.Kind(),
		"id", node.ID(),
		"warnings", r.handler.Warnings(),
	)
	return lowered, nil
}

func (r *renderer) emit(lowered ir.Node) (string, error) {
	text, err := emit.Text(emit.Options{Syntax: Syntax(), MaxWidth: r.options.MaxWidth}, lowered)
	if err != nil {
		_ = r.handler.HandleError(err)
		return "", r.handler.Error()
	}
	return text, nil
}
