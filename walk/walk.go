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

// Package walk provides read-only traversal of syntax trees, for tooling
// such as visualizers and differs.
//
// Nodes are visited depth-first, in the order [ast.Node.Children] yields
// them. A non-nil error returned from a callback stops the walk and is
// returned to the caller, except for [SkipChildren].
package walk

import (
	"errors"
	"slices"

	"github.com/bufbuild/astx/ast"
)

// SkipChildren may be returned from an enter callback to skip the children
// of the node just entered. The node's exit callback is still called.
var SkipChildren = errors.New("skip children") //nolint:errname,revive,staticcheck // Sentinel, like fs.SkipDir.

// Path is the list of child indices leading from the root of a walk to a
// node. The root's path is empty.
type Path []int

// Nodes calls fn for every node in the tree rooted at root.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit calls enter for every node in the tree rooted at root
// before its children are walked, and exit afterwards. exit may be nil.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	w := &walker{
		enter: func(_ Path, n ast.Node) error { return enter(n) },
	}
	if exit != nil {
		w.exit = func(_ Path, n ast.Node) error { return exit(n) }
	}
	return w.walk(nil, root)
}

// NodesWithPath is like [Nodes], but also passes each node's [Path] to fn.
// The path is only valid for the duration of the call.
func NodesWithPath(root ast.Node, fn func(Path, ast.Node) error) error {
	return NodesWithPathEnterAndExit(root, fn, nil)
}

// NodesWithPathEnterAndExit is like [NodesEnterAndExit], but also passes
// each node's [Path] to the callbacks.
func NodesWithPathEnterAndExit(root ast.Node, enter, exit func(Path, ast.Node) error) error {
	w := &walker{usePath: true, enter: enter, exit: exit}
	return w.walk(nil, root)
}

// Inspect calls fn for every node in the tree rooted at root. If fn returns
// false, the node's children are skipped.
func Inspect(root ast.Node, fn func(ast.Node) bool) {
	_ = Nodes(root, func(n ast.Node) error {
		if !fn(n) {
			return SkipChildren
		}
		return nil
	})
}

// Find returns the first node, in walk order, for which fn returns true.
func Find(root ast.Node, fn func(ast.Node) bool) ast.Node {
	var found ast.Node
	errFound := errors.New("found")
	_ = Nodes(root, func(n ast.Node) error {
		if fn(n) {
			found = n
			return errFound
		}
		return nil
	})
	return found
}

type walker struct {
	usePath     bool
	enter, exit func(Path, ast.Node) error
}

func (w *walker) walk(path Path, n ast.Node) error {
	if n == nil {
		return nil
	}
	err := w.enter(path, n)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		var i int
		for child := range n.Children() {
			var p Path
			if w.usePath {
				p = append(slices.Clip(path), i)
			}
			if err := w.walk(p, child); err != nil {
				return err
			}
			i++
		}
	}
	if w.exit != nil {
		return w.exit(path, n)
	}
	return nil
}
