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

package dom_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/astx/dom"
)

// list renders a bracketed, comma-separated list that breaks one item per
// line.
func list(items ...string) dom.Tag {
	return dom.Group(0, func(push dom.Sink) {
		push(dom.Text("("))
		push(dom.Indent("    ", func(push dom.Sink) {
			push(dom.TextIf(dom.Broken, "\n"))
			for i, item := range items {
				if i > 0 {
					push(
						dom.Text(","),
						dom.TextIf(dom.Flat, " "),
						dom.TextIf(dom.Broken, "\n"),
					)
				}
				push(dom.Text(item))
			}
			push(dom.TextIf(dom.Broken, ","))
		}))
		push(dom.TextIf(dom.Broken, "\n"), dom.Text(")"))
	})
}

func TestFlat(t *testing.T) {
	t.Parallel()

	got := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Text("print"), list("aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"))
	})
	assert.Equal(t, "print(aaaaaaaaaa, bbbbbbbbbb, cccccccccc)", got)
}

func TestBroken(t *testing.T) {
	t.Parallel()

	got := dom.Render(dom.Options{MaxWidth: 20}, func(push dom.Sink) {
		push(dom.Text("print"), list("aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"))
	})
	assert.Equal(t, "print(\n    aaaaaaaaaa,\n    bbbbbbbbbb,\n    cccccccccc,\n)", got)
}

func TestFits(t *testing.T) {
	t.Parallel()

	// Exactly at the limit does not break.
	got := dom.Render(dom.Options{MaxWidth: 10}, func(push dom.Sink) {
		push(dom.Text("f"), list("a", "b", "c"))
	})
	assert.Equal(t, "f(a, b, c)", got)
}

func TestGroupLimit(t *testing.T) {
	t.Parallel()

	got := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Group(3, func(push dom.Sink) {
			push(dom.Text("a"), dom.TextIf(dom.Flat, " "), dom.TextIf(dom.Broken, "\n"), dom.Text("bcd"))
		}))
	})
	assert.Equal(t, "a\nbcd", got)
}

func TestIndent(t *testing.T) {
	t.Parallel()

	got := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Text("if x:"))
		push(dom.Indent("  ", func(push dom.Sink) {
			push(dom.Text("\n"), dom.Text("y"))
			push(dom.Text("\n"), dom.Text("while z:"))
			push(dom.Indent("  ", func(push dom.Sink) {
				push(dom.Text("\n"), dom.Text("pass"))
			}))
		}))
		push(dom.Text("\n"), dom.Text("w"))
	})
	assert.Equal(t, "if x:\n  y\n  while z:\n    pass\nw", got)
}

func TestWhitespaceMerging(t *testing.T) {
	t.Parallel()

	got := dom.Render(dom.Options{}, func(push dom.Sink) {
		push(dom.Text("a"), dom.Text(" "), dom.Text("\n"), dom.Text("b"))
		push(dom.Text("  "), dom.Text(" "), dom.Text("c"))
		push(dom.Text("\n"), dom.Text("\n"), dom.Text("\n\n"), dom.Text("d"))
		push(dom.Text(" "), dom.Text("\n"))
	})
	assert.Equal(t, "a\nb  c\n\nd", got)
}

func TestNestedGroups(t *testing.T) {
	t.Parallel()

	// The outer list breaks; the inner one still fits on its line.
	got := dom.Render(dom.Options{MaxWidth: 16}, func(push dom.Sink) {
		push(dom.Text("f"), dom.Group(0, func(push dom.Sink) {
			push(dom.Text("("))
			push(dom.Indent("    ", func(push dom.Sink) {
				push(dom.TextIf(dom.Broken, "\n"), dom.Text("g"), list("x", "y"))
				push(dom.Text(","), dom.TextIf(dom.Flat, " "), dom.TextIf(dom.Broken, "\n"))
				push(dom.Text(strings.Repeat("z", 10)), dom.TextIf(dom.Broken, ","))
			}))
			push(dom.TextIf(dom.Broken, "\n"), dom.Text(")"))
		}))
	})
	assert.Equal(t, "f(\n    g(x, y),\n    zzzzzzzzzz,\n)", got)
}

func TestWideText(t *testing.T) {
	t.Parallel()

	// Wide runes count double.
	got := dom.Render(dom.Options{MaxWidth: 8}, func(push dom.Sink) {
		push(dom.Text("f"), list("日本", "語"))
	})
	assert.Equal(t, "f(\n    日本,\n    語,\n)", got)
}
