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

// Package dom is a small layout engine for pretty-printing source code.
//
// A document is built by pushing [Tag]s into a [Sink]. Text tags carry the
// output itself; [Group] tags enclose content that may be laid out either
// flat, on one line, or broken across several lines; [Indent] tags push a
// prefix that is written at the start of every line they contain. Tags can
// be conditioned on the state of their enclosing group with [TextIf], which
// is how a comma-separated list turns into one item per line.
//
// [Render] lays the document out in two passes. The first computes the flat
// width of every group, and the second walks the document left to right,
// breaking every group that contains a newline or that would overflow
// [Options.MaxWidth].
package dom

import (
	"math"

	"github.com/bufbuild/astx/internal/ext/stringsx"
)

// Render renders the document built by content.
//
// Unlike a file printer, the output is not terminated with a newline, and
// newlines at the very end of the document are dropped.
func Render(options Options, content func(push Sink)) string {
	d := new(dom)
	content(d.add)
	return render(options, *d)
}

// Options configures [Render].
type Options struct {
	// The column past which groups are broken. Zero means no limit.
	MaxWidth int

	// The number of columns a tab advances to. Defaults to 1.
	TabstopWidth int
}

// withDefaults fills in the defaults of any zero fields.
func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = math.MaxInt
	}
	if o.TabstopWidth <= 0 {
		o.TabstopWidth = 1
	}
	return o
}

// Tag is a formatting directive. The nil Tag renders as nothing.
type Tag func(*dom)

// Sink appends tags to whatever context it was created for. A Sink passed
// to a callback must not be used after the callback returns.
type Sink func(...Tag)

const (
	Always Cond = iota // Render unconditionally.
	Flat               // Render only in a flat group.
	Broken             // Render only in a broken group.
)

// Cond conditions a tag on the state of its enclosing group. The top level
// of a document counts as broken.
type Cond byte

// Text returns a tag that renders text verbatim.
//
// Text made only of spaces or only of newlines is whitespace: a space run
// next to a newline run is dropped, and of two adjacent runs of the same
// rune only the longer is kept. Whitespace at the end of a line is never
// written.
func Text(text string) Tag {
	return TextIf(Always, text)
}

// TextIf is like [Text], but only renders if cond holds.
func TextIf(cond Cond, text string) Tag {
	return func(d *dom) {
		if text == "" {
			return
		}
		k := kindText
		switch {
		case stringsx.Every(text, ' '):
			k = kindSpace
		case stringsx.Every(text, '\n'):
			k = kindBreak
		}
		d.push(tag{kind: k, text: text, cond: cond}, nil)
	}
}

// Group returns a tag that lays content out as a unit.
//
// A group is broken if it contains a newline or a broken group, if it is
// wider than maxWidth when flat, or if laying it out flat would run past
// [Options.MaxWidth]. A maxWidth of zero means no limit of its own.
func Group(maxWidth int, content func(push Sink)) Tag {
	return GroupIf(Always, maxWidth, content)
}

// GroupIf is like [Group], but only renders if cond holds.
func GroupIf(cond Cond, maxWidth int, content func(push Sink)) Tag {
	return func(d *dom) {
		if maxWidth <= 0 {
			maxWidth = math.MaxInt
		}
		d.push(tag{kind: kindGroup, limit: maxWidth, cond: cond}, content)
	}
}

// Indent returns a tag that writes by at the start of every non-empty line
// begun inside of content.
//
// The indentation ends with content, so it cannot leak into sibling tags.
func Indent(by string, content func(push Sink)) Tag {
	return func(d *dom) {
		if by == "" {
			content(d.add)
			return
		}
		d.push(tag{kind: kindIndent, text: by}, content)
	}
}
