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

package dom

import (
	"slices"
	"strings"
)

// printer writes out a [dom] once it has been laid out.
type printer struct {
	out strings.Builder

	// Whitespace not yet written. It is flushed by the next text tag, so
	// trailing whitespace is never written.
	spaces, newlines int

	indent []byte
}

// render lays out and prints d.
func render(options Options, d dom) string {
	options = options.withDefaults()
	l := layout{Options: options}
	l.layout(d)

	var p printer
	p.print(Broken, d.cursor())
	return p.out.String()
}

// print prints every tag of cursor that renders in a group in state cond.
func (p *printer) print(cond Cond, cursor cursor) {
	for tag, children := range cursor {
		if !tag.renderIf(cond) {
			continue
		}

		switch tag.kind {
		case kindText:
			p.write(tag.text)

		case kindSpace:
			p.spaces = max(p.spaces, len(tag.text))

		case kindBreak:
			p.newlines = max(p.newlines, len(tag.text))

		case kindGroup:
			inner := Flat
			if tag.broken {
				inner = Broken
			}
			p.print(inner, children)

		case kindIndent:
			p.withIndent(tag.text, func() { p.print(cond, children) })
		}
	}
}

// write flushes pending whitespace and then writes text.
func (p *printer) write(text string) {
	if p.newlines > 0 {
		for range p.newlines {
			p.out.WriteByte('\n')
		}
		p.newlines = 0
		p.spaces = 0
		p.out.Write(p.indent)
	}
	for range p.spaces {
		p.out.WriteByte(' ')
	}
	p.spaces = 0
	p.out.WriteString(text)
}

// withIndent appends by to the indentation prefix for the duration of body.
func (p *printer) withIndent(by string, body func()) {
	prev := p.indent
	p.indent = append(slices.Clip(p.indent), by...)
	defer func() { p.indent = prev }()
	body()
}
