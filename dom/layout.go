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
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/astx/internal/ext/slicesx"
	"github.com/bufbuild/astx/internal/ext/stringsx"
)

// layout decides which groups of a [dom] are broken.
type layout struct {
	Options

	indent []int // Column of each active indentation level.
	column int

	prev *tag // The last whitespace or text tag seen, for merging.
}

func (l *layout) layout(d dom) {
	l.flat(d.cursor())
	l.prev = nil
	l.broken(d.cursor())
}

// flat computes the width of every tag if laid out on a single line, and
// whether it is forced to break.
func (l *layout) flat(cursor cursor) (total int, broken bool) {
	for tag, children := range cursor {
		switch tag.kind {
		case kindText, kindSpace, kindBreak:
			// Only tags that are both rendered when flat can merge.
			if l.prev != nil && tag.renderIf(Flat) {
				keepPrev, keep := merge(l.prev, tag)
				if !keepPrev {
					total -= l.prev.width
					l.prev = nil
				} else if !keep {
					continue
				}
			}

			tag.broken = strings.Contains(tag.text, "\n")
			// Tabs are measured at their widest, since the final column is
			// not known yet.
			tag.width = width(l.Options, -1, tag.text)
			if tag.renderIf(Flat) {
				l.prev = tag
			}
		}

		n, br := l.flat(children)
		tag.width += n
		tag.broken = tag.broken || br

		if tag.renderIf(Flat) {
			total += tag.width
			broken = broken || tag.broken
		}
	}
	return total, broken
}

// broken lays out the contents of a group that has been broken, deciding
// for each nested group whether it also needs to break.
func (l *layout) broken(cursor cursor) {
	for tag, children := range cursor {
		if !tag.renderIf(Broken) {
			continue
		}
		tag.column = l.column

		switch tag.kind {
		case kindText, kindSpace, kindBreak:
			if l.prev != nil {
				keepPrev, keep := merge(l.prev, tag)
				if !keepPrev {
					if !l.prev.broken {
						l.column -= l.prev.width
					}
					l.prev = nil
				} else if !keep {
					continue
				}
			}
			l.prev = tag

			if l.column == 0 {
				l.column, _ = slicesx.Last(l.indent)
			}
			last := stringsx.LastLine(tag.text)
			if len(last) < len(tag.text) {
				l.column = 0
			}
			l.column = width(l.Options, l.column, last)

		case kindGroup:
			tag.broken = tag.broken ||
				tag.column+tag.width > l.MaxWidth ||
				tag.width > tag.limit
			if tag.broken {
				l.broken(children)
			} else {
				l.column += tag.width
			}

		case kindIndent:
			prev, _ := slicesx.Last(l.indent)
			l.indent = append(l.indent, width(l.Options, prev, tag.text))
			l.broken(children)
			_, _ = slicesx.Pop(&l.indent)
		}
	}
}

// width returns the column text ends at if it starts at column.
//
// If column is -1, every tab is counted at its full width, for when the
// starting column is not known.
func width(options Options, column int, text string) int {
	widest := column < 0
	column = max(0, column)

	var i int
	for chunk := range stringsx.Split(text, '\t') {
		if i > 0 {
			tab := options.TabstopWidth
			if !widest {
				tab -= column % options.TabstopWidth
			}
			column += tab
		}
		column += uniseg.StringWidth(chunk)
		i++
	}
	return column
}
