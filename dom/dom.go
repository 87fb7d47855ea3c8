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

import "iter"

const (
	kindNone kind = iota //nolint:unused

	kindText   // Ordinary text.
	kindSpace  // All spaces (U+0020).
	kindBreak  // All newlines (U+000A).
	kindGroup  // See [Group].
	kindIndent // See [Indent].
)

// kind is a kind of [tag].
type kind byte

// dom is a flattened tree of tags. Each tag is followed by its children.
type dom []tag

// cursor is a recursive iterator over a [dom].
type cursor iter.Seq2[*tag, cursor]

// tag is a single node of a [dom].
type tag struct {
	text  string
	limit int // Only for kindGroup.

	kind   kind
	cond   Cond
	broken bool

	width, column int // Computed by layout.
	children      int // Number of tags after this one that are its children.
}

// add appends the given tags.
func (d *dom) add(tags ...Tag) {
	for _, tag := range tags {
		if tag != nil {
			tag(d)
		}
	}
}

// push appends a tag, followed by whatever body appends.
func (d *dom) push(tag tag, body func(Sink)) {
	*d = append(*d, tag)
	if body == nil {
		return
	}
	n := len(*d)
	body(d.add)
	(*d)[n-1].children = len(*d) - n
}

// cursor returns an iterator over the top-level tags of this dom, each
// along with an iterator over its children.
func (d dom) cursor() cursor {
	return func(yield func(*tag, cursor) bool) {
		for i := 0; i < len(d); i++ {
			tag := &d[i]
			children := d[i+1 : i+tag.children+1]
			i += len(children)
			if !yield(tag, children.cursor()) {
				return
			}
		}
	}
}

// renderIf returns whether this tag is rendered in a group in the given
// state.
func (t *tag) renderIf(cond Cond) bool {
	return t.cond == Always || t.cond == cond
}

// isSpace returns whether this tag is whitespace subject to merging.
func (t *tag) isSpace() bool {
	return t.kind == kindSpace || t.kind == kindBreak
}

// merge decides which of two adjacent whitespace tags survive.
//
// A space next to a newline is dropped, and of two runs of the same rune
// only the longer one is kept. Never returns false, false.
func merge(a, b *tag) (keepA, keepB bool) {
	switch {
	case a.kind == kindSpace && b.kind == kindBreak:
		return false, true
	case a.kind == kindBreak && b.kind == kindSpace:
		return true, false
	case a.kind == b.kind && a.isSpace():
		bWider := len(a.text) < len(b.text)
		return !bWider, bWider
	}
	return true, true
}
