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

import "github.com/bufbuild/astx/dom"

// Syntax describes the statement-level punctuation of a target language.
type Syntax struct {
	// Indent is written once per nesting level at the start of each line.
	// Defaults to four spaces.
	Indent string

	// BlockOpen ends the header of a compound statement, and BlockClose is
	// written on its own line after each body. For Python these are ":" and
	// "", for C-like languages " {" and "}".
	BlockOpen, BlockClose string

	// Terminator ends every simple statement.
	Terminator string

	// EmptyBody is the statement written in place of an empty body.
	EmptyBody string

	// WrapOperatorRoots parenthesizes a binary operator expression that is
	// the whole of a statement's expression, such as the value of a return
	// statement, or the whole of the emitted text. Everywhere else,
	// parentheses are only inserted where precedence requires them.
	WrapOperatorRoots bool
}

// Options configures [Text].
type Options struct {
	Syntax Syntax

	// MaxWidth is the column past which bracketed lists are broken, one
	// item per line. Zero means lines are never broken.
	MaxWidth int
}

// withDefaults returns a copy of o with defaults applied.
func (o Options) withDefaults() Options {
	if o.Syntax.Indent == "" {
		o.Syntax.Indent = "    "
	}
	return o
}

// domOptions converts emitter options to layout options.
func (o Options) domOptions() dom.Options {
	return dom.Options{
		MaxWidth:     o.MaxWidth,
		TabstopWidth: len(o.Syntax.Indent),
	}
}
