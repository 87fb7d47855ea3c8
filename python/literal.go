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

package python

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// formatInt formats an integer literal.
func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatFloat formats a float the way Python's repr does: the shortest
// text that reads back as v, in positional notation for exponents from -4
// through 15, and always with a "." or an exponent.
func formatFloat(v float64) string {
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}
	return text
}

// isNegative returns whether a formatted number begins with a minus sign,
// and so binds like a unary minus.
func isNegative(v float64) bool {
	return math.Signbit(v)
}

// quote formats a string literal in double quotes.
func quote(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			switch {
			case r < utf8.RuneSelf && unicode.IsPrint(r):
				buf.WriteRune(r)
			case r < 0x100 && !unicode.IsPrint(r):
				fmt.Fprintf(&buf, `\x%02x`, r)
			case unicode.IsPrint(r):
				buf.WriteRune(r)
			case r < 0x10000:
				fmt.Fprintf(&buf, `\u%04x`, r)
			default:
				fmt.Fprintf(&buf, `\U%08x`, r)
			}
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
