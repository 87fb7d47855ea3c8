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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/astx/ast"
)

// ErrInvalidTree is a sentinel error that is returned when rendering fails,
// but the configured ErrorReporter swallowed every error it was given.
var ErrInvalidTree = errors.New("transpile failed: invalid syntax tree")

// ErrorWithPos is an error about a syntax tree that includes the source
// position of the node that caused it, if it has one.
//
// *ast.Error implements this interface.
type ErrorWithPos interface {
	error
	GetPosition() ast.Position
	Unwrap() error
}

var (
	_ ErrorWithPos = errorWithPos{}
	_ ErrorWithPos = (*ast.Error)(nil)
)

// Error wraps err with a source position.
func Error(pos ast.Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf is like [Error], but builds the underlying error from a format
// string.
func Errorf(pos ast.Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// AsErrorWithPos returns err as an [ErrorWithPos], wrapping it with no
// position if it is not one already.
func AsErrorWithPos(err error) ErrorWithPos {
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		return ewp
	}
	return errorWithPos{underlying: err}
}

type errorWithPos struct {
	underlying error
	pos        ast.Position
}

func (e errorWithPos) Error() string {
	if !e.pos.IsValid() {
		return e.underlying.Error()
	}
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

// GetPosition implements [ErrorWithPos].
func (e errorWithPos) GetPosition() ast.Position {
	return e.pos
}

// Unwrap implements [ErrorWithPos]. The returned error carries no position.
func (e errorWithPos) Unwrap() error {
	return e.underlying
}
