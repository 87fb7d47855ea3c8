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

package ast

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvariantViolation is returned by node constructors when the node
	// they were asked to build would be malformed.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrUnsupportedNodeKind is returned by a backend that has no case for
	// the kind of node it was given.
	ErrUnsupportedNodeKind = errors.New("unsupported node kind")

	// ErrMalformedNode is returned by a backend that finds a node whose shape
	// should have been rejected by its constructor. It indicates a bug, not
	// bad input.
	ErrMalformedNode = errors.New("malformed node")
)

// Error is an error about a particular node.
//
// The value of Error() contains the node's kind, identity, position, and
// cause. Unwrap returns the category of the error, e.g.
// [ErrInvariantViolation], so that callers can use [errors.Is].
type Error struct {
	Kind  Kind
	ID    ID       // Zero for errors raised while constructing a node.
	Pos   Position // Zero if the node has no source position.
	Cause string

	category error
}

// NewError builds an error about n that belongs to the given category.
//
// n may be nil, in which case the error carries no node information.
func NewError(n Node, category error, format string, args ...any) *Error {
	err := &Error{
		Cause:    fmt.Sprintf(format, args...),
		category: category,
	}
	if !isNil(n) {
		err.Kind = n.Kind()
		err.ID = n.base().id
		err.Pos = n.base().pos
	}
	return err
}

// Unsupported returns an [ErrUnsupportedNodeKind] error for n.
func Unsupported(n Node) *Error {
	if isNil(n) {
		return NewError(nil, ErrUnsupportedNodeKind, "no case for nil node")
	}
	return NewError(n, ErrUnsupportedNodeKind, "no case for %v", n.Kind())
}

// Malformed returns an [ErrMalformedNode] error for n.
func Malformed(n Node, format string, args ...any) *Error {
	return NewError(n, ErrMalformedNode, format, args...)
}

// violation returns an [ErrInvariantViolation] error for a node of the given
// kind that could not be constructed.
func violation(kind Kind, opts []Option, format string, args ...any) *Error {
	var b nodeBase
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return &Error{
		Kind:     kind,
		Pos:      b.pos,
		Cause:    fmt.Sprintf(format, args...),
		category: ErrInvariantViolation,
	}
}

// Error implements [error].
func (e *Error) Error() string {
	var buf strings.Builder
	if e.Pos.IsValid() {
		fmt.Fprintf(&buf, "%v: ", e.Pos)
	}
	if e.category != nil {
		fmt.Fprintf(&buf, "%v: ", e.category)
	}
	buf.WriteString(e.Kind.String())
	if e.ID != 0 {
		buf.WriteString(e.ID.String())
	}
	if e.Cause != "" {
		fmt.Fprintf(&buf, ": %s", e.Cause)
	}
	return buf.String()
}

// Unwrap returns this error's category.
func (e *Error) Unwrap() error {
	return e.category
}

// GetPosition returns the position of the node this error is about.
func (e *Error) GetPosition() Position {
	return e.Pos
}
