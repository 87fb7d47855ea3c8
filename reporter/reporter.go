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

// Package reporter contains the types used for reporting errors and
// warnings while rendering syntax trees.
package reporter

import (
	"errors"
	"sync"

	"github.com/bufbuild/astx/ast"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, rendering aborts with that error. If it returns
// nil, rendering of the current tree still stops, but the caller sees
// [ErrInvalidTree] instead of the original error.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// never stop rendering; they flag things like references to names that were
// never declared.
type WarningReporter func(ErrorWithPos)

// Reporter receives the errors and warnings of rendering.
//
// A Reporter shared by several concurrent renders must be safe for
// concurrent use.
type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

// NewReporter returns a Reporter that calls the given functions. Either may
// be nil: a nil errs returns every error unchanged, and a nil warnings
// discards warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler funnels the errors and warnings of a single render through a
// [Reporter], remembering the first error.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
	warnings     int
}

// NewHandler returns a handler that reports to rep. A nil rep returns every
// error unchanged and discards warnings.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports err, and returns the error that should abort
// rendering. Once an error has been handled, later errors are not reported
// and the first result is returned again.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil || h.errsReported {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter.Error(AsErrorWithPos(err))
	return h.err
}

// HandleErrorf is like [Handler.HandleError], but builds the error from a
// format string.
func (h *Handler) HandleErrorf(pos ast.Position, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleWarning reports err as a warning.
func (h *Handler) HandleWarning(err error) {
	h.mu.Lock()
	h.warnings++
	h.mu.Unlock()

	h.reporter.Warning(AsErrorWithPos(err))
}

// Warnings returns the number of warnings handled so far.
func (h *Handler) Warnings() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.warnings
}

// Error returns the error rendering should fail with: the reporter's result
// for the first handled error, or [ErrInvalidTree] if the reporter swallowed
// it. It returns nil if no errors were handled.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidTree
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, which is nil
// if it swallowed the error or no error was handled.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// IsInvalidTree returns whether err is, or wraps, [ErrInvalidTree].
func IsInvalidTree(err error) bool {
	return errors.Is(err, ErrInvalidTree)
}
