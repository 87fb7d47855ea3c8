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

// Package astx renders language-agnostic syntax trees as source text.
//
// A tree is built from the node constructors in package ast, and rendered
// in two stages: a backend, such as package python, lowers it into the
// intermediate form of package ir, and package emit prints that form,
// inserting parentheses, line breaks, and indentation.
//
// This package ties the stages together. [ToPython] renders one tree. A
// [Transpiler] renders many independent trees at once, using several CPU
// cores, and reports the outcome of each tree separately, so that one
// malformed tree never affects the others:
//
//	transpiler := astx.Transpiler{MaxWidth: 88}
//	results, err := transpiler.Transpile(ctx, trees...)
//	if err != nil {
//		return err // The context was cancelled.
//	}
//	for _, result := range results {
//		if result.Err != nil {
//			...
//		}
//		fmt.Println(result.Text)
//	}
//
// Errors and warnings for every tree are also delivered to the Transpiler's
// [reporter.Reporter], which must then be safe for concurrent use.
package astx
