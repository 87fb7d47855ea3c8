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
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Argument declares a single parameter: a name, a type, and an optional
// default value.
type Argument struct {
	nodeBase
	name  string
	typ   DataType
	deflt Expr
}

// NewArgument builds a new Argument. deflt may be nil.
func NewArgument(name string, typ DataType, deflt Expr, opts ...Option) (*Argument, error) {
	switch {
	case !IsIdent(name):
		return nil, violation(KindArgument, opts, "%q is not a valid identifier", name)
	case !typ.IsValid():
		return nil, violation(KindArgument, opts, "argument %q has invalid type %v", name, typ)
	}
	if isNil(deflt) {
		deflt = nil
	}
	return &Argument{nodeBase: newBase(opts), name: name, typ: typ, deflt: deflt}, nil
}

// Name returns the argument's name.
func (n *Argument) Name() string { return n.name }

// Type returns the argument's declared type.
func (n *Argument) Type() DataType { return n.typ }

// Default returns the argument's default value, or nil if it has none.
func (n *Argument) Default() Expr { return n.deflt }

// Kind implements [Node].
func (*Argument) Kind() Kind { return KindArgument }

// Children implements [Node].
func (n *Argument) Children() iter.Seq[Node] { return children(n.deflt) }

// String implements [fmt.Stringer].
func (n *Argument) String() string { return fmt.Sprintf("Argument[%s: %v]", n.name, n.typ) }

// Arguments is an ordered list of [Argument]s with unique names.
//
// Once an argument in the list declares a default, every argument after it
// must also declare one.
type Arguments struct {
	nodeBase
	args []*Argument
}

// NewArguments builds a new Arguments.
func NewArguments(args []*Argument, opts ...Option) (*Arguments, error) {
	seen := make(map[string]int, len(args))
	defaulted := -1
	for i, arg := range args {
		if !isBuilt(arg) {
			return nil, violation(KindArguments, opts, "argument %d is missing", i)
		}
		if j, ok := seen[arg.name]; ok {
			return nil, violation(KindArguments, opts,
				"duplicate argument name %q at positions %d and %d", arg.name, j, i)
		}
		seen[arg.name] = i

		switch {
		case arg.deflt != nil && defaulted < 0:
			defaulted = i
		case arg.deflt == nil && defaulted >= 0:
			return nil, violation(KindArguments, opts,
				"argument %q has no default but follows defaulted argument %q",
				arg.name, args[defaulted].name)
		}
	}
	return &Arguments{nodeBase: newBase(opts), args: slices.Clone(args)}, nil
}

// Len returns the number of arguments.
func (n *Arguments) Len() int { return len(n.args) }

// At returns the i-th argument.
func (n *Arguments) At(i int) *Argument { return n.args[i] }

// All returns the arguments in declaration order. The returned slice must not
// be modified.
func (n *Arguments) All() []*Argument { return n.args }

// Kind implements [Node].
func (*Arguments) Kind() Kind { return KindArguments }

// Children implements [Node].
func (n *Arguments) Children() iter.Seq[Node] { return childSeq(n.args) }

// String implements [fmt.Stringer].
func (n *Arguments) String() string {
	names := make([]string, len(n.args))
	for i, arg := range n.args {
		names[i] = arg.name
	}
	return "Arguments[" + strings.Join(names, ", ") + "]"
}

// FunctionPrototype is a function's signature: its name, arguments, and
// return type.
type FunctionPrototype struct {
	nodeBase
	name string
	args *Arguments
	ret  DataType
}

// NewFunctionPrototype builds a new FunctionPrototype.
func NewFunctionPrototype(name string, args *Arguments, ret DataType, opts ...Option) (*FunctionPrototype, error) {
	switch {
	case !IsIdent(name):
		return nil, violation(KindFunctionPrototype, opts, "%q is not a valid identifier", name)
	case !isBuilt(args):
		return nil, violation(KindFunctionPrototype, opts, "function %q is missing its argument list", name)
	case !ret.IsValid():
		return nil, violation(KindFunctionPrototype, opts, "function %q has invalid return type %v", name, ret)
	}
	return &FunctionPrototype{nodeBase: newBase(opts), name: name, args: args, ret: ret}, nil
}

// Name returns the function's name.
func (n *FunctionPrototype) Name() string { return n.name }

// Args returns the function's arguments.
func (n *FunctionPrototype) Args() *Arguments { return n.args }

// ReturnType returns the function's return type.
func (n *FunctionPrototype) ReturnType() DataType { return n.ret }

// Kind implements [Node].
func (*FunctionPrototype) Kind() Kind { return KindFunctionPrototype }

// Children implements [Node].
func (n *FunctionPrototype) Children() iter.Seq[Node] { return children(n.args) }

// String implements [fmt.Stringer].
func (n *FunctionPrototype) String() string { return "FunctionPrototype[" + n.name + "]" }

// FunctionDef defines a function: a prototype and a body.
type FunctionDef struct {
	nodeBase
	proto *FunctionPrototype
	body  *Block
}

// NewFunctionDef builds a new FunctionDef.
func NewFunctionDef(proto *FunctionPrototype, body *Block, opts ...Option) (*FunctionDef, error) {
	switch {
	case !isBuilt(proto):
		return nil, violation(KindFunctionDef, opts, "missing prototype")
	case !isBuilt(body):
		return nil, violation(KindFunctionDef, opts, "function %q is missing its body", proto.name)
	}
	return &FunctionDef{nodeBase: newBase(opts), proto: proto, body: body}, nil
}

// Prototype returns the function's signature.
func (n *FunctionDef) Prototype() *FunctionPrototype { return n.proto }

// Body returns the function's body.
func (n *FunctionDef) Body() *Block { return n.body }

// Kind implements [Node].
func (*FunctionDef) Kind() Kind { return KindFunctionDef }

// Children implements [Node].
func (n *FunctionDef) Children() iter.Seq[Node] { return children(n.proto, n.body) }

// String implements [fmt.Stringer].
func (n *FunctionDef) String() string {
	if n.proto == nil {
		return "FunctionDef"
	}
	return "FunctionDef[" + n.proto.name + "]"
}

// AliasExpr names a module or symbol to import, optionally under a different
// name.
type AliasExpr struct {
	nodeBase
	name, asName string
}

// NewAliasExpr builds a new AliasExpr. asName may be empty.
func NewAliasExpr(name, asName string, opts ...Option) (*AliasExpr, error) {
	switch {
	case !IsDottedName(name):
		return nil, violation(KindAliasExpr, opts, "%q is not a valid dotted name", name)
	case asName != "" && !IsIdent(asName):
		return nil, violation(KindAliasExpr, opts, "%q is not a valid identifier", asName)
	}
	return &AliasExpr{nodeBase: newBase(opts), name: name, asName: asName}, nil
}

// Name returns the imported name.
func (n *AliasExpr) Name() string { return n.name }

// AsName returns the local name, or "" if the import is not renamed.
func (n *AliasExpr) AsName() string { return n.asName }

// Bound returns the name this alias introduces into scope: the rename if
// there is one, else the first component of the dotted name.
func (n *AliasExpr) Bound() string {
	if n.asName != "" {
		return n.asName
	}
	first, _, _ := strings.Cut(n.name, ".")
	return first
}

// Kind implements [Node].
func (*AliasExpr) Kind() Kind { return KindAliasExpr }

// Children implements [Node].
func (*AliasExpr) Children() iter.Seq[Node] { return children() }

// String implements [fmt.Stringer].
func (n *AliasExpr) String() string {
	if n.asName == "" {
		return "AliasExpr[" + n.name + "]"
	}
	return "AliasExpr[" + n.name + " as " + n.asName + "]"
}

// WithItem is a single context manager in a [WithStmt]: a context
// expression and an optional name to bind its value to.
type WithItem struct {
	nodeBase
	context Expr
	name    string
}

// NewWithItem builds a new WithItem. name may be empty.
func NewWithItem(context Expr, name string, opts ...Option) (*WithItem, error) {
	switch {
	case isNil(context):
		return nil, violation(KindWithItem, opts, "missing context expression")
	case name != "" && !IsIdent(name):
		return nil, violation(KindWithItem, opts, "%q is not a valid identifier", name)
	}
	return &WithItem{nodeBase: newBase(opts), context: context, name: name}, nil
}

// Context returns the context expression.
func (n *WithItem) Context() Expr { return n.context }

// InstanceName returns the bound name, or "" if there is none.
func (n *WithItem) InstanceName() string { return n.name }

// Kind implements [Node].
func (*WithItem) Kind() Kind { return KindWithItem }

// Children implements [Node].
func (n *WithItem) Children() iter.Seq[Node] { return children(n.context) }

// String implements [fmt.Stringer].
func (n *WithItem) String() string {
	if isNil(n.context) {
		return "WithItem"
	}
	if n.name == "" {
		return n.context.String()
	}
	return n.context.String() + " as " + n.name
}
