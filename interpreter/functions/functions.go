// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package functions implements the function/operator overload registry
// (spec.md §4.4): a function name maps to one or more overloads, each
// keyed by the Kind of its arguments, dispatched by exact Kind match at
// call time.
package functions

import (
	"fmt"

	"github.com/cloud-custodian/cel-go-core/celtypes"
)

// Unary implements a one-argument overload.
type Unary func(arg celtypes.Value) celtypes.Value

// Binary implements a two-argument overload.
type Binary func(lhs, rhs celtypes.Value) celtypes.Value

// Variadic implements an overload taking any number of arguments. The
// standard builtins do not use it (the component accessors register
// separate Unary and Binary overloads); it is available to host functions.
type Variadic func(args []celtypes.Value) celtypes.Value

// Overload is one typed implementation registered under a function
// name. ArgKinds fixes the arity and, kind by kind, which operand kinds
// this overload accepts; a nil ArgKinds with Variadic set accepts any
// argument count and kind, deferring validation to the implementation.
type Overload struct {
	Function string
	ArgKinds []celtypes.Kind
	Unary    Unary
	Binary   Binary
	Variadic Variadic
}

func (o *Overload) arity() int {
	if o.Unary != nil {
		return 1
	}
	if o.Binary != nil {
		return 2
	}
	return -1
}

func (o *Overload) matches(args []celtypes.Value) bool {
	if o.ArgKinds == nil {
		switch {
		case o.Unary != nil:
			return len(args) == 1
		case o.Binary != nil:
			return len(args) == 2
		default:
			return true
		}
	}
	if len(args) != len(o.ArgKinds) {
		return false
	}
	for i, k := range o.ArgKinds {
		if args[i].Type().Kind != k {
			return false
		}
	}
	return true
}

func (o *Overload) call(args []celtypes.Value) celtypes.Value {
	switch {
	case o.Unary != nil:
		return o.Unary(args[0])
	case o.Binary != nil:
		return o.Binary(args[0], args[1])
	default:
		return o.Variadic(args)
	}
}

// StructBuilder constructs a Message-kind value from its named field
// initializers, backing `TypeName{field: value, ...}` construction
// (spec.md §4.1). The core has no protobuf type registry (spec.md §1
// Non-goals), so a host must register a builder per constructible type
// name; an unregistered type name is an evaluation error.
type StructBuilder func(fields map[string]celtypes.Value) celtypes.Value

// Registry holds every overload known to an environment: the built-in
// set plus any host-registered extensions (spec.md §4.4), plus any
// host-registered message-construction builders.
type Registry struct {
	overloads   map[string][]*Overload
	structTypes map[string]StructBuilder
}

// NewRegistry returns an empty registry. Use NewStandardRegistry to get
// one pre-populated with the builtin operators and functions.
func NewRegistry() *Registry {
	return &Registry{overloads: make(map[string][]*Overload), structTypes: make(map[string]StructBuilder)}
}

// RegisterStructType makes typeName constructible via `typeName{...}`.
func (r *Registry) RegisterStructType(typeName string, builder StructBuilder) {
	r.structTypes[typeName] = builder
}

// LookupStructType returns the builder registered for typeName, if any.
func (r *Registry) LookupStructType(typeName string) (StructBuilder, bool) {
	b, found := r.structTypes[typeName]
	return b, found
}

// Add registers ov, reporting a construction error (spec.md §4.4
// "ambiguity is a registry construction error") if an identical
// signature is already registered under the same name.
func (r *Registry) Add(ov *Overload) error {
	for _, existing := range r.overloads[ov.Function] {
		if sameSignature(existing, ov) {
			return fmt.Errorf("ambiguous overload for %q: duplicate signature", ov.Function)
		}
	}
	r.overloads[ov.Function] = append(r.overloads[ov.Function], ov)
	return nil
}

func sameSignature(a, b *Overload) bool {
	if a.arity() != b.arity() {
		return false
	}
	if len(a.ArgKinds) != len(b.ArgKinds) {
		return false
	}
	for i := range a.ArgKinds {
		if a.ArgKinds[i] != b.ArgKinds[i] {
			return false
		}
	}
	return true
}

// Dispatch finds the unique overload of function matching args' kinds
// and invokes it, or returns a *celtypes.Err of kind ErrNoSuchOverload.
func (r *Registry) Dispatch(function string, args []celtypes.Value) celtypes.Value {
	for _, ov := range r.overloads[function] {
		if ov.matches(args) {
			return ov.call(args)
		}
	}
	return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no matching overload for %s(%s)", function, describeArgs(args))
}

// Has reports whether any overload is registered under function, used
// by the evaluator to distinguish "unknown function" from "no matching
// overload for these argument kinds".
func (r *Registry) Has(function string) bool {
	return len(r.overloads[function]) > 0
}

func describeArgs(args []celtypes.Value) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.Type().String()
	}
	return s
}
