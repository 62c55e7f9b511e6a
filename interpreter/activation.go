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

// Package interpreter implements the tree-walking evaluator (spec.md
// §4.5) and the activation chain it resolves names through (spec.md §4.2
// layers 3-4); the function/overload registry (spec.md §4.4) lives in the
// functions sub-package.
package interpreter

import "github.com/cloud-custodian/cel-go-core/celtypes"

// Activation resolves identifier names to CEL values for a single
// evaluation (spec.md §4.2, §6 "Activation layering"). Layers stack: a
// child activation always falls back to its Parent for names it does
// not itself bind.
type Activation interface {
	// ResolveName returns the value bound to name in this layer (or an
	// ancestor), or false if no layer binds it.
	ResolveName(name string) (celtypes.Value, bool)

	// Parent returns the enclosing activation, or nil at the root.
	Parent() Activation
}

// supplier lazily produces a value the first time it is resolved; hosts
// use this to defer expensive conversions until a binding is actually
// read during evaluation.
type supplier func() celtypes.Value

// MapActivation binds a fixed set of qualified names to values or
// lazy suppliers. It has no parent; stack it under another Activation
// with ExtendActivation to layer bindings.
type MapActivation struct {
	bindings map[string]interface{}
}

// NewActivation builds a root MapActivation from host bindings. Values
// may be supplied as celtypes.Value directly, as a `func() celtypes.Value`
// for lazy binding, or as any Go value NativeToCEL understands.
func NewActivation(bindings map[string]interface{}) *MapActivation {
	return &MapActivation{bindings: bindings}
}

func (a *MapActivation) Parent() Activation { return nil }

func (a *MapActivation) ResolveName(name string) (celtypes.Value, bool) {
	raw, found := a.bindings[name]
	if !found {
		return nil, false
	}
	switch v := raw.(type) {
	case func() celtypes.Value:
		return v(), true
	case celtypes.Value:
		return v, true
	default:
		return celtypes.NativeToCEL(v), true
	}
}

// HierarchicalActivation chains a child activation in front of a parent;
// the child is consulted first (spec.md §6 "Activation layering").
type HierarchicalActivation struct {
	parent Activation
	child  Activation
}

func (a *HierarchicalActivation) Parent() Activation { return a.parent }

func (a *HierarchicalActivation) ResolveName(name string) (celtypes.Value, bool) {
	if v, found := a.child.ResolveName(name); found {
		return v, true
	}
	if a.parent == nil {
		return nil, false
	}
	return a.parent.ResolveName(name)
}

// ExtendActivation layers child in front of parent: name resolution
// tries child first, then falls back to parent.
func ExtendActivation(parent, child Activation) Activation {
	return &HierarchicalActivation{parent: parent, child: child}
}

// varActivation is the transient macro scope each comprehension pushes
// for its iteration variable (spec.md §4.2 layer 5, §4.5 "Macros"). It
// is created and torn down by the evaluator only, never exposed to a
// host, matching the single-binding shape a comprehension needs.
type varActivation struct {
	parent Activation
	name   string
	val    celtypes.Value
}

func (a *varActivation) Parent() Activation { return a.parent }

func (a *varActivation) ResolveName(name string) (celtypes.Value, bool) {
	if name == a.name {
		return a.val, true
	}
	if a.parent == nil {
		return nil, false
	}
	return a.parent.ResolveName(name)
}
