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

package interpreter

import (
	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/common/ast"
	"github.com/cloud-custodian/cel-go-core/common/containers"
	"github.com/cloud-custodian/cel-go-core/common/operators"
	"github.com/cloud-custodian/cel-go-core/interpreter/functions"
)

// Interpretable is a compiled, ready-to-evaluate AST: an environment's
// container and function registry bound to an expression tree, ready to
// be walked against any number of activations (spec.md §6 "Program").
// Immutable once built; safe to share across goroutines (spec.md §5).
type Interpretable struct {
	expr       *ast.Expr
	container  *containers.Container
	registry   *functions.Registry
}

// NewInterpretable binds expr to registry and container for repeated
// evaluation.
func NewInterpretable(expr *ast.Expr, container *containers.Container, registry *functions.Registry) *Interpretable {
	return &Interpretable{expr: expr, container: container, registry: registry}
}

// Eval walks the AST against activation, producing a CEL value or an
// *celtypes.Err (spec.md §4.5). It never panics on malformed input: every
// error path returns an Err value instead.
func (p *Interpretable) Eval(activation Activation) celtypes.Value {
	return p.eval(p.expr, activation)
}

func (p *Interpretable) eval(e *ast.Expr, a Activation) celtypes.Value {
	switch e.Kind {
	case ast.LiteralKind:
		return e.Literal
	case ast.IdentKind:
		return p.resolveIdent(e.Ident, a)
	case ast.SelectKind:
		return p.evalSelect(e, a)
	case ast.CallKind:
		return p.evalCall(e, a)
	case ast.CreateListKind:
		return p.evalList(e, a)
	case ast.CreateMapKind:
		return p.evalMap(e, a)
	case ast.CreateStructKind:
		return p.evalStruct(e, a)
	case ast.ComprehensionKind:
		return p.evalComprehension(e, a)
	}
	return celtypes.NewErr(celtypes.ErrUnknown, "unhandled expression kind")
}

// resolveIdent implements container-qualified name resolution (spec.md
// §4.2 "Resolution of a dotted name"): try the longest container-prefixed
// candidate first, falling through to shorter ones, then the bare name.
func (p *Interpretable) resolveIdent(name string, a Activation) celtypes.Value {
	for _, candidate := range p.container.ResolveCandidateNames(name) {
		if v, found := a.ResolveName(candidate); found {
			return v
		}
	}
	return celtypes.NewErr(celtypes.ErrUnknownVariable, "unknown variable: %s", name)
}

// evalSelect implements `e.f`, including has(e.f)'s TestOnly presence
// probe (spec.md §4.1, §4.5).
func (p *Interpretable) evalSelect(e *ast.Expr, a Activation) celtypes.Value {
	operand := p.eval(e.Select.Operand, a)
	if celtypes.IsError(operand) {
		return operand
	}
	if e.Select.TestOnly {
		return p.evalHas(operand, e.Select.Field)
	}
	switch v := operand.(type) {
	case *celtypes.Map:
		return v.Get(celtypes.String(e.Select.Field))
	case celtypes.Fielder:
		return v.Get(e.Select.Field)
	}
	return celtypes.NewErr(celtypes.ErrNoSuchField, "no such field '%s' on %s", e.Select.Field, operand.Type())
}

// evalHas implements has(e.f)'s per-kind presence semantics (spec.md
// §4.5): Map key presence is a plain lookup; Message field presence is
// delegated to the Message's own IsSet (proto presence rules); anything
// else is an error, not a false.
func (p *Interpretable) evalHas(operand celtypes.Value, field string) celtypes.Value {
	switch v := operand.(type) {
	case *celtypes.Map:
		return v.Contains(celtypes.String(field))
	case celtypes.FieldTester:
		return v.IsSet(field)
	}
	return celtypes.NewErr(celtypes.ErrNoSuchOverload, "has() not supported on %s", operand.Type())
}

func (p *Interpretable) evalList(e *ast.Expr, a Activation) celtypes.Value {
	elems := make([]celtypes.Value, len(e.List.Elements))
	for i, elemExpr := range e.List.Elements {
		v := p.eval(elemExpr, a)
		if celtypes.IsError(v) {
			return v
		}
		elems[i] = v
	}
	return celtypes.NewList(elems)
}

func (p *Interpretable) evalMap(e *ast.Expr, a Activation) celtypes.Value {
	keys := make([]celtypes.Value, len(e.Map.Entries))
	vals := make([]celtypes.Value, len(e.Map.Entries))
	for i, entry := range e.Map.Entries {
		k := p.eval(entry.Key, a)
		if celtypes.IsError(k) {
			return k
		}
		v := p.eval(entry.Value, a)
		if celtypes.IsError(v) {
			return v
		}
		keys[i], vals[i] = k, v
	}
	return celtypes.NewMap(keys, vals)
}

// evalStruct implements message construction `TypeName{field: expr,
// ...}`. Only Go-native struct construction via a host-registered
// builder is supported here; the core has no protobuf type registry
// (spec.md §1 "Non-goals": schema checking against a full protobuf
// registry is out of scope), so an unregistered type name is an error.
func (p *Interpretable) evalStruct(e *ast.Expr, a Activation) celtypes.Value {
	builder, found := p.registry.LookupStructType(e.Struct.TypeName)
	if !found {
		return celtypes.NewErr(celtypes.ErrNoSuchOverload, "unknown message type '%s'", e.Struct.TypeName)
	}
	fields := make(map[string]celtypes.Value, len(e.Struct.Fields))
	for _, f := range e.Struct.Fields {
		v := p.eval(f.Value, a)
		if celtypes.IsError(v) {
			return v
		}
		fields[f.Name] = v
	}
	return builder(fields)
}

// evalCall implements operator/function dispatch, including the
// commutative short-circuit error-absorption rule for `&&`, `||`, and
// the conditional (spec.md §4.5).
func (p *Interpretable) evalCall(e *ast.Expr, a Activation) celtypes.Value {
	switch e.Call.Function {
	case operators.LogicalAnd:
		return p.evalLogicalAnd(e.Call.Args[0], e.Call.Args[1], a)
	case operators.LogicalOr:
		return p.evalLogicalOr(e.Call.Args[0], e.Call.Args[1], a)
	case operators.Conditional:
		return p.evalConditional(e.Call.Args[0], e.Call.Args[1], e.Call.Args[2], a)
	}

	args := make([]celtypes.Value, 0, len(e.Call.Args)+1)
	if e.Call.Target != nil {
		t := p.eval(e.Call.Target, a)
		if celtypes.IsError(t) {
			return t
		}
		args = append(args, t)
	}
	for _, argExpr := range e.Call.Args {
		v := p.eval(argExpr, a)
		if celtypes.IsError(v) {
			return v
		}
		args = append(args, v)
	}
	return p.registry.Dispatch(e.Call.Function, args)
}

// evalLogicalAnd implements `a && b` with commutative error absorption:
// a false operand wins even if the other operand would have errored
// (spec.md §4.5).
func (p *Interpretable) evalLogicalAnd(lhsExpr, rhsExpr *ast.Expr, a Activation) celtypes.Value {
	lhs := p.eval(lhsExpr, a)
	if b, ok := lhs.(celtypes.Bool); ok && !bool(b) {
		return celtypes.False
	}
	rhs := p.eval(rhsExpr, a)
	if b, ok := rhs.(celtypes.Bool); ok && !bool(b) {
		return celtypes.False
	}
	if celtypes.IsError(lhs) {
		return lhs
	}
	if celtypes.IsError(rhs) {
		return rhs
	}
	lb, lok := lhs.(celtypes.Bool)
	rb, rok := rhs.(celtypes.Bool)
	if !lok || !rok {
		return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s && %s", lhs.Type(), rhs.Type())
	}
	return celtypes.Bool(bool(lb) && bool(rb))
}

// evalLogicalOr implements `a || b` symmetrically: a true operand wins
// even if the other would have errored.
func (p *Interpretable) evalLogicalOr(lhsExpr, rhsExpr *ast.Expr, a Activation) celtypes.Value {
	lhs := p.eval(lhsExpr, a)
	if b, ok := lhs.(celtypes.Bool); ok && bool(b) {
		return celtypes.True
	}
	rhs := p.eval(rhsExpr, a)
	if b, ok := rhs.(celtypes.Bool); ok && bool(b) {
		return celtypes.True
	}
	if celtypes.IsError(lhs) {
		return lhs
	}
	if celtypes.IsError(rhs) {
		return rhs
	}
	lb, lok := lhs.(celtypes.Bool)
	rb, rok := rhs.(celtypes.Bool)
	if !lok || !rok {
		return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s || %s", lhs.Type(), rhs.Type())
	}
	return celtypes.Bool(bool(lb) || bool(rb))
}

// evalConditional implements `c ? t : e`: only the selected branch is
// evaluated; a condition error propagates directly (spec.md §4.5).
func (p *Interpretable) evalConditional(condExpr, thenExpr, elseExpr *ast.Expr, a Activation) celtypes.Value {
	cond := p.eval(condExpr, a)
	b, ok := cond.(celtypes.Bool)
	if !ok {
		if celtypes.IsError(cond) {
			return cond
		}
		return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: _?_:_(%s, ...)", cond.Type())
	}
	if bool(b) {
		return p.eval(thenExpr, a)
	}
	return p.eval(elseExpr, a)
}

// evalComprehension drives every macro's lowered ComprehensionExpr form
// (spec.md §4.5 "Macros"): iterate IterRange, binding IterVar and
// AccuVar in a transient scope, stopping early once LoopCondition goes
// false (the short-circuit quantifiers set it up that way; filter/map
// loop-conditions are always true, i.e. no early exit).
func (p *Interpretable) evalComprehension(e *ast.Expr, a Activation) celtypes.Value {
	c := e.Comprehension
	rangeVal := p.eval(c.IterRange, a)
	if celtypes.IsError(rangeVal) {
		return rangeVal
	}
	iter, ok := rangeVal.(celtypes.Iterable)
	if !ok {
		return celtypes.NewErr(celtypes.ErrNoSuchOverload, "comprehension range is not iterable: %s", rangeVal.Type())
	}
	accu := p.eval(c.AccuInit, a)
	it := iter.Iterator()
	for it.HasNext() {
		elem := it.Next()
		loopScope := &varActivation{parent: a, name: c.AccuVar, val: accu}
		iterScope := &varActivation{parent: loopScope, name: c.IterVar, val: elem}
		cond := p.eval(c.LoopCondition, iterScope)
		if b, ok := cond.(celtypes.Bool); ok && !bool(b) {
			break
		}
		if celtypes.IsError(cond) {
			return cond
		}
		accu = p.eval(c.LoopStep, iterScope)
		if celtypes.IsError(accu) {
			return accu
		}
	}
	resultScope := &varActivation{parent: a, name: c.AccuVar, val: accu}
	return p.eval(c.Result, resultScope)
}
