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

// Package cel is the programmatic entry point (spec.md §6 "External
// interfaces"): build an Env, compile source to an AST, bind it into a
// Program, then evaluate the Program against any number of activations.
package cel

import (
	"fmt"

	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/common/ast"
	"github.com/cloud-custodian/cel-go-core/common/containers"
	"github.com/cloud-custodian/cel-go-core/interpreter"
	"github.com/cloud-custodian/cel-go-core/interpreter/functions"
	"github.com/cloud-custodian/cel-go-core/parser"
)

var macroNames = map[string]bool{"has": true, "all": true, "exists": true, "exists_one": true, "filter": true, "map": true}

// Env holds the container prefix, identifier declarations, and function
// registry a host configures once and reuses to compile and run many
// expressions (spec.md §6 "A host obtains an environment...").
type Env struct {
	container    *containers.Container
	registry     *functions.Registry
	declarations map[string]*celtypes.Type
}

// Option configures an Env; apply with NewEnv.
type Option func(*Env) error

// NewEnv builds an Env with the standard builtin function registry
// pre-loaded (spec.md §4.4 "Built-in set"), then applies opts.
func NewEnv(opts ...Option) (*Env, error) {
	e := &Env{
		container:    nil,
		registry:     functions.NewStandardRegistry(),
		declarations: make(map[string]*celtypes.Type),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Container sets the container prefix used for name resolution (spec.md
// §4.2).
func Container(name string) Option {
	return func(e *Env) error {
		c, err := e.container.Extend(containers.Name(name))
		if err != nil {
			return err
		}
		e.container = c
		return nil
	}
}

// Abbrevs registers container-relative type/function abbreviations
// (spec.md §4.2 layer 2 "host-registered extensions").
func Abbrevs(qualifiedName, alias string) Option {
	return func(e *Env) error {
		c, err := e.container.Extend(containers.Alias(qualifiedName, alias))
		if err != nil {
			return err
		}
		e.container = c
		return nil
	}
}

// Declarations records the identifier names (and their declared kind)
// an activation is expected to supply (spec.md §6 "a mapping of
// identifier name -> declared kind/type"). Declarations are advisory in
// this implementation: there is no static type-checker pass (spec.md §1
// scopes the core to parsing and evaluation, not checking), so an
// undeclared but activation-bound name still resolves fine; declaring
// names mainly documents the environment's expected inputs.
func Declarations(decls map[string]*celtypes.Type) Option {
	return func(e *Env) error {
		for name, t := range decls {
			e.declarations[name] = t
		}
		return nil
	}
}

// Function registers a host extension function under name (spec.md
// §4.4 "Host extensions"). It is an error to shadow a macro name.
func Function(name string, overloads ...*functions.Overload) Option {
	return func(e *Env) error {
		if macroNames[name] {
			return fmt.Errorf("cannot register function %q: shadows a macro", name)
		}
		for _, ov := range overloads {
			ov.Function = name
			if err := e.registry.Add(ov); err != nil {
				return err
			}
		}
		return nil
	}
}

// StructType registers a constructible message type name for
// `TypeName{field: value, ...}` construction (spec.md §4.1).
func StructType(name string, builder functions.StructBuilder) Option {
	return func(e *Env) error {
		e.registry.RegisterStructType(name, builder)
		return nil
	}
}

// Compile parses source into an AST (spec.md §6 "compile(source) ->
// AST"). Syntax errors are returned as a single error joining every
// recorded diagnostic (spec.md §4.1 "Errors").
func (e *Env) Compile(source string) (*ast.AST, error) {
	tree, errs := parser.Parse(source)
	if !errs.Empty() {
		return nil, errs
	}
	return tree, nil
}

// Program binds an AST to this Env's container and function registry,
// producing an evaluable Program (spec.md §6 "program(AST,
// function_overrides) -> Program"). The result is immutable and safe to
// evaluate concurrently from multiple goroutines (spec.md §5).
func (e *Env) Program(tree *ast.AST) (*Program, error) {
	plan := interpreter.NewInterpretable(tree.Expr, e.container, e.registry)
	return &Program{plan: plan}, nil
}

// Program is a compiled expression ready to evaluate against any number
// of activations (spec.md §6 "Program").
type Program struct {
	plan *interpreter.Interpretable
}

// Evaluate runs the program against activation, returning the resulting
// CEL value. err is non-nil exactly when the result is a
// *celtypes.Err, letting Go callers use the idiomatic `if err != nil`
// check while still exposing the structured error value in result
// (spec.md §6 "evaluate(activation) -> value | error").
func (p *Program) Evaluate(activation interpreter.Activation) (result celtypes.Value, err error) {
	result = p.plan.Eval(activation)
	if e, ok := celtypes.MaybeErr(result); ok {
		return result, e
	}
	return result, nil
}
