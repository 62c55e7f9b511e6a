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

package parser

import (
	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/common/ast"
	"github.com/cloud-custodian/cel-go-core/common/operators"
)

// accuVarName is the synthetic accumulator variable every comprehension
// macro binds; it shadows any user identifier of the same name for the
// duration of the loop, matching the teacher's reserved "__result__".
const accuVarName = "__result__"

// lowerMacro recognizes the macro call shapes of spec.md §4.1 and
// rewrites them into ComprehensionExpr/SelectExpr nodes. It is the sole
// producer of macro nodes (spec.md §9 "Macros vs functions" design
// note): the function registry never sees "has", "all", "exists",
// "exists_one", "filter", or "map" as callable names. ok is false when
// function/target/args don't match a known macro shape, in which case
// the caller emits a plain CallExpr instead.
func (p *parser) lowerMacro(target *ast.Expr, function string, args []*ast.Expr) (*ast.Expr, bool) {
	switch {
	case target == nil && function == operators.Has && len(args) == 1:
		return p.makeHas(args[0])
	case target != nil && function == operators.All && len(args) == 2:
		return p.makeQuantifier(quantAll, target, args)
	case target != nil && function == operators.Exists && len(args) == 2:
		return p.makeQuantifier(quantExists, target, args)
	case target != nil && function == operators.ExistsOne && len(args) == 2:
		return p.makeQuantifier(quantExistsOne, target, args)
	case target != nil && function == operators.Filter && len(args) == 2:
		return p.makeFilter(target, args)
	case target != nil && function == operators.Map && len(args) == 2:
		return p.makeMap(target, args[0], nil, args[1])
	case target != nil && function == operators.Map && len(args) == 3:
		return p.makeMap(target, args[0], args[1], args[2])
	}
	return nil, false
}

// makeHas lowers has(e.f): the sole argument must itself parse as a
// plain field selection, which becomes a TestOnly select.
func (p *parser) makeHas(arg *ast.Expr) (*ast.Expr, bool) {
	if arg.Kind != ast.SelectKind || arg.Select.TestOnly {
		p.errs.ReportError(p.tokLoc(p.prevTok), "invalid argument to has(), expected field selection")
		return nil, true
	}
	return ast.NewSelect(p.nextID(), arg.Select.Operand, arg.Select.Field, true), true
}

type quantKind int

const (
	quantAll quantKind = iota
	quantExists
	quantExistsOne
)

func (p *parser) makeQuantifier(kind quantKind, target *ast.Expr, args []*ast.Expr) (*ast.Expr, bool) {
	iterVar, ok := p.macroIterVar(args[0])
	if !ok {
		return nil, true
	}
	pred := args[1]
	switch kind {
	case quantAll:
		return ast.NewComprehension(p.nextID(), &ast.ComprehensionExpr{
			IterVar:       iterVar,
			IterRange:     target,
			AccuVar:       accuVarName,
			AccuInit:      p.boolLit(true),
			LoopCondition: p.identExpr(accuVarName),
			LoopStep:      p.call(operators.LogicalAnd, p.identExpr(accuVarName), pred),
			Result:        p.identExpr(accuVarName),
		}), true
	case quantExists:
		return ast.NewComprehension(p.nextID(), &ast.ComprehensionExpr{
			IterVar:       iterVar,
			IterRange:     target,
			AccuVar:       accuVarName,
			AccuInit:      p.boolLit(false),
			LoopCondition: p.call(operators.LogicalNot, p.identExpr(accuVarName)),
			LoopStep:      p.call(operators.LogicalOr, p.identExpr(accuVarName), pred),
			Result:        p.identExpr(accuVarName),
		}), true
	default: // quantExistsOne: no short-circuit, count matches (spec.md §4.5).
		step := p.call(operators.Add, p.identExpr(accuVarName),
			p.cond(pred, p.intLit(1), p.intLit(0)))
		return ast.NewComprehension(p.nextID(), &ast.ComprehensionExpr{
			IterVar:       iterVar,
			IterRange:     target,
			AccuVar:       accuVarName,
			AccuInit:      p.intLit(0),
			LoopCondition: p.boolLit(true),
			LoopStep:      step,
			Result:        p.call(operators.Equals, p.identExpr(accuVarName), p.intLit(1)),
		}), true
	}
}

func (p *parser) makeFilter(target *ast.Expr, args []*ast.Expr) (*ast.Expr, bool) {
	iterVar, ok := p.macroIterVar(args[0])
	if !ok {
		return nil, true
	}
	pred := args[1]
	step := p.cond(pred,
		p.call(operators.Add, p.identExpr(accuVarName), p.listOf(p.identExpr(iterVar))),
		p.identExpr(accuVarName))
	return ast.NewComprehension(p.nextID(), &ast.ComprehensionExpr{
		IterVar:       iterVar,
		IterRange:     target,
		AccuVar:       accuVarName,
		AccuInit:      p.emptyList(),
		LoopCondition: p.boolLit(true),
		LoopStep:      step,
		Result:        p.identExpr(accuVarName),
	}), true
}

func (p *parser) makeMap(target *ast.Expr, iterVarArg, pred, tform *ast.Expr) (*ast.Expr, bool) {
	iterVar, ok := p.macroIterVar(iterVarArg)
	if !ok {
		return nil, true
	}
	appended := p.call(operators.Add, p.identExpr(accuVarName), p.listOf(tform))
	var step *ast.Expr
	if pred == nil {
		step = appended
	} else {
		step = p.cond(pred, appended, p.identExpr(accuVarName))
	}
	return ast.NewComprehension(p.nextID(), &ast.ComprehensionExpr{
		IterVar:       iterVar,
		IterRange:     target,
		AccuVar:       accuVarName,
		AccuInit:      p.emptyList(),
		LoopCondition: p.boolLit(true),
		LoopStep:      step,
		Result:        p.identExpr(accuVarName),
	}), true
}

func (p *parser) macroIterVar(arg *ast.Expr) (string, bool) {
	if arg.Kind != ast.IdentKind {
		p.errs.ReportError(p.tokLoc(p.prevTok), "expected a simple identifier as the iteration variable")
		return "", false
	}
	return arg.Ident, true
}

// --- small AST-builder helpers shared by every macro above ---

func (p *parser) identExpr(name string) *ast.Expr { return ast.NewIdent(p.nextID(), name) }
func (p *parser) boolLit(b bool) *ast.Expr        { return ast.NewLiteral(p.nextID(), celtypes.Bool(b)) }
func (p *parser) intLit(i int64) *ast.Expr        { return ast.NewLiteral(p.nextID(), celtypes.Int(i)) }
func (p *parser) emptyList() *ast.Expr            { return ast.NewCreateList(p.nextID(), nil) }
func (p *parser) listOf(elems ...*ast.Expr) *ast.Expr {
	return ast.NewCreateList(p.nextID(), elems)
}
func (p *parser) call(function string, args ...*ast.Expr) *ast.Expr {
	return ast.NewCall(p.nextID(), nil, function, args)
}
func (p *parser) cond(c, t, f *ast.Expr) *ast.Expr {
	return ast.NewCall(p.nextID(), nil, operators.Conditional, []*ast.Expr{c, t, f})
}
