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
	"github.com/cloud-custodian/cel-go-core/common/ast"
	"github.com/cloud-custodian/cel-go-core/common/containers"
	"github.com/cloud-custodian/cel-go-core/common/errors"
	"github.com/cloud-custodian/cel-go-core/common/operators"
)

// parser is a recursive-descent, precedence-climbing parser over the
// flat token stream produced by lexer, following the grammar shape of
// spec.md §4.1. It also lowers the parser-level macros (see macro.go)
// and message-construction syntax.
type parser struct {
	toks    []token
	pos     int
	prevTok token
	errs    *errors.Errors
	source  string
	idSeq   int64
}

// Parse lexes and parses source into an AST. Syntax errors are recorded
// into the returned *errors.Errors; when non-empty the AST is unusable
// and must not be evaluated (spec.md §4.1 "Errors").
func Parse(source string) (*ast.AST, *errors.Errors) {
	errs := errors.NewErrors()
	lx := newLexer(source, errs)
	p := &parser{toks: lx.tokens(), errs: errs, source: source}
	var root *ast.Expr
	if !errs.Empty() {
		return nil, errs
	}
	root = p.parseExpr()
	if !p.atEOF() {
		p.errs.ReportError(p.curLoc(), "unexpected trailing input '%s'", p.cur().text)
	}
	return &ast.AST{Expr: root, SourceInfo: &ast.SourceInfo{Source: source}}, errs
}

func (p *parser) nextID() int64 {
	p.idSeq++
	return p.idSeq
}

func (p *parser) cur() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) curLoc() errors.Location {
	t := p.cur()
	return errors.Location{Line: t.line, Column: t.column}
}

func (p *parser) tokLoc(t token) errors.Location {
	return errors.Location{Line: t.line, Column: t.column}
}

func (p *parser) atEOF() bool { return p.cur().kind == tokEOF }

func (p *parser) advance() token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	p.prevTok = t
	return t
}

// is reports whether the current token is a punctuator/ident matching
// text exactly (operators and keywords are both tokPunct/tokIdent text
// matches in this lexer).
func (p *parser) is(text string) bool {
	t := p.cur()
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

func (p *parser) consume(text string) bool {
	if p.is(text) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(text string) token {
	if !p.is(text) {
		p.errs.ReportError(p.curLoc(), "expected '%s', got '%s'", text, p.cur().text)
		return token{}
	}
	return p.advance()
}

// parseExpr is the lowest-precedence production: the conditional
// operator (spec.md §4.1 precedence chain, lowest to highest).
func (p *parser) parseExpr() *ast.Expr {
	cond := p.parseOr()
	if p.consume("?") {
		thenExpr := p.parseExpr()
		p.expect(":")
		elseExpr := p.parseExpr()
		return ast.NewCall(p.nextID(), nil, operators.Conditional, []*ast.Expr{cond, thenExpr, elseExpr})
	}
	return cond
}

func (p *parser) parseOr() *ast.Expr {
	left := p.parseAnd()
	for p.consume("||") {
		right := p.parseAnd()
		left = ast.NewCall(p.nextID(), nil, operators.LogicalOr, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseAnd() *ast.Expr {
	left := p.parseEquality()
	for p.consume("&&") {
		right := p.parseEquality()
		left = ast.NewCall(p.nextID(), nil, operators.LogicalAnd, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseEquality() *ast.Expr {
	left := p.parseComparison()
	for p.is("==") || p.is("!=") {
		op := p.advance().text
		fn, _ := operators.Find(op)
		right := p.parseComparison()
		left = ast.NewCall(p.nextID(), nil, fn, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseComparison() *ast.Expr {
	left := p.parseIn()
	for p.is("<") || p.is("<=") || p.is(">") || p.is(">=") {
		op := p.advance().text
		fn, _ := operators.Find(op)
		right := p.parseIn()
		left = ast.NewCall(p.nextID(), nil, fn, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseIn() *ast.Expr {
	left := p.parseAdditive()
	for p.is("in") {
		p.advance()
		right := p.parseAdditive()
		left = ast.NewCall(p.nextID(), nil, operators.In, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseAdditive() *ast.Expr {
	left := p.parseMultiplicative()
	for p.is("+") || p.is("-") {
		op := p.advance().text
		fn, _ := operators.Find(op)
		right := p.parseMultiplicative()
		left = ast.NewCall(p.nextID(), nil, fn, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseMultiplicative() *ast.Expr {
	left := p.parseUnary()
	for p.is("*") || p.is("/") || p.is("%") {
		op := p.advance().text
		fn, _ := operators.Find(op)
		right := p.parseUnary()
		left = ast.NewCall(p.nextID(), nil, fn, []*ast.Expr{left, right})
	}
	return left
}

func (p *parser) parseUnary() *ast.Expr {
	if p.is("-") {
		p.advance()
		operand := p.parseUnary()
		return ast.NewCall(p.nextID(), nil, operators.Negate, []*ast.Expr{operand})
	}
	if p.is("!") {
		p.advance()
		operand := p.parseUnary()
		return ast.NewCall(p.nextID(), nil, operators.LogicalNot, []*ast.Expr{operand})
	}
	return p.parseMember()
}

// parseMember parses a primary expression followed by any chain of
// `.field`, `.method(args)`, `[index]`, and message-construction
// `{field: value, ...}` postfixes (spec.md §4.1 "member" precedence
// level). Macro call shapes are recognized and lowered here, the
// moment a `.method(args)` postfix is built.
func (p *parser) parseMember() *ast.Expr {
	node, qualified := p.parsePrimary()
	for {
		switch {
		case p.consume("."):
			fieldTok := p.advance()
			if fieldTok.kind != tokIdent {
				p.errs.ReportError(p.tokLoc(fieldTok), "expected field or method name after '.'")
				return node
			}
			field := fieldTok.text
			if p.consume("(") {
				args := p.parseArgList(")")
				if lowered, ok := p.lowerMacro(node, field, args); ok {
					node = lowered
				} else {
					node = ast.NewCall(p.nextID(), node, field, args)
				}
				qualified = false
				continue
			}
			node = ast.NewSelect(p.nextID(), node, field, false)
			continue
		case p.is("("):
			// A bare identifier directly followed by "(" is a global
			// (non-macro, non-method) function call, e.g. size(x).
			if qualified {
				if qn, ok := containers.ToQualifiedName(node); ok {
					p.advance()
					args := p.parseArgList(")")
					if lowered, ok := p.lowerMacro(nil, qn, args); ok {
						node = lowered
					} else {
						node = ast.NewCall(p.nextID(), nil, qn, args)
					}
					qualified = false
					continue
				}
			}
			return node
		case p.consume("["):
			idx := p.parseExpr()
			p.expect("]")
			node = ast.NewCall(p.nextID(), nil, operators.Index, []*ast.Expr{node, idx})
			qualified = false
			continue
		case qualified && p.is("{"):
			qn, _ := containers.ToQualifiedName(node)
			node = p.parseStructLiteral(qn)
			qualified = false
			continue
		}
		break
	}
	return node
}

// parsePrimary returns the parsed node and whether it is a "qualified
// name" chain (a bare identifier, or selects over one) eligible for the
// global-call and message-construction postfixes above.
func (p *parser) parsePrimary() (*ast.Expr, bool) {
	t := p.cur()
	switch t.kind {
	case tokIntLit, tokUintLit, tokDoubleLit, tokStringLit, tokBytesLit, tokBoolLit, tokNullLit:
		p.advance()
		return ast.NewLiteral(p.nextID(), t.value), false
	case tokIdent:
		p.advance()
		return ast.NewIdent(p.nextID(), t.text), true
	}
	switch {
	case p.is("."):
		// absolute reference: ".pkg.Name" - lex as punct then ident chain.
		p.advance()
		nameTok := p.advance()
		return ast.NewIdent(p.nextID(), "."+nameTok.text), true
	case p.consume("("):
		e := p.parseExpr()
		p.expect(")")
		return e, false
	case p.is("["):
		return p.parseListLiteral(), false
	case p.is("{"):
		return p.parseMapLiteral(), false
	}
	p.errs.ReportError(p.curLoc(), "unexpected token '%s'", t.text)
	p.advance()
	return ast.NewLiteral(p.nextID(), nil), false
}

func (p *parser) parseArgList(closing string) []*ast.Expr {
	var args []*ast.Expr
	if p.is(closing) {
		p.advance()
		return args
	}
	for {
		args = append(args, p.parseExpr())
		if p.consume(",") {
			if p.is(closing) { // trailing comma
				break
			}
			continue
		}
		break
	}
	p.expect(closing)
	return args
}

func (p *parser) parseListLiteral() *ast.Expr {
	p.expect("[")
	elems := p.parseArgList("]")
	return ast.NewCreateList(p.nextID(), elems)
}

func (p *parser) parseMapLiteral() *ast.Expr {
	p.expect("{")
	var entries []*ast.MapEntry
	if !p.is("}") {
		for {
			key := p.parseExpr()
			p.expect(":")
			val := p.parseExpr()
			entries = append(entries, &ast.MapEntry{Key: key, Value: val})
			if p.consume(",") {
				if p.is("}") {
					break
				}
				continue
			}
			break
		}
	}
	p.expect("}")
	return ast.NewCreateMap(p.nextID(), entries)
}

func (p *parser) parseStructLiteral(typeName string) *ast.Expr {
	p.expect("{")
	var fields []*ast.StructField
	if !p.is("}") {
		for {
			nameTok := p.advance()
			if nameTok.kind != tokIdent {
				p.errs.ReportError(p.tokLoc(nameTok), "expected field name in message construction")
			}
			p.expect(":")
			val := p.parseExpr()
			fields = append(fields, &ast.StructField{Name: nameTok.text, Value: val})
			if p.consume(",") {
				if p.is("}") {
					break
				}
				continue
			}
			break
		}
	}
	p.expect("}")
	return ast.NewCreateStruct(p.nextID(), typeName, fields)
}
