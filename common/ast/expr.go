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

// Package ast defines the expression tree the parser produces and the
// evaluator walks (spec.md §2 "Grammar & parser").
package ast

import "github.com/cloud-custodian/cel-go-core/celtypes"

// Kind enumerates the expression node kinds spec.md §4.1 names.
type Kind int

const (
	UnspecifiedKind Kind = iota
	LiteralKind
	IdentKind
	SelectKind
	CallKind
	CreateListKind
	CreateMapKind
	CreateStructKind
	ComprehensionKind
)

// Expr is a single node in the AST. Every node carries an ID unique within
// its AST, assigned by the parser in source order; the evaluator and error
// reporting use it to recover source position via the SourceInfo.
type Expr struct {
	ID   int64
	Kind Kind

	// Literal holds the constant value for LiteralKind nodes.
	Literal celtypes.Value

	// Ident holds the (possibly dotted) name for IdentKind nodes.
	Ident string

	// Select holds SelectKind fields: Operand.Field, or Operand.Field ~
	// TestOnly when lowered from has(Operand.Field).
	Select *SelectExpr

	// Call holds CallKind fields: Function(Target?, Args...).
	Call *CallExpr

	// List holds CreateListKind elements.
	List *ListExpr

	// Map holds CreateMapKind entries.
	Map *MapExpr

	// Struct holds CreateStructKind (message construction) fields.
	Struct *StructExpr

	// Comprehension holds ComprehensionKind fields, produced only by the
	// parser's macro expansion (spec.md §4.1, §9 "Macros vs functions").
	Comprehension *ComprehensionExpr
}

// SelectExpr is `Operand.Field`; TestOnly marks a node lowered from
// has(Operand.Field).
type SelectExpr struct {
	Operand  *Expr
	Field    string
	TestOnly bool
}

// CallExpr is `Function(Args...)` or, when Target != nil, the method-call
// form `Target.Function(Args...)`.
type CallExpr struct {
	Target   *Expr
	Function string
	Args     []*Expr
}

// ListExpr is `[Elements...]`.
type ListExpr struct {
	Elements []*Expr
}

// MapEntry is one `Key: Value` pair of a map literal.
type MapEntry struct {
	Key   *Expr
	Value *Expr
}

// MapExpr is `{Entries...}`.
type MapExpr struct {
	Entries []*MapEntry
}

// StructField is one `name: value` initializer of a message literal.
type StructField struct {
	Name  string
	Value *Expr
}

// StructExpr is `TypeName{Fields...}` (spec.md §4.1 "message construction").
type StructExpr struct {
	TypeName string
	Fields   []*StructField
}

// ComprehensionExpr is the lowered form of all(), exists(), exists_one(),
// map(), filter() (spec.md §4.1, §4.5). IterVar ranges over IterRange;
// AccuInit seeds AccuVar; LoopCondition gates whether LoopStep still runs;
// Result is evaluated once the loop is done.
type ComprehensionExpr struct {
	IterVar        string
	IterRange      *Expr
	AccuVar        string
	AccuInit       *Expr
	LoopCondition  *Expr
	LoopStep       *Expr
	Result         *Expr
}

// NewLiteral builds a LiteralKind node.
func NewLiteral(id int64, v celtypes.Value) *Expr {
	return &Expr{ID: id, Kind: LiteralKind, Literal: v}
}

// NewIdent builds an IdentKind node.
func NewIdent(id int64, name string) *Expr {
	return &Expr{ID: id, Kind: IdentKind, Ident: name}
}

// NewSelect builds a SelectKind node.
func NewSelect(id int64, operand *Expr, field string, testOnly bool) *Expr {
	return &Expr{ID: id, Kind: SelectKind, Select: &SelectExpr{Operand: operand, Field: field, TestOnly: testOnly}}
}

// NewCall builds a CallKind node.
func NewCall(id int64, target *Expr, function string, args []*Expr) *Expr {
	return &Expr{ID: id, Kind: CallKind, Call: &CallExpr{Target: target, Function: function, Args: args}}
}

// NewCreateList builds a CreateListKind node.
func NewCreateList(id int64, elems []*Expr) *Expr {
	return &Expr{ID: id, Kind: CreateListKind, List: &ListExpr{Elements: elems}}
}

// NewCreateMap builds a CreateMapKind node.
func NewCreateMap(id int64, entries []*MapEntry) *Expr {
	return &Expr{ID: id, Kind: CreateMapKind, Map: &MapExpr{Entries: entries}}
}

// NewCreateStruct builds a CreateStructKind node.
func NewCreateStruct(id int64, typeName string, fields []*StructField) *Expr {
	return &Expr{ID: id, Kind: CreateStructKind, Struct: &StructExpr{TypeName: typeName, Fields: fields}}
}

// NewComprehension builds a ComprehensionKind node.
func NewComprehension(id int64, c *ComprehensionExpr) *Expr {
	return &Expr{ID: id, Kind: ComprehensionKind, Comprehension: c}
}

// AST is the result of a successful parse: the root expression plus
// positional metadata for error reporting post-parse (e.g. macro
// expansion referencing an original call site).
type AST struct {
	Expr       *Expr
	SourceInfo *SourceInfo
}

// SourceInfo maps expression IDs back to source offsets for diagnostics
// raised during planning/evaluation (parse-time syntax errors are reported
// directly by the parser, see common/errors).
type SourceInfo struct {
	Positions map[int64]int32 // expr id -> byte offset into source
	Source    string
}
