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
	"testing"

	"github.com/cloud-custodian/cel-go-core/common/ast"
	"github.com/cloud-custodian/cel-go-core/common/operators"
)

func mustParse(t *testing.T, src string) *ast.Expr {
	t.Helper()
	tree, errs := Parse(src)
	if !errs.Empty() {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs.Error())
	}
	return tree.Expr
}

func TestParsePrecedenceMultiplyBeforeAdd(t *testing.T) {
	e := mustParse(t, "1 + 2 * 3")
	if e.Kind != ast.CallKind || e.Call.Function != operators.Add {
		t.Fatalf("expected top-level add, got %+v", e)
	}
	rhs := e.Call.Args[1]
	if rhs.Kind != ast.CallKind || rhs.Call.Function != operators.Multiply {
		t.Fatalf("expected right operand to be multiply, got %+v", rhs)
	}
}

func TestParseConditionalIsLowestPrecedence(t *testing.T) {
	e := mustParse(t, "a || b ? 1 : 2")
	if e.Kind != ast.CallKind || e.Call.Function != operators.Conditional {
		t.Fatalf("expected conditional at the root, got %+v", e)
	}
	cond := e.Call.Args[0]
	if cond.Kind != ast.CallKind || cond.Call.Function != operators.LogicalOr {
		t.Fatalf("expected condition to be the || expression, got %+v", cond)
	}
}

func TestParseHasMacroLowersToTestOnlySelect(t *testing.T) {
	e := mustParse(t, "has(e.f)")
	if e.Kind != ast.SelectKind || !e.Select.TestOnly {
		t.Fatalf("expected TestOnly select from has(), got %+v", e)
	}
	if e.Select.Field != "f" {
		t.Fatalf("expected field 'f', got %q", e.Select.Field)
	}
}

func TestParseHasMacroRejectsNonSelectArgument(t *testing.T) {
	_, errs := Parse("has(1)")
	if errs.Empty() {
		t.Fatal("expected a syntax error for has(1)")
	}
}

func TestParseAllMacroLowersToComprehension(t *testing.T) {
	e := mustParse(t, "[1, 2].all(x, x > 0)")
	if e.Kind != ast.ComprehensionKind {
		t.Fatalf("expected a comprehension node, got %+v", e)
	}
	c := e.Comprehension
	if c.IterVar != "x" {
		t.Fatalf("expected iteration variable 'x', got %q", c.IterVar)
	}
}

func TestParseNestedAllMacro(t *testing.T) {
	e := mustParse(t, "[[1, 2], [3]].all(row, row.all(x, x > 0))")
	if e.Kind != ast.ComprehensionKind {
		t.Fatalf("expected outer comprehension, got %+v", e)
	}
	// the loop step for all() is `__result__ && pred`; pred here is itself
	// a nested comprehension.
	step := e.Comprehension.LoopStep
	if step.Kind != ast.CallKind || step.Call.Function != operators.LogicalAnd {
		t.Fatalf("expected loop step to be &&, got %+v", step)
	}
	if step.Call.Args[1].Kind != ast.ComprehensionKind {
		t.Fatalf("expected nested comprehension as the predicate, got %+v", step.Call.Args[1])
	}
}

func TestParseIndexAndSelectChain(t *testing.T) {
	e := mustParse(t, "a.b[0].c")
	if e.Kind != ast.SelectKind || e.Select.Field != "c" {
		t.Fatalf("expected outer select on field 'c', got %+v", e)
	}
	idx := e.Select.Operand
	if idx.Kind != ast.CallKind || idx.Call.Function != operators.Index {
		t.Fatalf("expected index call beneath select, got %+v", idx)
	}
}

func TestParseMessageConstruction(t *testing.T) {
	e := mustParse(t, "Point{x: 1, y: 2}")
	if e.Kind != ast.CreateStructKind {
		t.Fatalf("expected a struct construction node, got %+v", e)
	}
	if e.Struct.TypeName != "Point" || len(e.Struct.Fields) != 2 {
		t.Fatalf("unexpected struct node: %+v", e.Struct)
	}
}

func TestParseTrailingInputIsAnError(t *testing.T) {
	_, errs := Parse("1 + 1 )")
	if errs.Empty() {
		t.Fatal("expected a trailing-input syntax error")
	}
}

func TestParseUnaryNotAndNegate(t *testing.T) {
	e := mustParse(t, "!x")
	if e.Kind != ast.CallKind || e.Call.Function != operators.LogicalNot {
		t.Fatalf("expected logical-not call, got %+v", e)
	}
	e = mustParse(t, "-x")
	if e.Kind != ast.CallKind || e.Call.Function != operators.Negate {
		t.Fatalf("expected negate call, got %+v", e)
	}
}
