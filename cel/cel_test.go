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

package cel

import (
	"testing"

	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/common/errors"
	"github.com/cloud-custodian/cel-go-core/interpreter"
	"github.com/cloud-custodian/cel-go-core/interpreter/functions"
)

func evalExpr(t *testing.T, source string, bindings map[string]interface{}) celtypes.Value {
	t.Helper()
	env, err := NewEnv()
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	tree, err := env.Compile(source)
	if err != nil {
		t.Fatalf("Compile(%q): %v", source, err)
	}
	program, err := env.Program(tree)
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	result, _ := program.Evaluate(interpreter.NewActivation(bindings))
	return result
}

func TestEndToEndArithmetic(t *testing.T) {
	got := evalExpr(t, "40 + 2", nil)
	n, ok := got.(celtypes.Int)
	if !ok || n != 42 {
		t.Fatalf("expected 42, got %#v", got)
	}
}

func TestEndToEndTimestampComparison(t *testing.T) {
	got := evalExpr(t, `timestamp("2023-01-01T00:00:00Z") < timestamp("2023-06-01T00:00:00Z")`, nil)
	b, ok := got.(celtypes.Bool)
	if !ok || !bool(b) {
		t.Fatalf("expected true, got %#v", got)
	}
}

func TestEndToEndUnicodeStringSize(t *testing.T) {
	got := evalExpr(t, `size('πέντε')`, nil)
	n, ok := got.(celtypes.Int)
	if !ok || n != 5 {
		t.Fatalf("expected 5, got %#v", got)
	}
}

func TestEndToEndNestedAllMacro(t *testing.T) {
	got := evalExpr(t, `[[1, 2], [3, 4]].all(row, row.all(x, x > 0))`, nil)
	b, ok := got.(celtypes.Bool)
	if !ok || !bool(b) {
		t.Fatalf("expected true, got %#v", got)
	}
}

func TestEndToEndMapEqualityIgnoresKeyOrder(t *testing.T) {
	got := evalExpr(t, `{"a": 1, "b": 2} == {"b": 2, "a": 1}`, nil)
	b, ok := got.(celtypes.Bool)
	if !ok || !bool(b) {
		t.Fatalf("expected true, got %#v", got)
	}
}

func TestEndToEndErrorAbsorptionWithUnboundVariable(t *testing.T) {
	got := evalExpr(t, "x || true", nil)
	b, ok := got.(celtypes.Bool)
	if !ok || !bool(b) {
		t.Fatalf("expected true despite unbound x, got %#v", got)
	}
}

func TestEndToEndActivationBinding(t *testing.T) {
	got := evalExpr(t, "x + 1", map[string]interface{}{"x": int64(41)})
	n, ok := got.(celtypes.Int)
	if !ok || n != 42 {
		t.Fatalf("expected 42, got %#v", got)
	}
}

func TestEndToEndDivideByZeroIsAnError(t *testing.T) {
	got := evalExpr(t, "1 / 0", nil)
	e, ok := celtypes.MaybeErr(got)
	if !ok || e.Kind != celtypes.ErrDivideByZero {
		t.Fatalf("expected divide-by-zero error, got %#v", got)
	}
}

func TestContainerResolvesUnqualifiedNameWithPrefix(t *testing.T) {
	env, err := NewEnv(Container("com.example"))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := env.Compile("msg")
	if err != nil {
		t.Fatal(err)
	}
	program, err := env.Program(tree)
	if err != nil {
		t.Fatal(err)
	}
	result, evalErr := program.Evaluate(interpreter.NewActivation(map[string]interface{}{
		"com.example.msg": "hello",
	}))
	if evalErr != nil {
		t.Fatalf("unexpected eval error: %v", evalErr)
	}
	if s, ok := result.(celtypes.String); !ok || s != "hello" {
		t.Fatalf("expected container-qualified resolution to find 'hello', got %#v", result)
	}
}

func TestFunctionOptionCannotShadowMacro(t *testing.T) {
	_, err := NewEnv(Function("has", &functions.Overload{Unary: func(v celtypes.Value) celtypes.Value { return v }}))
	if err == nil {
		t.Fatal("expected an error registering a function named after a macro")
	}
}

func TestFunctionOptionRegistersHostExtension(t *testing.T) {
	env, err := NewEnv(Function("doubled", &functions.Overload{
		ArgKinds: []celtypes.Kind{celtypes.KindInt},
		Unary: func(v celtypes.Value) celtypes.Value {
			return v.(celtypes.Int) * 2
		},
	}))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := env.Compile("doubled(21)")
	if err != nil {
		t.Fatal(err)
	}
	program, err := env.Program(tree)
	if err != nil {
		t.Fatal(err)
	}
	result, evalErr := program.Evaluate(interpreter.NewActivation(nil))
	if evalErr != nil {
		t.Fatalf("unexpected eval error: %v", evalErr)
	}
	if n, ok := result.(celtypes.Int); !ok || n != 42 {
		t.Fatalf("expected 42 from host extension, got %#v", result)
	}
}

func TestStructTypeConstructsMessages(t *testing.T) {
	env, err := NewEnv(StructType("Point", func(fields map[string]celtypes.Value) celtypes.Value {
		return fields["x"]
	}))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := env.Compile("Point{x: 7}")
	if err != nil {
		t.Fatal(err)
	}
	program, err := env.Program(tree)
	if err != nil {
		t.Fatal(err)
	}
	result, evalErr := program.Evaluate(interpreter.NewActivation(nil))
	if evalErr != nil {
		t.Fatalf("unexpected eval error: %v", evalErr)
	}
	if n, ok := result.(celtypes.Int); !ok || n != 7 {
		t.Fatalf("expected 7, got %#v", result)
	}
}

func TestCompileSyntaxErrorReturnsAllDiagnostics(t *testing.T) {
	env, err := NewEnv()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.Compile("1 +"); err == nil {
		t.Fatal("expected a compile error for incomplete expression")
	}
	_, err = env.Compile(`"\q" + "\z"`)
	errs, ok := err.(*errors.Errors)
	if !ok || len(errs.GetErrors()) != 2 {
		t.Fatalf("expected both bad escapes reported, got %v", err)
	}
}
