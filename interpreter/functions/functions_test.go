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

package functions

import (
	"testing"

	"github.com/cloud-custodian/cel-go-core/celtypes"
)

func TestRegistryAddRejectsDuplicateSignature(t *testing.T) {
	r := NewRegistry()
	ov := func() *Overload {
		return &Overload{Function: "double", ArgKinds: []celtypes.Kind{celtypes.KindInt}, Unary: func(v celtypes.Value) celtypes.Value { return v }}
	}
	if err := r.Add(ov()); err != nil {
		t.Fatalf("unexpected error on first registration: %v", err)
	}
	if err := r.Add(ov()); err == nil {
		t.Fatal("expected ambiguity error on duplicate signature")
	}
}

func TestRegistryAddAllowsDifferentArity(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(&Overload{Function: "f", Unary: func(v celtypes.Value) celtypes.Value { return v }}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(&Overload{Function: "f", Binary: func(a, b celtypes.Value) celtypes.Value { return a }}); err != nil {
		t.Fatalf("unary and binary overloads of the same name should coexist: %v", err)
	}
}

func TestDispatchNoSuchOverload(t *testing.T) {
	r := NewRegistry()
	got := r.Dispatch("nonexistent", []celtypes.Value{celtypes.Int(1)})
	e, ok := celtypes.MaybeErr(got)
	if !ok || e.Kind != celtypes.ErrNoSuchOverload {
		t.Fatalf("expected no-such-overload error, got %#v", got)
	}
}

func TestStandardRegistryArithmeticDispatch(t *testing.T) {
	r := NewStandardRegistry()
	got := r.Dispatch("_+_", []celtypes.Value{celtypes.Int(40), celtypes.Int(2)})
	n, ok := got.(celtypes.Int)
	if !ok || n != 42 {
		t.Fatalf("40 + 2 should dispatch to int addition, got %#v", got)
	}
}

func TestStandardRegistryWrongKindArithmetic(t *testing.T) {
	r := NewStandardRegistry()
	got := r.Dispatch("_+_", []celtypes.Value{celtypes.Int(1), celtypes.String("x")})
	e, ok := celtypes.MaybeErr(got)
	if !ok || e.Kind != celtypes.ErrNoSuchOverload {
		t.Fatalf("int + string should be a no-such-overload error, got %#v", got)
	}
}

func TestStandardRegistryLogicalNot(t *testing.T) {
	r := NewStandardRegistry()
	got := r.Dispatch("!_", []celtypes.Value{celtypes.True})
	b, ok := got.(celtypes.Bool)
	if !ok || bool(b) {
		t.Fatalf("!true should be false, got %#v", got)
	}
}

func TestStandardRegistrySize(t *testing.T) {
	r := NewStandardRegistry()
	got := r.Dispatch("size", []celtypes.Value{celtypes.String("hello")})
	n, ok := got.(celtypes.Int)
	if !ok || n != 5 {
		t.Fatalf("size('hello') should be 5, got %#v", got)
	}
}

func TestStandardRegistryIndex(t *testing.T) {
	r := NewStandardRegistry()
	l := celtypes.NewList([]celtypes.Value{celtypes.Int(10), celtypes.Int(20)})
	got := r.Dispatch("_[_]", []celtypes.Value{l, celtypes.Int(1)})
	n, ok := got.(celtypes.Int)
	if !ok || n != 20 {
		t.Fatalf("list[1] should be 20, got %#v", got)
	}
}

func TestStandardRegistryConversionFunctions(t *testing.T) {
	r := NewStandardRegistry()
	got := r.Dispatch("int", []celtypes.Value{celtypes.String("42")})
	n, ok := got.(celtypes.Int)
	if !ok || n != 42 {
		t.Fatalf("int('42') should be 42, got %#v", got)
	}
}

func TestStructTypeRegistration(t *testing.T) {
	r := NewRegistry()
	r.RegisterStructType("Point", func(fields map[string]celtypes.Value) celtypes.Value {
		return fields["x"]
	})
	b, found := r.LookupStructType("Point")
	if !found {
		t.Fatal("expected Point to be registered")
	}
	got := b(map[string]celtypes.Value{"x": celtypes.Int(7)})
	if n, ok := got.(celtypes.Int); !ok || n != 7 {
		t.Fatalf("builder should return bound field, got %#v", got)
	}
	if _, found := r.LookupStructType("Unknown"); found {
		t.Fatal("unregistered type name should not be found")
	}
}
