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
	"testing"

	"github.com/cloud-custodian/cel-go-core/celtypes"
)

func TestMapActivationResolvesNativeValues(t *testing.T) {
	a := NewActivation(map[string]interface{}{"x": int64(5), "y": "hi"})
	v, found := a.ResolveName("x")
	if !found {
		t.Fatal("expected x to resolve")
	}
	if n, ok := v.(celtypes.Int); !ok || n != 5 {
		t.Fatalf("expected native int64 adapted to celtypes.Int, got %#v", v)
	}
	if _, found := a.ResolveName("missing"); found {
		t.Fatal("missing name should not resolve")
	}
}

func TestMapActivationLazySupplier(t *testing.T) {
	calls := 0
	a := NewActivation(map[string]interface{}{
		"x": func() celtypes.Value {
			calls++
			return celtypes.Int(42)
		},
	})
	v, found := a.ResolveName("x")
	if !found {
		t.Fatal("expected x to resolve")
	}
	if n, ok := v.(celtypes.Int); !ok || n != 42 {
		t.Fatalf("expected 42, got %#v", v)
	}
	if calls != 1 {
		t.Fatalf("expected supplier invoked exactly once, got %d", calls)
	}
}

func TestExtendActivationChildShadowsParent(t *testing.T) {
	parent := NewActivation(map[string]interface{}{"x": int64(1), "y": int64(2)})
	child := NewActivation(map[string]interface{}{"x": int64(99)})
	combined := ExtendActivation(parent, child)

	v, _ := combined.ResolveName("x")
	if n := v.(celtypes.Int); n != 99 {
		t.Fatalf("child binding should shadow parent, got %v", n)
	}
	v, found := combined.ResolveName("y")
	if !found {
		t.Fatal("expected fallback to parent for 'y'")
	}
	if n := v.(celtypes.Int); n != 2 {
		t.Fatalf("expected parent value 2 for y, got %v", n)
	}
}

func TestVarActivationScopesOverParent(t *testing.T) {
	parent := NewActivation(map[string]interface{}{"x": int64(1)})
	scope := &varActivation{parent: parent, name: "x", val: celtypes.Int(7)}
	v, _ := scope.ResolveName("x")
	if n := v.(celtypes.Int); n != 7 {
		t.Fatalf("var scope should shadow parent binding, got %v", n)
	}
}
