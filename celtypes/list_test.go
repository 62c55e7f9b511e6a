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

package celtypes

import "testing"

func TestListIndexOutOfRange(t *testing.T) {
	l := NewList([]Value{Int(1), Int(2), Int(3)})
	e, ok := MaybeErr(l.Get(Int(3)))
	if !ok || e.Kind != ErrInvalidArgument {
		t.Fatalf("want invalid_argument for out-of-range index, got %#v", e)
	}
}

func TestListEqualityIgnoresUnderlyingSliceIdentity(t *testing.T) {
	a := NewList([]Value{Int(1), Int(2)})
	b := NewList([]Value{Int(1), Int(2)})
	if v, ok := a.Equal(b).(Bool); !ok || !bool(v) {
		t.Fatal("lists with equal elements in order should be equal")
	}
	c := NewList([]Value{Int(2), Int(1)})
	if v, ok := a.Equal(c).(Bool); !ok || bool(v) {
		t.Fatal("lists differing by order should not be equal")
	}
}

func TestMapEqualityIgnoresKeyOrder(t *testing.T) {
	a := NewMap([]Value{String("a"), String("b")}, []Value{Int(1), Int(2)})
	b := NewMap([]Value{String("b"), String("a")}, []Value{Int(2), Int(1)})
	aMap, aok := a.(*Map)
	bMap, bok := b.(*Map)
	if !aok || !bok {
		t.Fatalf("expected *Map, got %#v / %#v", a, b)
	}
	if v, ok := aMap.Equal(bMap).(Bool); !ok || !bool(v) {
		t.Fatal("maps with the same entries in different key order should be equal")
	}
}

func TestMapDuplicateKeyIsConstructionError(t *testing.T) {
	v := NewMap([]Value{String("a"), String("a")}, []Value{Int(1), Int(2)})
	e, ok := MaybeErr(v)
	if !ok || e.Kind != ErrInvalidArgument {
		t.Fatalf("want invalid_argument for duplicate map key, got %#v", v)
	}
}

func TestMapUnsupportedKeyKind(t *testing.T) {
	v := NewMap([]Value{NewList(nil)}, []Value{Int(1)})
	e, ok := MaybeErr(v)
	if !ok || e.Kind != ErrInvalidArgument {
		t.Fatalf("want invalid_argument for list map key, got %#v", v)
	}
}
