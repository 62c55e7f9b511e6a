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

import (
	"math"
	"testing"
)

func TestIntOverflow(t *testing.T) {
	tests := []struct {
		name string
		got  Value
	}{
		{"add overflow", Int(math.MaxInt64).Add(Int(1))},
		{"subtract overflow", Int(math.MinInt64).Subtract(Int(1))},
		{"negate overflow", Int(math.MinInt64).Negate()},
		{"multiply overflow", Int(math.MaxInt64).Multiply(Int(2))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := MaybeErr(tc.got)
			if !ok || e.Kind != ErrRange {
				t.Fatalf("want range error, got %#v", tc.got)
			}
		})
	}
}

func TestIntDivideByZero(t *testing.T) {
	e, ok := MaybeErr(Int(1).Divide(Int(0)))
	if !ok || e.Kind != ErrDivideByZero {
		t.Fatalf("want divide-by-zero error, got %#v", e)
	}
}

func TestIntToUintRangeError(t *testing.T) {
	e, ok := MaybeErr(Int(-1).ConvertToType(UintType))
	if !ok || e.Kind != ErrRange {
		t.Fatalf("want range error converting -1 to uint, got %#v", e)
	}
}

func TestUintUnderflow(t *testing.T) {
	e, ok := MaybeErr(Uint(0).Subtract(Uint(1)))
	if !ok || e.Kind != ErrRange {
		t.Fatalf("want range error for 0u - 1u, got %#v", e)
	}
}

func TestIntCompare(t *testing.T) {
	if Int(1).Compare(Int(2)) != IntNegOne {
		t.Fatal("expected 1 < 2")
	}
	if Int(2).Compare(Int(1)) != IntOne {
		t.Fatal("expected 2 > 1")
	}
	if Int(1).Compare(Int(1)) != IntZero {
		t.Fatal("expected 1 == 1")
	}
}
