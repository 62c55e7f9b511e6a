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

// This file isolates mixed-type numeric comparison in its own module, as
// spec.md §9 "Design notes" calls for: ordinary arithmetic/Compare methods
// on Int/Uint/Double only ever dispatch within a single kind; cross-kind
// ordering and equality are handled centrally here and are only reachable
// through a dyn(...)-wrapped operand.

func isNumericValue(v Value) bool {
	switch v.(type) {
	case Int, Uint, Double:
		return true
	}
	return false
}

func unwrapDyn(v Value) (Value, bool) {
	if d, ok := v.(Dyn); ok {
		return d.Value, true
	}
	return v, false
}

func toFloat(v Value) float64 {
	switch n := v.(type) {
	case Int:
		return float64(n)
	case Uint:
		return float64(n)
	case Double:
		return float64(n)
	}
	return 0
}

func isNaNValue(v Value) bool {
	d, ok := v.(Double)
	return ok && d.isNaN()
}

// crossNumericOrder compares two numeric Values of possibly different
// kinds on the reals. nan reports that no order holds (spec.md §4.3:
// a NaN operand makes any ordering comparison false, and == false).
func crossNumericOrder(a, b Value) (order int, nan bool) {
	if isNaNValue(a) || isNaNValue(b) {
		return 0, true
	}
	// Same-kind pairs use their own exact comparison to avoid needless
	// float64 widening of large Int/Uint values.
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return intOrder(int64(ai), int64(bi)), false
		}
	}
	if au, ok := a.(Uint); ok {
		if bu, ok := b.(Uint); ok {
			return uintOrder(uint64(au), uint64(bu)), false
		}
	}
	fa, fb := toFloat(a), toFloat(b)
	switch {
	case fa < fb:
		return -1, false
	case fa > fb:
		return 1, false
	default:
		return 0, false
	}
}

func intOrder(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func uintOrder(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equals implements `==`, including dyn-enabled cross-kind numeric
// equality (spec.md §4.3, §4.5 operator dispatch).
func Equals(a, b Value) Value {
	ua, aDyn := unwrapDyn(a)
	ub, bDyn := unwrapDyn(b)
	if (aDyn || bDyn) && isNumericValue(ua) && isNumericValue(ub) {
		order, nan := crossNumericOrder(ua, ub)
		if nan {
			return False
		}
		return Bool(order == 0)
	}
	return ua.Equal(ub)
}

// NotEquals implements `!=`.
func NotEquals(a, b Value) Value {
	eq := Equals(a, b)
	if bv, ok := eq.(Bool); ok {
		return !bv
	}
	return eq
}

func orderOp(a, b Value, want func(order int) bool) Value {
	ua, aDyn := unwrapDyn(a)
	ub, bDyn := unwrapDyn(b)
	if (aDyn || bDyn) && isNumericValue(ua) && isNumericValue(ub) {
		order, nan := crossNumericOrder(ua, ub)
		if nan {
			return False
		}
		return Bool(want(order))
	}
	cmp, ok := ua.(Comparer)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: compare(%s, %s)", ua.Type(), ub.Type())
	}
	result := cmp.Compare(ub)
	if result == errNaNIncomparable {
		return False
	}
	if IsError(result) {
		return result
	}
	order, ok := result.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: compare(%s, %s)", ua.Type(), ub.Type())
	}
	return Bool(want(int(order)))
}

// Less implements `<`.
func Less(a, b Value) Value { return orderOp(a, b, func(o int) bool { return o < 0 }) }

// LessEquals implements `<=`.
func LessEquals(a, b Value) Value { return orderOp(a, b, func(o int) bool { return o <= 0 }) }

// Greater implements `>`.
func Greater(a, b Value) Value { return orderOp(a, b, func(o int) bool { return o > 0 }) }

// GreaterEquals implements `>=`.
func GreaterEquals(a, b Value) Value { return orderOp(a, b, func(o int) bool { return o >= 0 }) }
