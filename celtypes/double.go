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
	"strconv"
)

// Double is the CEL IEEE-754 binary64 kind. NaN compares unequal to
// everything including itself (spec.md §3.1).
type Double float64

func (d Double) Type() *Type { return DoubleType }

func (d Double) isNaN() bool { return math.IsNaN(float64(d)) }

func (d Double) Add(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: double.add(%s)", other.Type())
	}
	return d + o
}

func (d Double) Subtract(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: double.subtract(%s)", other.Type())
	}
	return d - o
}

func (d Double) Multiply(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: double.multiply(%s)", other.Type())
	}
	return d * o
}

func (d Double) Divide(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: double.divide(%s)", other.Type())
	}
	// IEEE-754 division by zero never overflows to an error (spec.md §4.3).
	return d / o
}

func (d Double) Negate() Value { return -d }

// errNaNIncomparable is a distinguished sentinel recognized by orderOp
// (compare.go): NaN makes every ordering operator false, never an error.
var errNaNIncomparable = &Err{Kind: ErrNoSuchOverload, Message: "NaN is incomparable"}

func (d Double) Compare(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: double.compare(%s)", other.Type())
	}
	if math.IsNaN(float64(d)) || math.IsNaN(float64(o)) {
		return errNaNIncomparable
	}
	if d < o {
		return IntNegOne
	}
	if d > o {
		return IntOne
	}
	return IntZero
}

func (d Double) Equal(other Value) Value {
	o, ok := other.(Double)
	if !ok {
		return False
	}
	// NaN != NaN, including itself.
	return Bool(float64(d) == float64(o))
}

func (d Double) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case DoubleType:
		return d
	case IntType:
		return doubleToInt(float64(d))
	case UintType:
		return doubleToUint(float64(d))
	case StringType:
		return String(d.String())
	case TypeType:
		return DoubleType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'double' to '%s'", typeVal)
}

// doubleToInt truncates toward zero (spec.md §9 open question: this module
// picks truncation-toward-zero, matching the newer conformance behavior).
func doubleToInt(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewErr(ErrRange, "range error converting %v to int", f)
	}
	t := math.Trunc(f)
	if t < minIntDouble || t >= -minIntDouble {
		return NewErr(ErrRange, "range error converting %v to int", f)
	}
	return Int(int64(t))
}

func doubleToUint(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewErr(ErrRange, "range error converting %v to uint", f)
	}
	t := math.Trunc(f)
	if t < 0 || t >= math.MaxUint64 {
		return NewErr(ErrRange, "range error converting %v to uint", f)
	}
	return Uint(uint64(t))
}

func (d Double) ConvertToNative() (interface{}, error) {
	return float64(d), nil
}

// String renders the minimal round-trip decimal form (spec.md §4.3).
func (d Double) String() string {
	f := float64(d)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
