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
	"fmt"
	"math"
	"strconv"
)

// Int is the CEL signed 64-bit integer kind. Every arithmetic operator is
// checked for overflow (spec.md §4.3).
type Int int64

const (
	IntZero   = Int(0)
	IntOne    = Int(1)
	IntNegOne = Int(-1)

	maxIntDouble = float64(math.MaxInt64)
	minIntDouble = float64(math.MinInt64)
)

func (i Int) Type() *Type { return IntType }

func (i Int) Add(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: int.add(%s)", other.Type())
	}
	v, ok := addInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr(ErrRange, "integer overflow")
	}
	return Int(v)
}

func (i Int) Subtract(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: int.subtract(%s)", other.Type())
	}
	v, ok := subtractInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr(ErrRange, "integer overflow")
	}
	return Int(v)
}

func (i Int) Multiply(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: int.multiply(%s)", other.Type())
	}
	v, ok := multiplyInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr(ErrRange, "integer overflow")
	}
	return Int(v)
}

func (i Int) Divide(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: int.divide(%s)", other.Type())
	}
	if o == IntZero {
		return NewErr(ErrDivideByZero, "divide by zero")
	}
	v, ok := divideInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr(ErrRange, "integer overflow")
	}
	return Int(v)
}

func (i Int) Modulo(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: int.modulo(%s)", other.Type())
	}
	if o == IntZero {
		return NewErr(ErrModulusByZero, "modulus by zero")
	}
	v, ok := moduloInt64Checked(int64(i), int64(o))
	if !ok {
		return NewErr(ErrRange, "integer overflow")
	}
	return Int(v)
}

func (i Int) Negate() Value {
	v, ok := negateInt64Checked(int64(i))
	if !ok {
		return NewErr(ErrRange, "integer overflow")
	}
	return Int(v)
}

func (i Int) Compare(other Value) Value {
	o, ok := other.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: int.compare(%s)", other.Type())
	}
	if i < o {
		return IntNegOne
	}
	if i > o {
		return IntOne
	}
	return IntZero
}

func (i Int) Equal(other Value) Value {
	o, ok := other.(Int)
	return Bool(ok && i == o)
}

func (i Int) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case IntType:
		return i
	case UintType:
		if i < 0 {
			return NewErr(ErrRange, "range error converting %d to uint", int64(i))
		}
		return Uint(i)
	case DoubleType:
		return Double(i)
	case StringType:
		return String(strconv.FormatInt(int64(i), 10))
	case TypeType:
		return IntType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'int' to '%s'", typeVal)
}

func (i Int) ConvertToNative() (interface{}, error) {
	return int64(i), nil
}

func (i Int) String() string { return fmt.Sprintf("%d", int64(i)) }
