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
	"strconv"
)

// Uint is the CEL unsigned 64-bit integer kind.
type Uint uint64

const UintZero = Uint(0)

func (u Uint) Type() *Type { return UintType }

func (u Uint) Add(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: uint.add(%s)", other.Type())
	}
	v, ok := addUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErr(ErrRange, "unsigned integer overflow")
	}
	return Uint(v)
}

func (u Uint) Subtract(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: uint.subtract(%s)", other.Type())
	}
	v, ok := subtractUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErr(ErrRange, "unsigned integer overflow")
	}
	return Uint(v)
}

func (u Uint) Multiply(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: uint.multiply(%s)", other.Type())
	}
	v, ok := multiplyUint64Checked(uint64(u), uint64(o))
	if !ok {
		return NewErr(ErrRange, "unsigned integer overflow")
	}
	return Uint(v)
}

func (u Uint) Divide(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: uint.divide(%s)", other.Type())
	}
	if o == UintZero {
		return NewErr(ErrDivideByZero, "divide by zero")
	}
	return u / o
}

func (u Uint) Modulo(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: uint.modulo(%s)", other.Type())
	}
	if o == UintZero {
		return NewErr(ErrModulusByZero, "modulus by zero")
	}
	return u % o
}

func (u Uint) Compare(other Value) Value {
	o, ok := other.(Uint)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: uint.compare(%s)", other.Type())
	}
	if u < o {
		return IntNegOne
	}
	if u > o {
		return IntOne
	}
	return IntZero
}

func (u Uint) Equal(other Value) Value {
	o, ok := other.(Uint)
	return Bool(ok && u == o)
}

func (u Uint) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case UintType:
		return u
	case IntType:
		if u > Uint(1<<63-1) {
			return NewErr(ErrRange, "range error converting %d to int", uint64(u))
		}
		return Int(u)
	case DoubleType:
		return Double(u)
	case StringType:
		return String(strconv.FormatUint(uint64(u), 10))
	case TypeType:
		return UintType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'uint' to '%s'", typeVal)
}

func (u Uint) ConvertToNative() (interface{}, error) {
	return uint64(u), nil
}

func (u Uint) String() string { return fmt.Sprintf("%d", uint64(u)) }
