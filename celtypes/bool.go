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

import "fmt"

// Bool is the CEL boolean kind; distinct from Int (spec.md §3.1).
type Bool bool

const (
	// True and False are convenience singletons.
	True  = Bool(true)
	False = Bool(false)
)

func (b Bool) Type() *Type { return BoolType }

func (b Bool) Equal(other Value) Value {
	o, ok := other.(Bool)
	return Bool(ok && b == o)
}

func (b Bool) Compare(other Value) Value {
	o, ok := other.(Bool)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: bool.compare(%s)", other.Type())
	}
	if b == o {
		return IntZero
	}
	if !bool(b) && bool(o) {
		return IntNegOne
	}
	return IntOne
}

func (b Bool) Negate() Value { return !b }

func (b Bool) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case BoolType:
		return b
	case StringType:
		return String(fmt.Sprintf("%t", bool(b)))
	case TypeType:
		return BoolType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'bool' to '%s'", typeVal)
}

func (b Bool) ConvertToNative() (interface{}, error) {
	return bool(b), nil
}

func (b Bool) String() string { return fmt.Sprintf("%t", bool(b)) }
