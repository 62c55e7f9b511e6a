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

// Null is the single CEL null value.
type Null struct{}

// NullValue is the singleton Null instance.
var NullValue = Null{}

func (n Null) Type() *Type { return NullType }

func (n Null) Equal(other Value) Value {
	_, ok := other.(Null)
	return Bool(ok)
}

func (n Null) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case NullType:
		return n
	case StringType:
		return String("null")
	case TypeType:
		return NullType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'null_type' to '%s'", typeVal)
}

func (n Null) ConvertToNative() (interface{}, error) {
	return nil, nil
}

func (n Null) String() string { return "null" }
