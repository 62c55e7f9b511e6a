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
	"bytes"
	"unicode/utf8"
)

// Bytes is the CEL immutable byte-sequence kind, distinct from String
// (spec.md §3.1). Concatenation and comparison are byte-wise.
type Bytes []byte

func (b Bytes) Type() *Type { return BytesType }

func (b Bytes) Add(other Value) Value {
	o, ok := other.(Bytes)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: bytes.add(%s)", other.Type())
	}
	out := make(Bytes, 0, len(b)+len(o))
	out = append(out, b...)
	out = append(out, o...)
	return out
}

func (b Bytes) Compare(other Value) Value {
	o, ok := other.(Bytes)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: bytes.compare(%s)", other.Type())
	}
	switch bytes.Compare(b, o) {
	case -1:
		return IntNegOne
	case 1:
		return IntOne
	default:
		return IntZero
	}
}

func (b Bytes) Equal(other Value) Value {
	o, ok := other.(Bytes)
	return Bool(ok && bytes.Equal(b, o))
}

func (b Bytes) Size() Value {
	return Int(len(b))
}

func (b Bytes) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case BytesType:
		return b
	case StringType:
		if !utf8.Valid(b) {
			return NewErr(ErrInvalidUTF8, "invalid UTF-8 in bytes-to-string conversion")
		}
		return String(string(b))
	case TypeType:
		return BytesType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'bytes' to '%s'", typeVal)
}

func (b Bytes) ConvertToNative() (interface{}, error) {
	return []byte(b), nil
}

func (b Bytes) String() string { return string(b) }
