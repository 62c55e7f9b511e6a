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

// Package celtypes implements the closed set of CEL value kinds: their
// arithmetic, comparison, conversion, and container protocols.
package celtypes

// Value is the interface implemented by every CEL-defined value kind
// (spec.md §3.1). The seven primitive kinds (Null, Bool, Int, Uint,
// Double, String, Bytes) plus List, Map, Timestamp,
// Duration, Type, Message, and Err implement it.
type Value interface {
	// Type returns the CEL Type of the receiver.
	Type() *Type

	// Equal returns a Bool (or Err) describing whether the receiver equals
	// other. Equal never panics: unrelated kinds compare unequal rather
	// than erroring, except where spec.md §4.3 calls for an overload error.
	Equal(other Value) Value

	// ConvertToType converts the receiver to the requested CEL type,
	// returning an Err value (kind "no such overload"/"range"/"conversion")
	// when the conversion is undefined or out of range.
	ConvertToType(typeVal *Type) Value

	// ConvertToNative converts the receiver to a native Go representation;
	// used by the JSON adapter and by host code receiving results.
	ConvertToNative() (interface{}, error)
}

// Adder is implemented by kinds supporting the `+` operator.
type Adder interface {
	Add(other Value) Value
}

// Subtractor is implemented by kinds supporting the `-` operator.
type Subtractor interface {
	Subtract(other Value) Value
}

// Multiplier is implemented by kinds supporting the `*` operator.
type Multiplier interface {
	Multiply(other Value) Value
}

// Divider is implemented by kinds supporting the `/` operator.
type Divider interface {
	Divide(other Value) Value
}

// Modder is implemented by kinds supporting the `%` operator.
type Modder interface {
	Modulo(other Value) Value
}

// Negater is implemented by kinds supporting unary `-`.
type Negater interface {
	Negate() Value
}

// Comparer is implemented by kinds supporting `< <= > >=` within their own
// kind. Compare returns IntNegOne, IntZero, or IntOne, or an Err.
type Comparer interface {
	Compare(other Value) Value
}

// Sizer is implemented by kinds supporting `size(x)`.
type Sizer interface {
	Size() Value
}

// Indexer is implemented by kinds supporting `x[i]`.
type Indexer interface {
	Get(index Value) Value
}

// Container is implemented by kinds supporting `e in xs`.
type Container interface {
	Contains(elem Value) Value
}

// Iterable is implemented by List and Map for comprehension macros.
type Iterable interface {
	Iterator() Iterator
}

// Iterator walks the elements of a List (values) or Map (keys).
type Iterator interface {
	HasNext() bool
	Next() Value
}

// FieldTester is implemented by Map and Message for the `has()` macro.
type FieldTester interface {
	IsSet(field string) Value
}

// Fielder is implemented by Message for `.field` selection.
type Fielder interface {
	Get(field string) Value
}
