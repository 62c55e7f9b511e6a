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

// Kind enumerates the closed set of CEL value kinds (spec.md §3.1).
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindDouble
	KindString
	KindBytes
	KindList
	KindMap
	KindTimestamp
	KindDuration
	KindType
	KindMessage
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null_type"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindTimestamp:
		return "google.protobuf.Timestamp"
	case KindDuration:
		return "google.protobuf.Duration"
	case KindType:
		return "type"
	case KindMessage:
		return "message"
	case KindErr:
		return "error"
	}
	return "unknown"
}

// Type is the first-class CEL type tag (spec.md §3.1 "Type"). Two Types are
// the same type if and only if they share a Kind and, for Message, a
// TypeName.
type Type struct {
	Kind     Kind
	TypeName string
}

// singleton Types for every primitive kind and for List and Map (element
// types are not tracked); Message types are constructed per-instance
// since each carries its own TypeName.
var (
	NullType      = &Type{Kind: KindNull, TypeName: "null_type"}
	BoolType      = &Type{Kind: KindBool, TypeName: "bool"}
	IntType       = &Type{Kind: KindInt, TypeName: "int"}
	UintType      = &Type{Kind: KindUint, TypeName: "uint"}
	DoubleType    = &Type{Kind: KindDouble, TypeName: "double"}
	StringType    = &Type{Kind: KindString, TypeName: "string"}
	BytesType     = &Type{Kind: KindBytes, TypeName: "bytes"}
	ListType      = &Type{Kind: KindList, TypeName: "list"}
	MapType       = &Type{Kind: KindMap, TypeName: "map"}
	TimestampType = &Type{Kind: KindTimestamp, TypeName: "google.protobuf.Timestamp"}
	DurationType  = &Type{Kind: KindDuration, TypeName: "google.protobuf.Duration"}
	TypeType      = &Type{Kind: KindType, TypeName: "type"}
	ErrType       = &Type{Kind: KindErr, TypeName: "error"}
)

// NewObjectType returns the Type for a named Message kind.
func NewObjectType(name string) *Type {
	return &Type{Kind: KindMessage, TypeName: name}
}

func (t *Type) String() string {
	return t.TypeName
}

// Equals reports whether two types denote the same CEL type.
func (t *Type) Equals(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.Kind == other.Kind && t.TypeName == other.TypeName
}

// Type implements Value for Type itself: type(type(x)) == Type.
func (t *Type) Type() *Type { return TypeType }

// Equal implements Value.
func (t *Type) Equal(other Value) Value {
	o, ok := other.(*Type)
	return Bool(ok && t.Equals(o))
}

// ConvertToType implements Value.
func (t *Type) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case TypeType:
		return TypeType
	case StringType:
		return String(t.TypeName)
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from '%s' to '%s'", TypeType, typeVal)
}

// ConvertToNative implements Value.
func (t *Type) ConvertToNative() (interface{}, error) {
	return t.TypeName, nil
}

func (t *Type) GoString() string {
	return fmt.Sprintf("Type(%s)", t.TypeName)
}
