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

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Message is the CEL structured-record kind; its semantics mirror
// protobuf proto2/proto3 with well-known-type folding (spec.md §3.1).
// Unboxing happens once, here, at the value-construction boundary
// (spec.md §9 "Design notes") so the evaluator never has to ask "is this
// a wrapper?" — NativeToValue is the only place that distinguishes them.
type Message struct {
	msg      proto.Message
	typeName string
}

// NewMessage wraps a proto.Message as a CEL Message value. Use
// NativeToValue instead when the message might be a well-known type that
// should unbox to a primitive/List/Map/Timestamp/Duration CEL value.
func NewMessage(msg proto.Message) *Message {
	return &Message{msg: msg, typeName: string(msg.ProtoReflect().Descriptor().FullName())}
}

func (m *Message) Type() *Type { return NewObjectType(m.typeName) }

func (m *Message) Equal(other Value) Value {
	o, ok := other.(*Message)
	if !ok {
		return False
	}
	if m.typeName != o.typeName {
		return False
	}
	return Bool(proto.Equal(m.msg, o.msg))
}

// Get implements field selection `e.f` on a Message.
func (m *Message) Get(field string) Value {
	fd := m.fieldDescriptor(field)
	if fd == nil {
		return NewErr(ErrNoSuchField, "no such field '%s' on %s", field, m.typeName)
	}
	refl := m.msg.ProtoReflect()
	return fieldToValue(refl, fd)
}

// IsSet implements the has() macro's presence-sensitive semantics
// (spec.md §4.5): wrappers and singular message fields are unset when not
// explicitly assigned; primitive proto3 scalar fields are unset when equal
// to their zero default.
func (m *Message) IsSet(field string) Value {
	fd := m.fieldDescriptor(field)
	if fd == nil {
		return NewErr(ErrNoSuchField, "no such field '%s' on %s", field, m.typeName)
	}
	refl := m.msg.ProtoReflect()
	if fd.IsList() {
		return Bool(refl.Get(fd).List().Len() > 0 || refl.Has(fd))
	}
	if fd.IsMap() {
		return Bool(refl.Get(fd).Map().Len() > 0 || refl.Has(fd))
	}
	return Bool(refl.Has(fd))
}

func (m *Message) fieldDescriptor(field string) protoreflect.FieldDescriptor {
	fields := m.msg.ProtoReflect().Descriptor().Fields()
	return fields.ByName(protoreflect.Name(field))
}

func (m *Message) ConvertToType(typeVal *Type) Value {
	if typeVal == TypeType {
		return m.Type()
	}
	if typeVal.Kind == KindMessage && typeVal.TypeName == m.typeName {
		return m
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from '%s' to '%s'", m.typeName, typeVal)
}

func (m *Message) ConvertToNative() (interface{}, error) {
	return m.msg, nil
}

func (m *Message) String() string {
	return string(m.msg.ProtoReflect().Descriptor().FullName().Name()) + "{...}"
}

// NativeToValue converts a proto.Message to a CEL Value, folding the
// well-known types into their native CEL kinds (spec.md §3.1 "Message"):
// wrappers unbox to the primitive or Null; Struct unboxes to Map<String,
// dyn>; ListValue unboxes to List<dyn>; Value unboxes to its contained
// kind; Any resolves by type_url; Duration/Timestamp unbox directly.
func NativeToValue(msg proto.Message) Value {
	switch v := msg.(type) {
	case *wrapperspb.BoolValue:
		if v == nil {
			return NullValue
		}
		return Bool(v.GetValue())
	case *wrapperspb.Int32Value:
		if v == nil {
			return NullValue
		}
		return Int(v.GetValue())
	case *wrapperspb.Int64Value:
		if v == nil {
			return NullValue
		}
		return Int(v.GetValue())
	case *wrapperspb.UInt32Value:
		if v == nil {
			return NullValue
		}
		return Uint(v.GetValue())
	case *wrapperspb.UInt64Value:
		if v == nil {
			return NullValue
		}
		return Uint(v.GetValue())
	case *wrapperspb.FloatValue:
		if v == nil {
			return NullValue
		}
		return Double(v.GetValue())
	case *wrapperspb.DoubleValue:
		if v == nil {
			return NullValue
		}
		return Double(v.GetValue())
	case *wrapperspb.StringValue:
		if v == nil {
			return NullValue
		}
		return String(v.GetValue())
	case *wrapperspb.BytesValue:
		if v == nil {
			return NullValue
		}
		return Bytes(v.GetValue())
	case *timestamppb.Timestamp:
		if v == nil {
			return NullValue
		}
		return NewTimestamp(v.AsTime())
	case *durationpb.Duration:
		if v == nil {
			return NullValue
		}
		return Duration{v.AsDuration()}
	case *structpb.Struct:
		return structToMap(v)
	case *structpb.ListValue:
		return listValueToList(v)
	case *structpb.Value:
		return structValueToValue(v)
	case *anypb.Any:
		return unpackAny(v)
	case nil:
		return NullValue
	default:
		return NewMessage(msg)
	}
}

func structToMap(s *structpb.Struct) Value {
	if s == nil {
		return NullValue
	}
	keys := make([]Value, 0, len(s.GetFields()))
	vals := make([]Value, 0, len(s.GetFields()))
	for k, v := range s.GetFields() {
		keys = append(keys, String(k))
		vals = append(vals, structValueToValue(v))
	}
	return NewMap(keys, vals)
}

func listValueToList(l *structpb.ListValue) Value {
	if l == nil {
		return NullValue
	}
	elems := make([]Value, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		elems = append(elems, structValueToValue(v))
	}
	return NewList(elems)
}

func structValueToValue(v *structpb.Value) Value {
	if v == nil {
		return NullValue
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return NullValue
	case *structpb.Value_BoolValue:
		return Bool(k.BoolValue)
	case *structpb.Value_NumberValue:
		return Double(k.NumberValue)
	case *structpb.Value_StringValue:
		return String(k.StringValue)
	case *structpb.Value_ListValue:
		return listValueToList(k.ListValue)
	case *structpb.Value_StructValue:
		return structToMap(k.StructValue)
	}
	return NullValue
}

func unpackAny(a *anypb.Any) Value {
	if a == nil {
		return NullValue
	}
	msg, err := a.UnmarshalNew()
	if err != nil {
		// Fall back to bytewise equality of the value bytes (spec.md §4.3
		// "Protobuf well-known-type equivalence"): wrap as an opaque
		// message whose only supported operation is Equal-by-bytes.
		return &unresolvedAny{typeURL: a.GetTypeUrl(), value: a.GetValue()}
	}
	return NativeToValue(msg)
}

// unresolvedAny represents an Any whose type_url could not be resolved to
// a registered message; it only supports bytewise equality with another
// unresolved Any carrying the same bytes (spec.md §4.3).
type unresolvedAny struct {
	typeURL string
	value   []byte
}

func (u *unresolvedAny) Type() *Type { return NewObjectType("google.protobuf.Any") }

func (u *unresolvedAny) Equal(other Value) Value {
	o, ok := other.(*unresolvedAny)
	if !ok {
		return False
	}
	return Bool(u.typeURL == o.typeURL && string(u.value) == string(o.value))
}

func (u *unresolvedAny) ConvertToType(typeVal *Type) Value {
	return NewErr(ErrNoSuchOverload, "cannot convert unresolved Any to '%s'", typeVal)
}

func (u *unresolvedAny) ConvertToNative() (interface{}, error) {
	return nil, fmt.Errorf("cannot resolve Any with type_url %q", u.typeURL)
}

func fieldToValue(m protoreflect.Message, fd protoreflect.FieldDescriptor) Value {
	if fd.IsList() {
		lv := m.Get(fd).List()
		elems := make([]Value, lv.Len())
		for i := 0; i < lv.Len(); i++ {
			elems[i] = protoValueToValue(fd, lv.Get(i))
		}
		return NewList(elems)
	}
	if fd.IsMap() {
		mv := m.Get(fd).Map()
		keys := make([]Value, 0, mv.Len())
		vals := make([]Value, 0, mv.Len())
		mv.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
			keys = append(keys, protoMapKeyToValue(fd.MapKey(), k))
			vals = append(vals, protoValueToValue(fd.MapValue(), v))
			return true
		})
		return NewMap(keys, vals)
	}
	if fd.Message() != nil {
		sub := m.Get(fd).Message()
		return NativeToValue(sub.Interface())
	}
	return protoValueToValue(fd, m.Get(fd))
}

func protoMapKeyToValue(fd protoreflect.FieldDescriptor, k protoreflect.MapKey) Value {
	return protoValueToValue(fd, k.Value())
}

func protoValueToValue(fd protoreflect.FieldDescriptor, v protoreflect.Value) Value {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return Bool(v.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return Int(v.Int())
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return Uint(v.Uint())
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return Double(v.Float())
	case protoreflect.StringKind:
		return String(v.String())
	case protoreflect.BytesKind:
		return Bytes(v.Bytes())
	case protoreflect.EnumKind:
		return Int(v.Enum())
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return NativeToValue(v.Message().Interface())
	}
	return NullValue
}
