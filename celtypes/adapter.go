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
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
)

// NativeToCEL adapts an arbitrary host value into a CEL Value. It covers
// the JSON adapter mapping of spec.md §6 (bool/number/string/array/object)
// plus the Go-native conveniences a host activation commonly needs
// (int64/uint64/float64/[]byte/time.Time/time.Duration/proto.Message),
// so hosts are not forced to pre-convert every binding through JSON.
//
// The adapter never infers Timestamp or Duration from strings (spec.md
// §6): a bare Go string always becomes a CEL String, even if it looks like
// an RFC 3339 timestamp. The host must call timestamp(...)/duration(...)
// from within the CEL expression.
func NativeToCEL(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return NullValue
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint:
		return Uint(t)
	case uint32:
		return Uint(t)
	case uint64:
		return Uint(t)
	case float32:
		return Double(t)
	case float64:
		return Double(t)
	case string:
		return String(t)
	case []byte:
		return Bytes(t)
	case time.Time:
		return NewTimestamp(t)
	case time.Duration:
		return Duration{t}
	case proto.Message:
		return NativeToValue(t)
	case []interface{}:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = NativeToCEL(e)
		}
		return NewList(elems)
	case map[string]interface{}:
		keys := make([]Value, 0, len(t))
		vals := make([]Value, 0, len(t))
		for k, e := range t {
			keys = append(keys, String(k))
			vals = append(vals, NativeToCEL(e))
		}
		return NewMap(keys, vals)
	}
	return NewErr(ErrInvalidArgument, "unsupported native value of type %T", v)
}

// JSONToCEL decodes JSON text and adapts it per the canonical mapping in
// spec.md §6: null -> Null, number -> Double (always; the int/double
// distinction is lost), others as NativeToCEL already handles them.
func JSONToCEL(data []byte) (Value, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return NativeToCEL(v), nil
}

// CELToJSON renders a CEL Value back to JSON-compatible native Go data.
func CELToJSON(v Value) (interface{}, error) {
	switch t := v.(type) {
	case Null:
		return nil, nil
	case Bool:
		return bool(t), nil
	case Int:
		return int64(t), nil
	case Uint:
		return uint64(t), nil
	case Double:
		return float64(t), nil
	case String:
		return string(t), nil
	case Bytes:
		return []byte(t), nil
	case *List:
		out := make([]interface{}, 0, len(t.Elements()))
		for _, e := range t.Elements() {
			je, err := CELToJSON(e)
			if err != nil {
				return nil, err
			}
			out = append(out, je)
		}
		return out, nil
	case *Map:
		out := make(map[string]interface{}, len(t.order))
		for _, mk := range t.order {
			je, err := CELToJSON(t.data[mk])
			if err != nil {
				return nil, err
			}
			k := mk.toValue()
			ks := k.ConvertToType(StringType)
			if IsError(ks) {
				return nil, fmt.Errorf("map key %v is not JSON-representable", k)
			}
			out[string(ks.(String))] = je
		}
		return out, nil
	case *Err:
		return nil, t
	}
	return nil, fmt.Errorf("value of type %s is not JSON-representable", v.Type())
}
