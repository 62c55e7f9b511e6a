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

// mapKey is the comparable Go representation of a CEL map key. Keys are
// restricted to Bool, Int, Uint, String (spec.md §3.1); each is namespaced
// by kind so Int(1) and Uint(1) never collide (they're only equal under
// dyn-wrapped comparison, never as map keys).
type mapKey struct {
	kind Kind
	i    int64
	u    uint64
	b    bool
	s    string
}

func newMapKey(k Value) (mapKey, Value) {
	switch v := k.(type) {
	case Bool:
		return mapKey{kind: KindBool, b: bool(v)}, nil
	case Int:
		return mapKey{kind: KindInt, i: int64(v)}, nil
	case Uint:
		return mapKey{kind: KindUint, u: uint64(v)}, nil
	case String:
		return mapKey{kind: KindString, s: string(v)}, nil
	}
	return mapKey{}, NewErr(ErrInvalidArgument, "invalid map key type: %s", k.Type())
}

func (mk mapKey) toValue() Value {
	switch mk.kind {
	case KindBool:
		return Bool(mk.b)
	case KindInt:
		return Int(mk.i)
	case KindUint:
		return Uint(mk.u)
	case KindString:
		return String(mk.s)
	}
	return NullValue
}

// Map is the CEL key/value container kind. Duplicate keys during
// construction are an error (spec.md §3.1).
type Map struct {
	order []mapKey
	data  map[mapKey]Value
}

// NewMap constructs a Map from an ordered list of (key, value) Values,
// returning an *Err if any key is unsupported or duplicated.
func NewMap(keys, values []Value) Value {
	if len(keys) != len(values) {
		return NewErr(ErrInvalidArgument, "mismatched key/value count constructing map")
	}
	m := &Map{data: make(map[mapKey]Value, len(keys))}
	for i, k := range keys {
		mk, errv := newMapKey(k)
		if errv != nil {
			return errv
		}
		if _, found := m.data[mk]; found {
			return NewErr(ErrInvalidArgument, "duplicate key %v in map construction", k)
		}
		m.data[mk] = values[i]
		m.order = append(m.order, mk)
	}
	return m
}

func (m *Map) Type() *Type { return MapType }

func (m *Map) Size() Value { return Int(len(m.order)) }

func (m *Map) Get(index Value) Value {
	mk, errv := newMapKey(index)
	if errv != nil {
		return errv
	}
	v, found := m.data[mk]
	if !found {
		return NewErr(ErrNoSuchKey, "no such key: %v", index)
	}
	return v
}

func (m *Map) Contains(key Value) Value {
	mk, errv := newMapKey(key)
	if errv != nil {
		return False
	}
	_, found := m.data[mk]
	return Bool(found)
}

// IsSet implements the has()-macro presence check for maps: true iff the
// key exists (spec.md §4.5).
func (m *Map) IsSet(field string) Value {
	mk, _ := newMapKey(String(field))
	_, found := m.data[mk]
	return Bool(found)
}

func (m *Map) Equal(other Value) Value {
	o, ok := other.(*Map)
	if !ok {
		return False
	}
	if len(m.order) != len(o.order) {
		return False
	}
	for mk, v := range m.data {
		ov, found := o.data[mk]
		if !found {
			return False
		}
		eq, ok := v.Equal(ov).(Bool)
		if !ok || !bool(eq) {
			return False
		}
	}
	return True
}

func (m *Map) Iterator() Iterator {
	return &mapIterator{m: m}
}

type mapIterator struct {
	m   *Map
	pos int
}

func (it *mapIterator) HasNext() bool { return it.pos < len(it.m.order) }

func (it *mapIterator) Next() Value {
	k := it.m.order[it.pos]
	it.pos++
	return k.toValue()
}

func (m *Map) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case MapType:
		return m
	case TypeType:
		return MapType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'map' to '%s'", typeVal)
}

func (m *Map) ConvertToNative() (interface{}, error) {
	out := make(map[string]interface{}, len(m.order))
	for _, mk := range m.order {
		v := m.data[mk]
		n, err := v.ConvertToNative()
		if err != nil {
			return nil, err
		}
		k := mk.toValue()
		ks, kerr := k.ConvertToType(StringType), error(nil)
		if IsError(ks) {
			kerr = fmt.Errorf("%v", ks)
		}
		if kerr != nil {
			return nil, kerr
		}
		out[string(ks.(String))] = n
	}
	return out, nil
}

func (m *Map) String() string {
	s := "{"
	for i, mk := range m.order {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v: %v", mk.toValue(), m.data[mk])
	}
	return s + "}"
}
