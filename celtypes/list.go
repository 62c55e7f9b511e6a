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

// List is the CEL ordered-sequence kind. Insertion order is preserved
// (spec.md §3.2).
type List struct {
	elems []Value
}

// NewList builds a List value from a slice of already-constructed Values.
// The slice is retained, not copied; callers must not mutate it afterward
// (Values are immutable once constructed, spec.md §3.3).
func NewList(elems []Value) *List {
	return &List{elems: elems}
}

func (l *List) Type() *Type { return ListType }

func (l *List) Size() Value { return Int(len(l.elems)) }

func (l *List) Get(index Value) Value {
	i, ok := index.(Int)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: list.index(%s)", index.Type())
	}
	if i < 0 || int(i) >= len(l.elems) {
		return NewErr(ErrInvalidArgument, "index %d out of range [0, %d)", int64(i), len(l.elems))
	}
	return l.elems[i]
}

func (l *List) Contains(elem Value) Value {
	for _, e := range l.elems {
		if b, ok := e.Equal(elem).(Bool); ok && bool(b) {
			return True
		}
	}
	return False
}

func (l *List) Add(other Value) Value {
	o, ok := other.(*List)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: list.add(%s)", other.Type())
	}
	out := make([]Value, 0, len(l.elems)+len(o.elems))
	out = append(out, l.elems...)
	out = append(out, o.elems...)
	return NewList(out)
}

// Equal implements value equality: same length, element-wise Equal true.
func (l *List) Equal(other Value) Value {
	o, ok := other.(*List)
	if !ok {
		return False
	}
	if len(l.elems) != len(o.elems) {
		return False
	}
	for i, e := range l.elems {
		eq, ok := e.Equal(o.elems[i]).(Bool)
		if !ok || !bool(eq) {
			return False
		}
	}
	return True
}

func (l *List) Iterator() Iterator {
	return &listIterator{list: l}
}

// Elements exposes the underlying slice for the adapter and macro
// evaluation; callers must treat it as read-only.
func (l *List) Elements() []Value { return l.elems }

type listIterator struct {
	list *List
	pos  int
}

func (it *listIterator) HasNext() bool { return it.pos < len(it.list.elems) }

func (it *listIterator) Next() Value {
	v := it.list.elems[it.pos]
	it.pos++
	return v
}

func (l *List) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case ListType:
		return l
	case TypeType:
		return ListType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'list' to '%s'", typeVal)
}

func (l *List) ConvertToNative() (interface{}, error) {
	out := make([]interface{}, len(l.elems))
	for i, e := range l.elems {
		n, err := e.ConvertToNative()
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (l *List) String() string {
	s := "["
	for i, e := range l.elems {
		if i > 0 {
			s += ", "
		}
		if st, ok := e.(interface{ String() string }); ok {
			s += st.String()
		}
	}
	return s + "]"
}
