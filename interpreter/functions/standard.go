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

package functions

import (
	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/common/operators"
)

// NewStandardRegistry returns a Registry pre-populated with the builtin
// operator and function set of spec.md §4.4 "Built-in set": arithmetic,
// equality/ordering (including the dyn cross-type rules of §4.3, via
// celtypes.Equals/Less/...), size/type/contains/startsWith/endsWith/
// matches, the conversion functions, and the Timestamp component
// accessors. Arithmetic and conversion dispatch by asserting the
// relevant celtypes capability interface rather than by registering one
// overload per concrete kind (spec.md §9 "Dynamic typing of values":
// the value model itself is the source of per-kind dispatch).
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	must := func(ov *Overload) {
		if err := r.Add(ov); err != nil {
			panic(err) // builtin registration is a programming error, not runtime data
		}
	}

	must(&Overload{Function: operators.Add, Binary: binaryDispatch(func(a celtypes.Adder, b celtypes.Value) celtypes.Value { return a.Add(b) }, "add")})
	must(&Overload{Function: operators.Subtract, Binary: binaryDispatch(func(a celtypes.Subtractor, b celtypes.Value) celtypes.Value { return a.Subtract(b) }, "subtract")})
	must(&Overload{Function: operators.Multiply, Binary: binaryDispatch(func(a celtypes.Multiplier, b celtypes.Value) celtypes.Value { return a.Multiply(b) }, "multiply")})
	must(&Overload{Function: operators.Divide, Binary: binaryDispatch(func(a celtypes.Divider, b celtypes.Value) celtypes.Value { return a.Divide(b) }, "divide")})
	must(&Overload{Function: operators.Modulo, Binary: binaryDispatch(func(a celtypes.Modder, b celtypes.Value) celtypes.Value { return a.Modulo(b) }, "modulo")})

	must(&Overload{Function: operators.Negate, Unary: func(v celtypes.Value) celtypes.Value {
		n, ok := v.(celtypes.Negater)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: -%s", v.Type())
		}
		return n.Negate()
	}})

	must(&Overload{Function: operators.LogicalNot, Unary: func(v celtypes.Value) celtypes.Value {
		b, ok := v.(celtypes.Bool)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: !%s", v.Type())
		}
		return !b
	}})

	must(&Overload{Function: operators.Equals, Binary: func(a, b celtypes.Value) celtypes.Value { return celtypes.Equals(a, b) }})
	must(&Overload{Function: operators.NotEquals, Binary: func(a, b celtypes.Value) celtypes.Value { return celtypes.NotEquals(a, b) }})
	must(&Overload{Function: operators.Less, Binary: func(a, b celtypes.Value) celtypes.Value { return celtypes.Less(a, b) }})
	must(&Overload{Function: operators.LessEquals, Binary: func(a, b celtypes.Value) celtypes.Value { return celtypes.LessEquals(a, b) }})
	must(&Overload{Function: operators.Greater, Binary: func(a, b celtypes.Value) celtypes.Value { return celtypes.Greater(a, b) }})
	must(&Overload{Function: operators.GreaterEquals, Binary: func(a, b celtypes.Value) celtypes.Value { return celtypes.GreaterEquals(a, b) }})

	must(&Overload{Function: operators.In, Binary: func(elem, container celtypes.Value) celtypes.Value {
		c, ok := container.(celtypes.Container)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s in %s", elem.Type(), container.Type())
		}
		return c.Contains(elem)
	}})

	must(&Overload{Function: operators.Index, Binary: func(indexed, idx celtypes.Value) celtypes.Value {
		ix, ok := indexed.(celtypes.Indexer)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s[%s]", indexed.Type(), idx.Type())
		}
		return ix.Get(idx)
	}})

	must(&Overload{Function: "size", Unary: func(v celtypes.Value) celtypes.Value {
		s, ok := v.(celtypes.Sizer)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: size(%s)", v.Type())
		}
		return s.Size()
	}})

	must(&Overload{Function: "type", Unary: func(v celtypes.Value) celtypes.Value { return v.Type() }})

	must(&Overload{Function: "contains", Binary: stringBinary(func(s celtypes.String, arg celtypes.Value) celtypes.Value { return s.Contains(arg) })})
	must(&Overload{Function: "startsWith", Binary: stringBinary(func(s celtypes.String, arg celtypes.Value) celtypes.Value { return s.StartsWith(arg) })})
	must(&Overload{Function: "endsWith", Binary: stringBinary(func(s celtypes.String, arg celtypes.Value) celtypes.Value { return s.EndsWith(arg) })})
	must(&Overload{Function: "matches", Binary: stringBinary(func(s celtypes.String, arg celtypes.Value) celtypes.Value { return s.Matches(arg) })})

	for name, t := range map[string]*celtypes.Type{
		"int": celtypes.IntType, "uint": celtypes.UintType, "double": celtypes.DoubleType,
		"string": celtypes.StringType, "bytes": celtypes.BytesType, "bool": celtypes.BoolType,
		"timestamp": celtypes.TimestampType, "duration": celtypes.DurationType,
	} {
		target := t
		must(&Overload{Function: name, Unary: func(v celtypes.Value) celtypes.Value { return v.ConvertToType(target) }})
	}

	must(&Overload{Function: "dyn", Unary: func(v celtypes.Value) celtypes.Value { return celtypes.NewDyn(v) }})

	for _, accessor := range []string{"getFullYear", "getMonth", "getDayOfMonth", "getDate", "getDayOfWeek", "getHours", "getMinutes", "getSeconds", "getMilliseconds"} {
		name := accessor
		must(&Overload{Function: name, Unary: timestampOrDurationAccessor(name)})
		must(&Overload{Function: name, Binary: timestampAccessorWithZone(name)})
	}

	return r
}

func binaryDispatch[T any](op func(T, celtypes.Value) celtypes.Value, name string) Binary {
	return func(a, b celtypes.Value) celtypes.Value {
		lhs, ok := a.(T)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s.%s(%s)", a.Type(), name, b.Type())
		}
		return op(lhs, b)
	}
}

func stringBinary(op func(celtypes.String, celtypes.Value) celtypes.Value) Binary {
	return func(a, b celtypes.Value) celtypes.Value {
		s, ok := a.(celtypes.String)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload on %s", a.Type())
		}
		return op(s, b)
	}
}

// timestampOrDurationAccessor handles the zero-argument form of a
// component accessor, which Timestamp interprets in UTC and Duration
// interprets as a fixed-unit breakdown (spec.md §3.1 Duration
// "GetHours/GetMinutes/GetSeconds/GetMilliseconds").
func timestampOrDurationAccessor(name string) Unary {
	return func(v celtypes.Value) celtypes.Value {
		switch t := v.(type) {
		case celtypes.Timestamp:
			return t.Accessor(name, "")
		case celtypes.Duration:
			switch name {
			case "getHours":
				return t.GetHours()
			case "getMinutes":
				return t.GetMinutes()
			case "getSeconds":
				return t.GetSeconds()
			case "getMilliseconds":
				return t.GetMilliseconds()
			}
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such duration accessor %q", name)
		}
		return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s(%s)", name, v.Type())
	}
}

func timestampAccessorWithZone(name string) Binary {
	return func(v, zone celtypes.Value) celtypes.Value {
		ts, ok := v.(celtypes.Timestamp)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s(%s)", name, v.Type())
		}
		z, ok := zone.(celtypes.String)
		if !ok {
			return celtypes.NewErr(celtypes.ErrNoSuchOverload, "no such overload: %s(%s, %s)", name, v.Type(), zone.Type())
		}
		return ts.Accessor(name, string(z))
	}
}
