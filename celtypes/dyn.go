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

// Dyn is the runtime marker left by the `dyn(x)` builtin (spec.md §4.3,
// §9 "Mixed-type numeric comparison"). It is transparent to every
// operation except the comparison dispatch in compare.go, which looks for
// it to opt a numeric operand into cross-kind (Int/Uint/Double) ordering
// and equality. `type(dyn(x)) == type(x)` and `dyn(x) == x` both hold
// because Dyn forwards Type and, outside compare.go, behaves exactly like
// the value it wraps.
type Dyn struct {
	Value
}

// NewDyn wraps v, collapsing repeated dyn(dyn(x)) to a single layer.
func NewDyn(v Value) Value {
	if d, ok := v.(Dyn); ok {
		return d
	}
	return Dyn{v}
}

// Type is transparent: dyn() never introduces a new CEL type.
func (d Dyn) Type() *Type { return d.Value.Type() }

// Equal delegates to the shared Equals() dispatch so that dyn(1) == 1u and
// similar cross-kind numeric comparisons succeed even when Equal is called
// directly rather than through the evaluator's binary-operator path.
func (d Dyn) Equal(other Value) Value {
	return Equals(d, other)
}

func (d Dyn) ConvertToType(typeVal *Type) Value {
	return d.Value.ConvertToType(typeVal)
}

func (d Dyn) ConvertToNative() (interface{}, error) {
	return d.Value.ConvertToNative()
}

func (d Dyn) String() string {
	if s, ok := d.Value.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}
