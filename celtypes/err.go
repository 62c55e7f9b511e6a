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

// ErrKind enumerates the evaluation error taxonomy of spec.md §7. It is not
// exhaustive of all Go errors the host may see (syntax errors are reported
// separately by the parser via common/errors), only of the Err Value kind
// produced during evaluation.
type ErrKind uint8

const (
	ErrUnknown ErrKind = iota
	ErrNoSuchOverload
	ErrNoSuchKey
	ErrNoSuchField
	ErrInvalidArgument
	ErrRange
	ErrDivideByZero
	ErrModulusByZero
	ErrUnknownVariable
	ErrConversion
	ErrInvalidUTF8
)

func (k ErrKind) String() string {
	switch k {
	case ErrNoSuchOverload:
		return "no such overload"
	case ErrNoSuchKey:
		return "no such key"
	case ErrNoSuchField:
		return "no such field"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrRange:
		return "range"
	case ErrDivideByZero:
		return "divide by zero"
	case ErrModulusByZero:
		return "modulus by zero"
	case ErrUnknownVariable:
		return "unknown variable"
	case ErrConversion:
		return "conversion"
	case ErrInvalidUTF8:
		return "invalid UTF-8"
	}
	return "unknown"
}

// Err is a CEL evaluation error; it implements Value so it can flow through
// the tree-walker as an ordinary result (spec.md §4.5, §7).
type Err struct {
	Kind    ErrKind
	Message string
}

// NewErr builds an Err of the given kind with a formatted message.
func NewErr(kind ErrKind, format string, args ...interface{}) *Err {
	return &Err{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Err) Error() string {
	return e.Message
}

// Type implements Value.
func (e *Err) Type() *Type { return ErrType }

// Equal implements Value. An error is never equal to anything, including
// another error, matching the teacher's common/types/err.go behavior.
func (e *Err) Equal(other Value) Value { return e }

// ConvertToType implements Value; errors are not convertible.
func (e *Err) ConvertToType(typeVal *Type) Value { return e }

// ConvertToNative implements Value.
func (e *Err) ConvertToNative() (interface{}, error) {
	return nil, e
}

func (e *Err) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsError reports whether v is an Err value.
func IsError(v Value) bool {
	_, ok := v.(*Err)
	return ok
}

// MaybeErr returns v as an *Err and true if v is an error, else nil, false.
func MaybeErr(v Value) (*Err, bool) {
	e, ok := v.(*Err)
	return e, ok
}
