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
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// String is the CEL immutable Unicode code-point sequence kind. size(s)
// counts code points, not bytes (spec.md §3.1).
type String string

func (s String) Type() *Type { return StringType }

func (s String) Add(other Value) Value {
	o, ok := other.(String)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: string.add(%s)", other.Type())
	}
	return s + o
}

func (s String) Compare(other Value) Value {
	o, ok := other.(String)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: string.compare(%s)", other.Type())
	}
	switch {
	case s < o:
		return IntNegOne
	case s > o:
		return IntOne
	default:
		return IntZero
	}
}

func (s String) Equal(other Value) Value {
	o, ok := other.(String)
	return Bool(ok && s == o)
}

func (s String) Size() Value {
	return Int(utf8.RuneCountInString(string(s)))
}

func (s String) Contains(elem Value) Value {
	o, ok := elem.(String)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: string.contains(%s)", elem.Type())
	}
	return Bool(strings.Contains(string(s), string(o)))
}

func (s String) StartsWith(prefix Value) Value {
	o, ok := prefix.(String)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: string.startsWith(%s)", prefix.Type())
	}
	return Bool(strings.HasPrefix(string(s), string(o)))
}

func (s String) EndsWith(suffix Value) Value {
	o, ok := suffix.(String)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: string.endsWith(%s)", suffix.Type())
	}
	return Bool(strings.HasSuffix(string(s), string(o)))
}

// Matches implements `x.matches(re)`/`matches(x, re)` using Go's RE2 engine
// (spec.md §4.3 "String library": concatenation, alternation, repetition,
// and Unicode classes all hold under RE2 — the fixed dialect for this
// module, documented in DESIGN.md).
func (s String) Matches(pattern Value) Value {
	p, ok := pattern.(String)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: string.matches(%s)", pattern.Type())
	}
	re, err := regexp.Compile(string(p))
	if err != nil {
		return NewErr(ErrInvalidArgument, "invalid regex: %v", err)
	}
	return Bool(re.MatchString(string(s)))
}

func (s String) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case StringType:
		return s
	case BytesType:
		return Bytes(s)
	case IntType:
		n, err := strconv.ParseInt(string(s), 10, 64)
		if err != nil {
			return NewErr(ErrConversion, "invalid int literal %q", string(s))
		}
		return Int(n)
	case UintType:
		n, err := strconv.ParseUint(string(s), 10, 64)
		if err != nil {
			return NewErr(ErrConversion, "invalid uint literal %q", string(s))
		}
		return Uint(n)
	case DoubleType:
		f, err := parseDouble(string(s))
		if err != nil {
			return NewErr(ErrConversion, "invalid double literal %q", string(s))
		}
		return Double(f)
	case BoolType:
		return parseBool(string(s))
	case TimestampType:
		return parseTimestamp(string(s))
	case DurationType:
		return parseDuration(string(s))
	case TypeType:
		return StringType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'string' to '%s'", typeVal)
}

func parseDouble(s string) (float64, error) {
	switch s {
	case "Infinity", "+Infinity", "Inf", "+Inf":
		return strconv.ParseFloat("+Inf", 64)
	case "-Infinity", "-Inf":
		return strconv.ParseFloat("-Inf", 64)
	case "NaN":
		return strconv.ParseFloat("NaN", 64)
	}
	return strconv.ParseFloat(s, 64)
}

func parseBool(s string) Value {
	switch s {
	case "1", "t", "true", "TRUE", "True":
		return True
	case "0", "f", "false", "FALSE", "False":
		return False
	}
	return NewErr(ErrConversion, "invalid bool literal %q", s)
}

func (s String) ConvertToNative() (interface{}, error) {
	return string(s), nil
}

func (s String) String() string { return string(s) }
