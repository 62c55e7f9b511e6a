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
	"strconv"
	"strings"
	"time"
)

// Duration is the CEL signed elapsed-time kind at nanosecond resolution
// (spec.md §3.1).
type Duration struct {
	time.Duration
}

func (d Duration) Type() *Type { return DurationType }

func (d Duration) Add(other Value) Value {
	switch o := other.(type) {
	case Duration:
		v, ok := addInt64Checked(int64(d.Duration), int64(o.Duration))
		if !ok {
			return NewErr(ErrRange, "duration overflow")
		}
		return Duration{time.Duration(v)}
	case Timestamp:
		return NewTimestamp(o.Time.Add(d.Duration))
	}
	return NewErr(ErrNoSuchOverload, "no such overload: duration.add(%s)", other.Type())
}

func (d Duration) Subtract(other Value) Value {
	o, ok := other.(Duration)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: duration.subtract(%s)", other.Type())
	}
	v, ok := subtractInt64Checked(int64(d.Duration), int64(o.Duration))
	if !ok {
		return NewErr(ErrRange, "duration overflow")
	}
	return Duration{time.Duration(v)}
}

func (d Duration) Negate() Value {
	v, ok := negateInt64Checked(int64(d.Duration))
	if !ok {
		return NewErr(ErrRange, "duration overflow")
	}
	return Duration{time.Duration(v)}
}

func (d Duration) Compare(other Value) Value {
	o, ok := other.(Duration)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: duration.compare(%s)", other.Type())
	}
	switch {
	case d.Duration < o.Duration:
		return IntNegOne
	case d.Duration > o.Duration:
		return IntOne
	default:
		return IntZero
	}
}

func (d Duration) Equal(other Value) Value {
	o, ok := other.(Duration)
	return Bool(ok && d.Duration == o.Duration)
}

func (d Duration) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case DurationType:
		return d
	case StringType:
		return String(d.String())
	case IntType:
		return Int(int64(d.Duration))
	case TypeType:
		return DurationType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'duration' to '%s'", typeVal)
}

func (d Duration) ConvertToNative() (interface{}, error) {
	return d.Duration, nil
}

// String renders the canonical "{seconds}s" form (spec.md §4.3).
func (d Duration) String() string {
	sec := float64(d.Duration) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', -1, 64) + "s"
}

func (d Duration) GetHours() Value   { return Int(int64(d.Duration / time.Hour)) }
func (d Duration) GetMinutes() Value { return Int(int64(d.Duration / time.Minute)) }
func (d Duration) GetSeconds() Value { return Int(int64(d.Duration / time.Second)) }
func (d Duration) GetMilliseconds() Value {
	return Int(int64(d.Duration / time.Millisecond))
}

// parseDuration parses a "{n}h{n}m{n}s{n}ms{n}us{n}ns" style duration
// string (spec.md §4.3 "duration(s)"). Any prefix may be omitted.
func parseDuration(s string) Value {
	if s == "" {
		return NewErr(ErrConversion, "invalid duration literal %q", s)
	}
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var total time.Duration
	for len(s) > 0 {
		i := 0
		for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
			i++
		}
		if i == 0 {
			return NewErr(ErrConversion, "invalid duration literal %q", orig)
		}
		numPart := s[:i]
		s = s[i:]
		j := 0
		for j < len(s) && !(s[j] == '.' || (s[j] >= '0' && s[j] <= '9')) {
			j++
		}
		unit := s[:j]
		s = s[j:]
		f, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			return NewErr(ErrConversion, "invalid duration literal %q", orig)
		}
		var unitDur time.Duration
		switch unit {
		case "h":
			unitDur = time.Hour
		case "m":
			unitDur = time.Minute
		case "s":
			unitDur = time.Second
		case "ms":
			unitDur = time.Millisecond
		case "us", "µs":
			unitDur = time.Microsecond
		case "ns":
			unitDur = time.Nanosecond
		default:
			return NewErr(ErrConversion, "invalid duration unit %q in %q", unit, orig)
		}
		total += time.Duration(f * float64(unitDur))
	}
	if neg {
		total = -total
	}
	return Duration{total}
}
