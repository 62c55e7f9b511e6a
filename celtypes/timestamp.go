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
	"time"
)

// Timestamp is the CEL wall-clock instant kind, UTC-referenced at
// nanosecond resolution (spec.md §3.1).
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time, normalizing it to UTC. Identity and
// equality never depend on the original zone (spec.md §3.2).
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}

func (t Timestamp) Type() *Type { return TimestampType }

func (t Timestamp) Add(other Value) Value {
	switch o := other.(type) {
	case Duration:
		return NewTimestamp(t.Time.Add(o.Duration))
	}
	return NewErr(ErrNoSuchOverload, "no such overload: timestamp.add(%s)", other.Type())
}

func (t Timestamp) Subtract(other Value) Value {
	switch o := other.(type) {
	case Duration:
		return NewTimestamp(t.Time.Add(-o.Duration))
	case Timestamp:
		return Duration{t.Time.Sub(o.Time)}
	}
	return NewErr(ErrNoSuchOverload, "no such overload: timestamp.subtract(%s)", other.Type())
}

func (t Timestamp) Compare(other Value) Value {
	o, ok := other.(Timestamp)
	if !ok {
		return NewErr(ErrNoSuchOverload, "no such overload: timestamp.compare(%s)", other.Type())
	}
	if t.Time.Before(o.Time) {
		return IntNegOne
	}
	if t.Time.After(o.Time) {
		return IntOne
	}
	return IntZero
}

func (t Timestamp) Equal(other Value) Value {
	o, ok := other.(Timestamp)
	return Bool(ok && t.Time.Equal(o.Time))
}

func (t Timestamp) ConvertToType(typeVal *Type) Value {
	switch typeVal {
	case TimestampType:
		return t
	case StringType:
		return String(t.Time.Format(time.RFC3339Nano))
	case IntType:
		return Int(t.Time.Unix())
	case TypeType:
		return TimestampType
	}
	return NewErr(ErrNoSuchOverload, "type conversion error from 'timestamp' to '%s'", typeVal)
}

func (t Timestamp) ConvertToNative() (interface{}, error) {
	return t.Time, nil
}

func (t Timestamp) String() string { return t.Time.Format(time.RFC3339Nano) }

// Component accessors (spec.md §3.1 "component accessors"). zone is an
// optional IANA time-zone name; "" means UTC.
func (t Timestamp) inZone(zone string) (time.Time, Value) {
	if zone == "" {
		return t.Time, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, NewErr(ErrInvalidArgument, "invalid time zone %q: %v", zone, err)
	}
	return t.Time.In(loc), nil
}

func (t Timestamp) GetFullYear(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Year())
}

func (t Timestamp) GetMonth(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(int(tt.Month()) - 1)
}

func (t Timestamp) GetDayOfMonth(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Day() - 1)
}

func (t Timestamp) GetDate(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Day())
}

func (t Timestamp) GetDayOfWeek(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(int(tt.Weekday()))
}

func (t Timestamp) GetHours(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Hour())
}

func (t Timestamp) GetMinutes(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Minute())
}

func (t Timestamp) GetSeconds(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Second())
}

func (t Timestamp) GetMilliseconds(zone string) Value {
	tt, errv := t.inZone(zone)
	if errv != nil {
		return errv
	}
	return Int(tt.Nanosecond() / 1e6)
}

// Accessor dispatches to the named component accessor above by its
// builtin function name (e.g. "getFullYear"), used by the function
// registry so it doesn't need one Overload per accessor method.
func (t Timestamp) Accessor(name, zone string) Value {
	switch name {
	case "getFullYear":
		return t.GetFullYear(zone)
	case "getMonth":
		return t.GetMonth(zone)
	case "getDayOfMonth":
		return t.GetDayOfMonth(zone)
	case "getDate":
		return t.GetDate(zone)
	case "getDayOfWeek":
		return t.GetDayOfWeek(zone)
	case "getHours":
		return t.GetHours(zone)
	case "getMinutes":
		return t.GetMinutes(zone)
	case "getSeconds":
		return t.GetSeconds(zone)
	case "getMilliseconds":
		return t.GetMilliseconds(zone)
	}
	return NewErr(ErrNoSuchOverload, "no such timestamp accessor %q", name)
}

// parseTimestamp parses RFC 3339 text into a UTC-referenced Timestamp
// (spec.md §4.3 "timestamp(s)").
func parseTimestamp(s string) Value {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return NewErr(ErrConversion, "invalid timestamp literal %q: %v", s, err)
	}
	return NewTimestamp(t)
}
