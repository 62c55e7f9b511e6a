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

// Package errors implements the structured, location-tagged syntax error
// report spec.md §4.1 "Errors" and §7 "syntax" require.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Location is a 1-based line/column pair into the source text.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Error is a single syntax error report: location and message. Where
// there is an offending token, the message quotes it.
type Error struct {
	Location Location
	Message  string
}

func (e *Error) String() string {
	return fmt.Sprintf("ERROR: <input>:%s: %s", e.Location, e.Message)
}

// Errors accumulates every syntax error found during a single parse so a
// host sees all of them, not just the first (spec.md §4.1).
type Errors struct {
	errs []*Error
}

// NewErrors returns an empty accumulator.
func NewErrors() *Errors { return &Errors{} }

// ReportError records a new syntax error at the given location.
func (e *Errors) ReportError(l Location, format string, args ...interface{}) {
	e.errs = append(e.errs, &Error{Location: l, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether any errors were recorded.
func (e *Errors) Empty() bool { return len(e.errs) == 0 }

// GetErrors returns the recorded errors in source order.
func (e *Errors) GetErrors() []*Error {
	sort.SliceStable(e.errs, func(i, j int) bool {
		a, b := e.errs[i].Location, e.errs[j].Location
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return e.errs
}

// Error implements the `error` interface, joining every recorded error.
func (e *Errors) Error() string {
	lines := make([]string, 0, len(e.errs))
	for _, er := range e.GetErrors() {
		lines = append(lines, er.String())
	}
	return strings.Join(lines, "\n")
}
