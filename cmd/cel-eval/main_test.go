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

package main

import "testing"

func TestParseBindingsEachType(t *testing.T) {
	got, err := parseBindings([]string{
		"x:int=42",
		"y:uint=7",
		"z:double=3.5",
		"ok:bool=true",
		"name:string=hello",
		`data:json={"a":1}`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["x"].(int64) != 42 {
		t.Fatalf("expected int64 42, got %#v", got["x"])
	}
	if got["y"].(uint64) != 7 {
		t.Fatalf("expected uint64 7, got %#v", got["y"])
	}
	if got["z"].(float64) != 3.5 {
		t.Fatalf("expected float64 3.5, got %#v", got["z"])
	}
	if got["ok"].(bool) != true {
		t.Fatalf("expected bool true, got %#v", got["ok"])
	}
	if got["name"].(string) != "hello" {
		t.Fatalf("expected string 'hello', got %#v", got["name"])
	}
	m, ok := got["data"].(map[string]interface{})
	if !ok || m["a"].(float64) != 1 {
		t.Fatalf("expected decoded json map with a=1, got %#v", got["data"])
	}
}

func TestParseBindingsRejectsMissingType(t *testing.T) {
	if _, err := parseBindings([]string{"x=1"}); err == nil {
		t.Fatal("expected an error for a binding with no TYPE segment")
	}
}

func TestParseBindingsRejectsUnknownType(t *testing.T) {
	if _, err := parseBindings([]string{"x:unknown=1"}); err == nil {
		t.Fatal("expected an error for an unknown binding type")
	}
}

func TestParseBindingsRejectsMalformedInt(t *testing.T) {
	if _, err := parseBindings([]string{"x:int=notanumber"}); err == nil {
		t.Fatal("expected an error for a malformed int value")
	}
}
