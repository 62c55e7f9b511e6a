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

package containers

import (
	"reflect"
	"testing"
)

func TestResolveCandidateNamesLongestPrefixFirst(t *testing.T) {
	c, err := New(Name("a.b.c"))
	if err != nil {
		t.Fatal(err)
	}
	got := c.ResolveCandidateNames("R.s")
	want := []string{"a.b.c.R.s", "a.b.R.s", "a.R.s", "R.s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveCandidateNamesAbsoluteName(t *testing.T) {
	c, err := New(Name("a.b.c"))
	if err != nil {
		t.Fatal(err)
	}
	got := c.ResolveCandidateNames(".pkg.Name")
	want := []string{"pkg.Name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveCandidateNamesNoContainer(t *testing.T) {
	var c *Container
	got := c.ResolveCandidateNames("x")
	want := []string{"x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAliasTriedLast(t *testing.T) {
	c, err := New(Name("a.b"), Alias("google.type.Money", "Money"))
	if err != nil {
		t.Fatal(err)
	}
	got := c.ResolveCandidateNames("Money")
	want := []string{"a.b.Money", "a.Money", "Money", "google.type.Money"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAliasMustBeSimpleName(t *testing.T) {
	if _, err := New(Alias("a.b.Money", "x.Money")); err == nil {
		t.Fatal("expected error for dotted alias")
	}
}

func TestAliasCollision(t *testing.T) {
	if _, err := New(Alias("a.Money", "Money"), Alias("b.Money", "Money")); err == nil {
		t.Fatal("expected error for colliding alias")
	}
}

func TestExtendPreservesAliasesAndOverridesName(t *testing.T) {
	base, err := New(Name("a"), Alias("a.Money", "Money"))
	if err != nil {
		t.Fatal(err)
	}
	ext, err := base.Extend(Name("a.b"))
	if err != nil {
		t.Fatal(err)
	}
	if ext.Name() != "a.b" {
		t.Fatalf("expected extended name 'a.b', got %q", ext.Name())
	}
	got := ext.ResolveCandidateNames("Money")
	if got[len(got)-1] != "a.Money" {
		t.Fatalf("expected alias to carry over, got %v", got)
	}
}
