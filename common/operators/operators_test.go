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

package operators

import "testing"

func TestFindKnownLexemes(t *testing.T) {
	cases := map[string]string{
		"+":  Add,
		"==": Equals,
		"in": In,
		">=": GreaterEquals,
	}
	for lexeme, want := range cases {
		got, ok := Find(lexeme)
		if !ok || got != want {
			t.Fatalf("Find(%q) = %q, %v; want %q, true", lexeme, got, ok, want)
		}
	}
}

func TestFindUnknownLexeme(t *testing.T) {
	if _, ok := Find("?"); ok {
		t.Fatal("expected '?' to not resolve through Find (handled structurally by the parser)")
	}
}
