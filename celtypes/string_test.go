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

import "testing"

func TestStringSizeCountsCodePoints(t *testing.T) {
	got := String("πέντε").Size()
	n, ok := got.(Int)
	if !ok || n != 5 {
		t.Fatalf("size('πέντε') should be 5 code points, got %#v", got)
	}
}

func TestStringMatchesRE2(t *testing.T) {
	b, ok := String("hello123").Matches(String(`^[a-z]+[0-9]+$`)).(Bool)
	if !ok || !bool(b) {
		t.Fatal("expected RE2 pattern to match")
	}
}

func TestBytesToStringRejectsInvalidUTF8(t *testing.T) {
	b := Bytes([]byte{0xff, 0xfe})
	e, ok := MaybeErr(b.ConvertToType(StringType))
	if !ok || e.Kind != ErrInvalidUTF8 {
		t.Fatalf("want invalid_UTF8 error, got %#v", b.ConvertToType(StringType))
	}
}

func TestStringToIntConversionError(t *testing.T) {
	e, ok := MaybeErr(String("not-a-number").ConvertToType(IntType))
	if !ok || e.Kind != ErrConversion {
		t.Fatalf("want conversion error, got %#v", e)
	}
}
