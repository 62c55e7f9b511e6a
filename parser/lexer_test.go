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

package parser

import (
	"testing"

	"github.com/cloud-custodian/cel-go-core/celtypes"
	"github.com/cloud-custodian/cel-go-core/common/errors"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	errs := errors.NewErrors()
	lx := newLexer(src, errs)
	toks := lx.tokens()
	if !errs.Empty() {
		t.Fatalf("unexpected lex errors for %q: %v", src, errs.Error())
	}
	return toks
}

func TestLexNumberLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind tokenKind
		want celtypes.Value
	}{
		{"42", tokIntLit, celtypes.Int(42)},
		{"42u", tokUintLit, celtypes.Uint(42)},
		{"0x2A", tokIntLit, celtypes.Int(42)},
		{"0x2Au", tokUintLit, celtypes.Uint(42)},
		{"3.14", tokDoubleLit, celtypes.Double(3.14)},
		{"1e10", tokDoubleLit, celtypes.Double(1e10)},
	}
	for _, tc := range cases {
		toks := lexAll(t, tc.src)
		if len(toks) < 1 || toks[0].kind != tc.kind {
			t.Fatalf("lex(%q): got kind %v, want %v", tc.src, toks[0].kind, tc.kind)
		}
		if eq, ok := toks[0].value.Equal(tc.want).(celtypes.Bool); !ok || !bool(eq) {
			t.Fatalf("lex(%q): got value %#v, want %#v", tc.src, toks[0].value, tc.want)
		}
	}
}

func TestLexStringEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"a\nb"`, "a\nb"},
		{`"\x41"`, "A"},
		{`"\101"`, "A"},
		{`"é"`, "é"},
		{`'''triple
quoted'''`, "triple\nquoted"},
	}
	for _, tc := range cases {
		toks := lexAll(t, tc.src)
		if toks[0].kind != tokStringLit {
			t.Fatalf("lex(%q): expected string literal, got kind %v", tc.src, toks[0].kind)
		}
		if toks[0].text != tc.want {
			t.Fatalf("lex(%q): got %q, want %q", tc.src, toks[0].text, tc.want)
		}
	}
}

func TestLexRawStringSkipsEscapes(t *testing.T) {
	toks := lexAll(t, `r"a\nb"`)
	if toks[0].text != `a\nb` {
		t.Fatalf("raw string should not decode escapes, got %q", toks[0].text)
	}
}

func TestLexByteStringRejectsUnicodeEscape(t *testing.T) {
	errs := errors.NewErrors()
	lx := newLexer(`b"\U000000e9"`, errs)
	lx.tokens()
	if errs.Empty() {
		t.Fatal("expected error for unicode escape in byte literal")
	}
}

func TestLexKeywordsAreBoolAndNullLits(t *testing.T) {
	toks := lexAll(t, "true false null")
	if toks[0].kind != tokBoolLit || toks[0].value != celtypes.True {
		t.Fatalf("expected true literal, got %#v", toks[0])
	}
	if toks[1].kind != tokBoolLit || toks[1].value != celtypes.False {
		t.Fatalf("expected false literal, got %#v", toks[1])
	}
	if toks[2].kind != tokNullLit {
		t.Fatalf("expected null literal, got %#v", toks[2])
	}
}

func TestLexLineComment(t *testing.T) {
	toks := lexAll(t, "1 + 2 // trailing comment\n")
	// 1, +, 2, EOF
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(toks), toks)
	}
}
