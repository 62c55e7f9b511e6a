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

// Package parser implements the lexer and recursive-descent parser for
// the CEL grammar (spec.md §4.1), including parser-level macro lowering.
package parser

import "github.com/cloud-custodian/cel-go-core/celtypes"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokIntLit
	tokUintLit
	tokDoubleLit
	tokStringLit
	tokBytesLit
	tokBoolLit
	tokNullLit
	tokPunct
)

// token is a single lexed unit with its source position and, for literal
// kinds, its already-decoded CEL value.
type token struct {
	kind   tokenKind
	text   string
	value  celtypes.Value // set for tokIntLit..tokNullLit
	line   int
	column int
}

// punctuation/operator lexemes the lexer recognizes, longest first so
// the scanner can greedily match.
var punctuators = []string{
	"<=", ">=", "==", "!=", "&&", "||",
	"(", ")", "[", "]", "{", "}", ",", ".", ":", "?", "+", "-", "*", "/", "%",
	"<", ">", "!", "=",
}

