// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package skcode

// Whitespace lists the ASCII whitespace characters recognized by
// SkipWhitespaces: space, tab, newline, carriage return, vertical tab, and
// form feed. It is character-level only; there is no locale folding.
const Whitespace = " \t\n\r\v\f"

// Identifier lists the ASCII characters that may appear in a tag name or
// attribute key: ASCII letters, digits, underscore, and asterisk.
const Identifier = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789_*"

var whitespaceCharset = buildCharset(Whitespace)
var identifierCharset = buildCharset(Identifier)

func buildCharset(chars string) [256]bool {
	var set [256]bool
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = true
	}
	return set
}

func isWhitespace(b byte) bool {
	return whitespaceCharset[b]
}

func isIdentifierChar(b byte) bool {
	return identifierCharset[b]
}
