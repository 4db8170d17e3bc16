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

import "strings"

// SkipWhitespaces advances offset past a run of characters in Whitespace.
// If the character at the initial offset is not whitespace, offset is
// returned unchanged and no error occurs. If the scan runs off the end of
// text while still inside a whitespace run, it fails with ErrOutOfInput.
func SkipWhitespaces(text string, offset int) (int, error) {
	if offset >= len(text) {
		return offset, outOfInput(offset, "no input remaining")
	}
	if !isWhitespace(text[offset]) {
		return offset, nil
	}
	for offset < len(text) && isWhitespace(text[offset]) {
		offset++
	}
	if offset >= len(text) {
		return offset, outOfInput(offset, "unterminated whitespace run")
	}
	return offset, nil
}

// GetIdentifier consumes the longest prefix of text starting at offset
// whose characters all lie in Identifier, returning it ASCII-lowercased
// along with the offset just past it.
//
// If the character at offset is not an identifier character, GetIdentifier
// returns the empty string and offset unchanged, with no error; callers
// that require a non-empty identifier treat that as a malformed tag. If the
// scan reaches the end of text before a terminating non-identifier
// character is seen, GetIdentifier fails with ErrOutOfInput.
func GetIdentifier(text string, offset int) (string, int, error) {
	start := offset
	for offset < len(text) && isIdentifierChar(text[offset]) {
		offset++
	}
	if offset >= len(text) {
		return "", start, outOfInput(offset, "unterminated identifier")
	}
	if offset == start {
		return "", offset, nil
	}
	return strings.ToLower(text[start:offset]), offset, nil
}
