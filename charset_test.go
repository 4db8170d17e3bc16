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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharsetConstants(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := strings.IndexByte(Whitespace, byte(b)) >= 0
		assert.Equalf(t, want, isWhitespace(byte(b)), "byte %d whitespace membership", b)

		want = strings.IndexByte(Identifier, byte(b)) >= 0
		assert.Equalf(t, want, isIdentifierChar(byte(b)), "byte %d identifier membership", b)
	}
}

func TestCharsetsAreDisjointFromBrackets(t *testing.T) {
	assert.False(t, isIdentifierChar('['))
	assert.False(t, isIdentifierChar(']'))
	assert.False(t, isWhitespace('['))
	assert.False(t, isWhitespace(']'))
}
