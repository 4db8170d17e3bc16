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
)

// benchCorpus repeats a handful of representative tags many times, the way
// a real document mixes plain opening tags, attributed tags, and
// self-closing tags.
func benchCorpus(repeats int) string {
	var b strings.Builder
	tags := []string{
		"[b]", "[/b]", `[quote author="Ada Lovelace"]`, "[/quote]",
		"[img=http://example.com/cat.png/]", "[hr/]",
	}
	for i := 0; i < repeats; i++ {
		b.WriteString(tags[i%len(tags)])
	}
	return b.String()
}

func BenchmarkParseTagFreshParser(b *testing.B) {
	corpus := benchCorpus(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := 0
		for offset < len(corpus) {
			tag, err := ParseTag(corpus, offset, '[', ']')
			if err != nil {
				b.Fatal(err)
			}
			offset = tag.EndOffset
		}
	}
}

func BenchmarkParseTagReusedParser(b *testing.B) {
	corpus := benchCorpus(1000)
	p := NewParser('[', ']')
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := 0
		for offset < len(corpus) {
			tag, err := p.ParseTag(corpus, offset)
			if err != nil {
				b.Fatal(err)
			}
			offset = tag.EndOffset
		}
	}
}
