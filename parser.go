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

	"github.com/Goodwine/triemap"
)

// Parser recognizes a single tag occurrence using a configurable pair of
// bracket characters and two feature flags. The zero value is usable except
// for OpeningCh/ClosingCh, which must be set; NewParser sets sensible
// defaults for the flags.
//
// A *Parser reuses an internal identifier-interning cache across calls to
// ParseTag, so it is NOT safe for concurrent use by multiple goroutines.
// Create one Parser per goroutine, or use the package-level ParseTag
// function, which builds a throwaway Parser per call and is always safe to
// call concurrently.
type Parser struct {
	// OpeningCh and ClosingCh bracket a tag, typically '[' and ']'. They
	// must be distinct, non-identifier characters.
	OpeningCh byte
	ClosingCh byte

	// AllowTagValueAttr controls whether [name=value ...] is accepted. When
	// false, [name=value] is a malformed tag; plain key=value attributes
	// remain allowed.
	AllowTagValueAttr bool

	// AllowSelfClosingTags controls whether a trailing '/' before the
	// closing bracket is accepted.
	AllowSelfClosingTags bool

	names triemap.RuneSliceMap
}

// NewParser returns a Parser configured for the given bracket pair with
// both AllowTagValueAttr and AllowSelfClosingTags enabled.
func NewParser(openingCh, closingCh byte) *Parser {
	return &Parser{
		OpeningCh:            openingCh,
		ClosingCh:            closingCh,
		AllowTagValueAttr:    true,
		AllowSelfClosingTags: true,
	}
}

// ParseTag parses a single tag occurrence using the default BBCode feature
// set (tag-value attributes and self-closing tags both enabled). It builds
// a fresh Parser for the call, so it is always safe to call from multiple
// goroutines.
func ParseTag(text string, offset int, openingCh, closingCh byte) (ParsedTag, error) {
	return NewParser(openingCh, closingCh).ParseTag(text, offset)
}

// ParseTag parses the tag at offset, which must point at p.OpeningCh (the
// caller is responsible for only calling it there; a document-level
// tokenizer finds that position by scanning for OpeningCh itself).
func (p *Parser) ParseTag(text string, offset int) (ParsedTag, error) {
	if offset >= len(text) {
		return ParsedTag{}, outOfInput(offset, "no input at offset")
	}
	offset++ // consume OpeningCh

	offset, err := SkipWhitespaces(text, offset)
	if err != nil {
		return ParsedTag{}, err
	}

	var isClosing bool
	if offset < len(text) && text[offset] == '/' {
		isClosing = true
		offset++
		offset, err = SkipWhitespaces(text, offset)
		if err != nil {
			return ParsedTag{}, err
		}
	}

	name, offset, err := p.getIdentifier(text, offset)
	if err != nil {
		return ParsedTag{}, err
	}
	if name == "" {
		return ParsedTag{}, malformedTag(offset, "empty tag name")
	}

	tag := ParsedTag{Name: name, IsClosing: isClosing, Attributes: newAttributes()}

	offset, err = SkipWhitespaces(text, offset)
	if err != nil {
		return ParsedTag{}, err
	}

	offset, done, err := p.afterName(text, offset, isClosing, &tag)
	if err != nil {
		return ParsedTag{}, err
	}
	if done {
		return tag, nil
	}

	for {
		offset, err = SkipWhitespaces(text, offset)
		if err != nil {
			return ParsedTag{}, err
		}
		if offset >= len(text) {
			return ParsedTag{}, outOfInput(offset, "unterminated tag")
		}

		switch ch := text[offset]; {
		case ch == p.ClosingCh:
			offset++
			tag.EndOffset = offset
			return tag, nil

		case ch == '/':
			offset, err = p.parseSelfClose(text, offset, isClosing)
			if err != nil {
				return ParsedTag{}, err
			}
			tag.IsSelfClosing = true
			tag.EndOffset = offset
			return tag, nil

		case isIdentifierChar(ch):
			offset, err = p.parseAttribute(text, offset, tag.Attributes)
			if err != nil {
				return ParsedTag{}, err
			}

		default:
			return ParsedTag{}, malformedTag(offset, "unexpected character in tag")
		}
	}
}

// afterName implements the decision point right after the tag name, the
// only place a tag-value attribute ([name=value]) may start. done is true
// once the tag has been fully consumed (closing bracket or self-close
// already seen).
func (p *Parser) afterName(text string, offset int, isClosing bool, tag *ParsedTag) (int, bool, error) {
	if offset >= len(text) {
		return offset, false, outOfInput(offset, "unterminated tag")
	}

	switch ch := text[offset]; {
	case ch == p.ClosingCh:
		offset++
		tag.EndOffset = offset
		return offset, true, nil

	case ch == '/':
		newOffset, err := p.parseSelfClose(text, offset, isClosing)
		if err != nil {
			return offset, false, err
		}
		tag.IsSelfClosing = true
		tag.EndOffset = newOffset
		return newOffset, true, nil

	case isClosing:
		// Closing tags may not carry arguments of any shape.
		return offset, false, malformedTag(offset, "closing tag cannot carry arguments")

	case ch == '=':
		if !p.AllowTagValueAttr {
			return offset, false, malformedTag(offset, "tag-value attribute not allowed")
		}
		offset++
		var err error
		offset, err = SkipWhitespaces(text, offset)
		if err != nil {
			return offset, false, err
		}
		value, newOffset, err := p.readValue(text, offset)
		if err != nil {
			return offset, false, err
		}
		tag.Attributes.set(tag.Name, value)
		return newOffset, false, nil

	case isIdentifierChar(ch):
		newOffset, err := p.parseAttribute(text, offset, tag.Attributes)
		if err != nil {
			return offset, false, err
		}
		return newOffset, false, nil

	default:
		return offset, false, malformedTag(offset, "unexpected character after tag name")
	}
}

// parseAttribute reads "key", "key=value", or a standalone attribute.
// offset must point at an identifier character.
func (p *Parser) parseAttribute(text string, offset int, attrs *Attributes) (int, error) {
	key, offset, err := p.getIdentifier(text, offset)
	if err != nil {
		return offset, err
	}
	if key == "" {
		return offset, malformedTag(offset, "empty attribute name")
	}

	offset, err = SkipWhitespaces(text, offset)
	if err != nil {
		return offset, err
	}

	if offset < len(text) && text[offset] == '=' {
		offset++
		offset, err = SkipWhitespaces(text, offset)
		if err != nil {
			return offset, err
		}
		value, newOffset, err := p.readValue(text, offset)
		if err != nil {
			return offset, err
		}
		attrs.set(key, value)
		return newOffset, nil
	}

	attrs.set(key, "")
	return offset, nil
}

// parseSelfClose consumes the trailing '/' + ws + closing bracket that
// marks a self-closing tag. offset must point at '/'.
func (p *Parser) parseSelfClose(text string, offset int, isClosing bool) (int, error) {
	if isClosing {
		return offset, malformedTag(offset, "closing tag cannot self-close")
	}
	if !p.AllowSelfClosingTags {
		return offset, malformedTag(offset, "self-closing tags not allowed")
	}
	offset++ // consume '/'
	offset, err := SkipWhitespaces(text, offset)
	if err != nil {
		return offset, err
	}
	if offset >= len(text) || text[offset] != p.ClosingCh {
		return offset, malformedTag(offset, "expected closing bracket after '/'")
	}
	offset++
	return offset, nil
}

// readValue reads a double-quoted, single-quoted, or unquoted attribute
// value starting at offset, which must already be past any whitespace
// following '='.
func (p *Parser) readValue(text string, offset int) (string, int, error) {
	if offset >= len(text) {
		return "", offset, outOfInput(offset, "unterminated value")
	}
	switch text[offset] {
	case '"', '\'':
		return p.readQuotedValue(text, offset)
	default:
		return p.readUnquotedValue(text, offset)
	}
}

func (p *Parser) readQuotedValue(text string, offset int) (string, int, error) {
	quote := text[offset]
	offset++ // consume opening quote

	var buf []byte
	for {
		if offset >= len(text) {
			return "", offset, outOfInput(offset, "unterminated quoted value")
		}
		ch := text[offset]
		if ch == quote {
			offset++
			break
		}
		if ch == '\\' {
			offset++
			if offset >= len(text) {
				return "", offset, outOfInput(offset, "dangling escape in quoted value")
			}
			escaped := text[offset]
			if escaped == quote {
				buf = append(buf, quote)
			} else {
				// Erroneous escape: preserved as-is, not an error.
				buf = append(buf, '\\', escaped)
			}
			offset++
			continue
		}
		buf = append(buf, ch)
		offset++
	}

	if offset >= len(text) {
		return "", offset, outOfInput(offset, "unterminated tag after quoted value")
	}
	if next := text[offset]; !isWhitespace(next) && next != '/' && next != p.ClosingCh {
		return "", offset, malformedTag(offset, "trailing garbage after quoted value")
	}

	value := strings.Trim(string(buf), Whitespace)
	return value, offset, nil
}

func (p *Parser) readUnquotedValue(text string, offset int) (string, int, error) {
	start := offset
	for {
		if offset >= len(text) {
			return "", offset, outOfInput(offset, "unterminated value")
		}
		ch := text[offset]
		if isWhitespace(ch) || ch == p.ClosingCh {
			break
		}
		if ch == p.OpeningCh {
			return "", offset, malformedTag(offset, "opening bracket inside unquoted value")
		}
		offset++
	}
	return text[start:offset], offset, nil
}

// getIdentifier wraps GetIdentifier with a per-parser cache of interned
// identifiers, keyed by the raw (pre-lowercase) runes just consumed, so
// tag and attribute names that recur many times across a document share
// one interned string. GetIdentifier still lowercases the identifier and
// the rune-slice key is still built on every call; only the returned
// string value is reused.
func (p *Parser) getIdentifier(text string, offset int) (string, int, error) {
	id, newOffset, err := GetIdentifier(text, offset)
	if err != nil || id == "" {
		return id, newOffset, err
	}
	raw := []rune(text[offset:newOffset])
	if cached, ok := p.names.Get(raw); ok {
		return cached.(string), newOffset, nil
	}
	p.names.Put(raw, id)
	return id, newOffset, nil
}
