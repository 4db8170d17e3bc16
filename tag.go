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

// ParsedTag is the structural record produced by a successful call to
// ParseTag. It is owned by the caller and has no mutable state after
// return.
type ParsedTag struct {
	// Name is the tag's identifier, always lowercased, always non-empty.
	Name string

	// IsClosing is true for the [/name ...] shape. Mutually exclusive with
	// IsSelfClosing.
	IsClosing bool

	// IsSelfClosing is true for the [name ... /] shape. Mutually exclusive
	// with IsClosing.
	IsSelfClosing bool

	// Attributes holds every key=value and standalone attribute seen,
	// including the tag-value attribute stored under the tag's own Name.
	// Always empty when IsClosing is true.
	Attributes *Attributes

	// EndOffset is the position immediately past the closing bracket.
	EndOffset int
}
