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

// Attributes is an insertion-ordered mapping from attribute name to
// attribute value. Keys are pre-lowercased identifiers. Writing the same
// key twice overwrites the value but keeps the key's original position, so
// a renderer replaying attributes in document order gets a stable result.
type Attributes struct {
	keys   []string
	values map[string]string
}

func newAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

func (a *Attributes) set(key, value string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (a *Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of distinct attribute keys.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the attribute names in first-insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Map returns a plain map snapshot of the attributes; order information is
// lost, which is fine for callers that only need membership/lookup.
func (a *Attributes) Map() map[string]string {
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// Equal reports whether a and other hold the same keys in the same order
// with the same values. It lets go-cmp compare *Attributes values without
// needing cmp.AllowUnexported.
func (a *Attributes) Equal(other *Attributes) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.keys) != len(other.keys) {
		return false
	}
	for i, k := range a.keys {
		if other.keys[i] != k {
			return false
		}
	}
	for k, v := range a.values {
		if other.values[k] != v {
			return false
		}
	}
	return true
}
