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

// Package skcode implements the core tag lexer for a BBCode-style markup
// language: given a source string and an offset pointing at an opening
// bracket, it recognizes one tag occurrence — opening, closing, or
// self-closing — and returns its name, flags, and attributes.
//
// The package does not build a document tree, does not know which tag
// names are valid, and does not walk a whole document; it is the single
// building block a document-level tokenizer calls at every bracket it
// encounters. See ParseTag.
package skcode
