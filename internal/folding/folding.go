// Copyright 2026 Ian Lewis
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

// Package folding implements text folding transformers for markup and index
// keys.
package folding

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Whitespace folds whitespace spans in s into single spaces and trims it.
func Whitespace(s string) string {
	out, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		// Only reachable on transformer errors other than short buffers,
		// which transform.String handles.
		return strings.Join(strings.Fields(s), " ")
	}
	return out
}

// Clean replaces the tags in s with spaces and folds the resulting
// whitespace.
func Clean(s string) string {
	out, _, err := transform.String(TagFolder{}, s)
	if err != nil {
		return Whitespace(s)
	}
	return Whitespace(out)
}

// Key returns a transformer suitable for folding dictionary index keys. It
// performs Unicode case folding followed by whitespace folding.
func Key() transform.Transformer {
	return transform.Chain(cases.Fold(), &WhitespaceFolder{})
}

// FoldKey folds s with the Key transformer.
func FoldKey(s string) string {
	out, _, err := transform.String(Key(), s)
	if err != nil {
		return Whitespace(strings.ToLower(s))
	}
	return out
}
