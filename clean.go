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

package kanjidict

import (
	"github.com/ianlewis/go-kanjidict/internal/folding"
)

// CleanText returns the text content of a markup fragment. Every tag is
// replaced by a space, whitespace spans are folded into a single space and
// leading and trailing whitespace is removed.
func CleanText(s string) string {
	return folding.Clean(s)
}
