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

// Package export writes glossary entries as tables and flashcards.
package export

import (
	"strings"

	"github.com/ianlewis/go-kanjidict"
	"github.com/ianlewis/go-kanjidict/images"
)

// Columns are the table column names in order.
var Columns = []string{
	"Kanji",
	"Reading",
	"Meaning",
	"Level",
	"Number",
	"Strokes",
	"Examples",
	"Etymology",
	"Mnemonic",
	"Images",
}

// listSep joins examples and images in a single cell.
const listSep = "; "

// Row returns the table cells for an entry in Columns order.
func Row(e *kanjidict.Entry) []string {
	examples := e.Examples()
	exs := make([]string, 0, len(examples))
	for _, ex := range examples {
		exs = append(exs, ex.String())
	}

	return []string{
		e.Kanji(),
		e.Reading(),
		e.Meaning(),
		e.Level(),
		e.Number(),
		e.Strokes(),
		strings.Join(exs, listSep),
		e.Etymology(),
		e.Mnemonic(),
		strings.Join(images.RewriteAll(e.Images()), listSep),
	}
}
