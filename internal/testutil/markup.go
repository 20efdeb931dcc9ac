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

// Package testutil contains helpers for building glossary markup in tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Separator is the empty paragraph between entries.
const Separator = `<p class="bor"></p>`

func span(class, text string) string {
	return `<span class="` + class + `">` + text + `</span>`
}

// Number returns an entry number span.
func Number(n string) string {
	return span("textStyle47a", n)
}

// Level returns a grade level span.
func Level(l string) string {
	return span("textStyle49", l)
}

// Head returns a head character span with the given id.
func Head(id, kanji string) string {
	return `<span class="textStyle48" id="` + id + `">` + kanji + `</span>`
}

// Reading returns a reading span.
func Reading(r string) string {
	return span("textStyle46", r)
}

// Meaning returns a meaning span.
func Meaning(m string) string {
	return span("textStyle47", m)
}

// Strokes returns a stroke count span.
func Strokes(n string) string {
	return span("textStyle44", n+" strokes")
}

// Text returns a text span.
func Text(s string) string {
	return span("textStyle44", s)
}

// ExampleLine returns an example paragraph.
func ExampleLine(word, reading, meaning string) string {
	return `<p class="indent1">` + span("textStyle41", word) + span("textStyle43", reading) + " " + span("textStyle44", meaning) + `</p>`
}

// EtymologyLine returns an indented text paragraph.
func EtymologyLine(text string) string {
	return `<p class="indent2">` + span("textStyle44", text) + `</p>`
}

// MnemonicLine returns a mnemonic paragraph in the labeled form.
func MnemonicLine(text string) string {
	return `<p class="indent2">` + span("textStyle45", "Mnemonic:") + " " + span("textStyle44", text) + `</p>`
}

// Image returns an image tag.
func Image(src string) string {
	return `<img class="frame" src="` + src + `" alt=""/>`
}

// Block joins lines into an entry block.
func Block(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Document returns a document with the given blocks between separators and
// a preamble and postamble that are not entries.
func Document(blocks ...string) string {
	var b strings.Builder
	b.WriteString("<html>\n<body>\n<p class=\"title\">Kanji</p>\n")
	for _, block := range blocks {
		b.WriteString(Separator + "\n")
		b.WriteString(block + "\n")
	}
	b.WriteString(Separator + "\n")
	b.WriteString("<p class=\"footer\">End</p>\n</body>\n</html>\n")
	return b.String()
}

// WriteFile writes data to name under a new temporary directory and returns
// the file's path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
