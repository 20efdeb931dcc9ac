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
	"slices"
	"strings"
)

// Example is an example word using the entry's head character.
type Example struct {
	Word    string
	Reading string
	Meaning string
}

// String returns the example as "word [reading] - meaning".
func (e Example) String() string {
	return e.Word + " [" + e.Reading + "] - " + e.Meaning
}

// Entry is a parsed dictionary entry. Entries are read-only once returned by
// Parse.
type Entry struct {
	id        string
	number    string
	level     string
	kanji     string
	reading   string
	meaning   string
	strokes   string
	examples  []Example
	etymology string
	mnemonic  string
	images    []string
	raw       string
}

// ID returns the identifier attached to the head character, or the empty
// string if the markup had none.
func (e *Entry) ID() string {
	return e.id
}

// Number returns the entry's display number.
func (e *Entry) Number() string {
	return e.number
}

// Level returns the grade level (e.g. "L12").
func (e *Entry) Level() string {
	return e.level
}

// Kanji returns the head character(s) of the entry.
func (e *Entry) Kanji() string {
	return e.kanji
}

// Reading returns the reading of the head character.
func (e *Entry) Reading() string {
	return e.reading
}

// Meaning returns the short English meaning.
func (e *Entry) Meaning() string {
	return e.meaning
}

// Strokes returns the stroke count digits.
func (e *Entry) Strokes() string {
	return e.strokes
}

// Examples returns a copy of the entry's examples in document order.
func (e *Entry) Examples() []Example {
	return slices.Clone(e.examples)
}

// Etymology returns the etymology text.
func (e *Entry) Etymology() string {
	return e.etymology
}

// Mnemonic returns the mnemonic text.
func (e *Entry) Mnemonic() string {
	return e.mnemonic
}

// Images returns a copy of the raw image paths in the order they appear in
// the block. Paths may repeat.
func (e *Entry) Images() []string {
	return slices.Clone(e.images)
}

// Raw returns the unmodified block the entry was parsed from.
func (e *Entry) Raw() string {
	return e.raw
}

// String returns a short human readable form of the entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.kanji)
	if e.reading != "" {
		b.WriteString(" [" + e.reading + "]")
	}
	if e.meaning != "" {
		b.WriteString(" " + e.meaning)
	}
	return b.String()
}

// entryBuilder accumulates fields for a single block. It is owned by one
// call to parseBlock and discarded after build.
type entryBuilder struct {
	e Entry
}

func newEntryBuilder(raw string) *entryBuilder {
	return &entryBuilder{
		e: Entry{
			raw: raw,
		},
	}
}

func (b *entryBuilder) setNumber(s string) {
	b.e.number = s
}

func (b *entryBuilder) setLevel(s string) {
	b.e.level = s
}

func (b *entryBuilder) setHead(id, kanji string) {
	b.e.id = id
	b.e.kanji = kanji
}

func (b *entryBuilder) setReading(s string) {
	b.e.reading = s
}

func (b *entryBuilder) setMeaning(s string) {
	b.e.meaning = s
}

func (b *entryBuilder) setStrokes(s string) {
	b.e.strokes = s
}

func (b *entryBuilder) addExample(ex Example) {
	b.e.examples = append(b.e.examples, ex)
}

func (b *entryBuilder) setEtymology(s string) {
	b.e.etymology = s
}

func (b *entryBuilder) setMnemonic(s string) {
	b.e.mnemonic = s
}

func (b *entryBuilder) addImage(path string) {
	b.e.images = append(b.e.images, path)
}

// build returns the finished entry. It returns false if the entry has no head
// character and must be discarded.
func (b *entryBuilder) build() (*Entry, bool) {
	if b.e.kanji == "" {
		return nil, false
	}
	e := b.e
	b.e = Entry{}
	return &e, true
}
