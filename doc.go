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

// Package kanjidict implements a parser for exported kanji glossary pages.
//
// The input is a single XHTML-like document where every dictionary entry is
// rendered as a run of styled spans and separated from the next entry by an
// empty paragraph:
//
//	<p class="bor"></p>
//
// The markup carries no semantic element names. Fields are recognized by
// the style class of the span that holds them:
//
//  1. textStyle47a: the entry number.
//  2. textStyle49: the grade level (e.g. L12).
//  3. textStyle48: the head character, with the entry id attribute.
//  4. textStyle46: the reading.
//  5. textStyle47: the English meaning.
//  6. textStyle44: stroke counts, example meanings, etymology and mnemonic
//     text.
//  7. textStyle41 and textStyle43: example words and their readings.
//
// Parse splits the document into entry blocks and extracts one [Entry] per
// block. Serializers for the parsed entries live in the stardict and export
// packages.
package kanjidict
