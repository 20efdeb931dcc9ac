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
	"regexp"
	"strings"

	"github.com/ianlewis/go-kanjidict/internal/folding"
)

// headMarker identifies a block as a dictionary entry.
const headMarker = "textStyle48"

const mnemonicLabel = "Mnemonic"

var (
	separatorRegex = regexp.MustCompile(`\s*<p class="bor"></p>\s*`)
	imageRegex     = regexp.MustCompile(`<img[^>]*src="([^"]*)"[^>]*>`)

	numberRegex  = regexp.MustCompile(`<span class="textStyle47a">(\d+)</span>`)
	levelRegex   = regexp.MustCompile(`<span class="textStyle49">(L\d+)</span>`)
	headRegex    = regexp.MustCompile(`<span class="textStyle48"[^>]*id="([^"]+)">([^<]+)</span>`)
	readingRegex = regexp.MustCompile(`<span class="textStyle46">([^<]+)</span>`)
	meaningRegex = regexp.MustCompile(`<span class="textStyle47">([^<]+)</span>`)
	strokesRegex = regexp.MustCompile(`(?i)<span class="textStyle44">(\d+)[\s\p{Zs}]*strokes?</span>`)

	exampleWordRegex    = regexp.MustCompile(`<span class="textStyle41">([^<]+)</span>`)
	exampleReadingRegex = regexp.MustCompile(`<span class="textStyle43">([^<]+)</span>`)
	textRegex           = regexp.MustCompile(`<span class="textStyle44">([^<]+)</span>`)

	mnemonicRegex = regexp.MustCompile(`<span class="textStyle45">Mnemonic:</span> <span class="textStyle44">([^<]+)</span>`)
)

// etymologySignals are substrings of which at least one must appear on the
// first line of an etymology section.
var etymologySignals = []string{"OBI", "Originally", "Seal", "References:"}

// Stats are counts collected while parsing a document.
type Stats struct {
	// Blocks is the number of non-empty segments between separators.
	Blocks int

	// Skipped is the number of segments without a head character marker.
	Skipped int

	// Rejected is the number of entry blocks that had no head character.
	Rejected int

	// Entries is the number of entries returned.
	Entries int
}

// Parse parses the document and returns its entries in document order.
// Blocks that are not entries, or entries without a head character, are
// skipped and counted in the returned Stats.
func Parse(doc string) ([]*Entry, Stats) {
	var stats Stats
	var entries []*Entry
	for _, block := range splitBlocks(doc, &stats) {
		e, ok := parseBlock(block)
		if !ok {
			stats.Rejected++
			continue
		}
		entries = append(entries, e)
	}
	stats.Entries = len(entries)
	return entries, stats
}

// splitBlocks splits the document on entry separators and returns the
// trimmed segments that contain a head character marker.
func splitBlocks(doc string, stats *Stats) []string {
	var blocks []string
	for _, seg := range separatorRegex.Split(doc, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		stats.Blocks++
		if !strings.Contains(seg, headMarker) {
			stats.Skipped++
			continue
		}
		blocks = append(blocks, seg)
	}
	return blocks
}

// parseState is the state of the line scanner within a block.
type parseState int

const (
	// stateScanning is the default state.
	stateScanning parseState = iota

	// stateEtymology is entered by an etymology start line and left by a
	// mnemonic line or the end of the block.
	stateEtymology
)

// blockParser extracts the fields of a single entry block.
type blockParser struct {
	b     *entryBuilder
	state parseState

	// etymology holds the cleaned text of the open etymology section.
	etymology []string
}

// parseBlock parses a single entry block. It returns false if the block has
// no head character.
func parseBlock(block string) (*Entry, bool) {
	p := &blockParser{
		b: newEntryBuilder(block),
	}

	// Images are collected from the whole block since an image tag can share
	// a line with any other field.
	for _, m := range imageRegex.FindAllStringSubmatch(block, -1) {
		p.b.addImage(m[1])
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.parseLine(line)
	}
	p.finish()

	return p.b.build()
}

// parseLine classifies a single trimmed line. The first classifier that
// matches consumes the line, except for the end of an etymology section,
// which still lets the line through to the mnemonic classifier.
func (p *blockParser) parseLine(line string) {
	if m := numberRegex.FindStringSubmatch(line); m != nil {
		p.b.setNumber(m[1])
		return
	}
	if m := levelRegex.FindStringSubmatch(line); m != nil {
		p.b.setLevel(m[1])
		return
	}
	if m := headRegex.FindStringSubmatch(line); m != nil {
		p.b.setHead(m[1], m[2])
		return
	}
	if m := readingRegex.FindStringSubmatch(line); m != nil {
		p.b.setReading(m[1])
		return
	}
	if m := meaningRegex.FindStringSubmatch(line); m != nil {
		p.b.setMeaning(m[1])
		return
	}
	if m := strokesRegex.FindStringSubmatch(line); m != nil {
		p.b.setStrokes(m[1])
		return
	}
	if strings.Contains(line, "textStyle41") && strings.Contains(line, "textStyle43") {
		p.parseExample(line)
		return
	}

	hasMnemonic := strings.Contains(line, mnemonicLabel)
	hasText := strings.Contains(line, "textStyle44")

	if isEtymologyStart(line, hasText, hasMnemonic) {
		p.state = stateEtymology
		p.etymology = []string{CleanText(line)}
		return
	}

	if p.state == stateEtymology {
		if hasText && !hasMnemonic {
			p.etymology = append(p.etymology, CleanText(line))
			return
		}
		if hasMnemonic {
			p.commitEtymology()
			// Falls through to the mnemonic classifier.
		}
	}

	if hasMnemonic {
		p.parseMnemonic(line)
	}
}

// finish commits an etymology section left open at the end of the block.
func (p *blockParser) finish() {
	if p.state == stateEtymology && strings.Join(p.etymology, " ") != "" {
		p.commitEtymology()
	}
}

func (p *blockParser) commitEtymology() {
	p.b.setEtymology(folding.Whitespace(strings.Join(p.etymology, " ")))
	p.state = stateScanning
	p.etymology = nil
}

func isEtymologyStart(line string, hasText, hasMnemonic bool) bool {
	if !hasText || hasMnemonic || !strings.Contains(line, "indent2") {
		return false
	}
	for _, s := range etymologySignals {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// parseExample adds an example if the line has a word, a reading and a
// meaning. Only the first of each is used.
func (p *blockParser) parseExample(line string) {
	word := exampleWordRegex.FindStringSubmatch(line)
	reading := exampleReadingRegex.FindStringSubmatch(line)
	meaning := textRegex.FindStringSubmatch(line)
	if word == nil || reading == nil || meaning == nil {
		return
	}
	p.b.addExample(Example{
		Word:    word[1],
		Reading: reading[1],
		Meaning: meaning[1],
	})
}

// parseMnemonic sets the mnemonic from a line of the form
//
//	<span class="textStyle45">Mnemonic:</span> <span class="textStyle44">TEXT</span>
//
// or, failing that, from the last text span on the line.
func (p *blockParser) parseMnemonic(line string) {
	var text string
	if m := mnemonicRegex.FindStringSubmatch(line); m != nil {
		text = m[1]
	} else if all := textRegex.FindAllStringSubmatch(line, -1); len(all) > 0 {
		text = all[len(all)-1][1]
	}

	text = strings.TrimSpace(text)
	if text != "" {
		p.b.setMnemonic(text)
	}
}
