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

package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ianlewis/go-kanjidict"
	"github.com/ianlewis/go-kanjidict/images"
)

//go:embed flashcards.schema.json
var flashcardSchema string

const flashcardSchemaURL = "flashcards.schema.json"

var compileFlashcardSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(flashcardSchemaURL, strings.NewReader(flashcardSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(flashcardSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// FlashcardExample is an example word on a flashcard.
type FlashcardExample struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`
}

// Flashcard is the flashcard form of an entry.
type Flashcard struct {
	Character       string             `json:"character"`
	Kana            string             `json:"kana"`
	Meaning         string             `json:"meaning"`
	Level           string             `json:"level"`
	StrokeCount     string             `json:"stroke_count"`
	Number          string             `json:"number"`
	Examples        []FlashcardExample `json:"examples"`
	Etymology       string             `json:"etymology"`
	Mnemonic        string             `json:"mnemonic"`
	ImageReferences []string           `json:"image_references"`
	ID              string             `json:"id"`
}

// NewFlashcard returns the flashcard for an entry.
func NewFlashcard(e *kanjidict.Entry) *Flashcard {
	examples := make([]FlashcardExample, 0, len(e.Examples()))
	for _, ex := range e.Examples() {
		examples = append(examples, FlashcardExample{
			Word:    ex.Word,
			Reading: ex.Reading,
			Meaning: ex.Meaning,
		})
	}

	return &Flashcard{
		Character:       e.Kanji(),
		Kana:            e.Reading(),
		Meaning:         e.Meaning(),
		Level:           e.Level(),
		StrokeCount:     e.Strokes(),
		Number:          e.Number(),
		Examples:        examples,
		Etymology:       e.Etymology(),
		Mnemonic:        e.Mnemonic(),
		ImageReferences: images.RewriteAll(e.Images()),
		ID:              e.ID(),
	}
}

// WriteFlashcards writes the entries as an indented JSON array of
// flashcards. The output is validated against the flashcard schema before
// anything is written.
func WriteFlashcards(w io.Writer, entries []*kanjidict.Entry) error {
	cards := make([]*Flashcard, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, NewFlashcard(e))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("encoding flashcards: %w", err)
	}

	if err := ValidateFlashcards(buf.Bytes()); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing flashcards: %w", err)
	}
	return nil
}

// ValidateFlashcards validates JSON data against the flashcard schema.
func ValidateFlashcards(data []byte) error {
	schema, err := compileFlashcardSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal flashcards: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("flashcards do not match schema: %w", err)
	}
	return nil
}
