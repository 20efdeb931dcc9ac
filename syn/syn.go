// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package syn implements reading and writing .syn synonym files. Each
// synonym points at a word by its position in the .idx file.
package syn

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInvalidWord indicates a synonym that cannot be stored.
	ErrInvalidWord = errors.New("invalid synonym")

	// ErrTruncated indicates that the file ended in the middle of a synonym.
	ErrTruncated = errors.New("truncated synonym file")
)

// Word is a .syn file entry.
type Word struct {
	// Word is the synonym word.
	Word string

	// OriginalWordIndex is the index into the .idx index.
	OriginalWordIndex uint32
}

// String implements [fmt.Stringer].
func (w *Word) String() string {
	return w.Word
}

// Scanner scans a synonym file from start to end.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a new synonym scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Split(splitWord)
	return s
}

// Scan advances to the next synonym. It returns false if the scan stops
// either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Word returns the most recent synonym read by Scan.
func (s *Scanner) Word() *Word {
	b := s.s.Bytes()
	i := bytes.IndexByte(b, 0)
	return &Word{
		Word:              string(b[:i]),
		OriginalWordIndex: binary.BigEndian.Uint32(b[i+1:]),
	}
}

// splitWord splits the file into the word, its terminator and the 32 bit
// original word index.
func splitWord(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		tokenSize := i + 5
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}
	if atEOF {
		return 0, nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data))
	}

	// Request more data.
	return 0, nil, nil
}

// Writer writes synonyms to a .syn file.
type Writer struct {
	w     io.Writer
	count int
}

// NewWriter returns a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes a single synonym.
func (w *Writer) Write(word *Word) error {
	if word.Word == "" || strings.IndexByte(word.Word, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word.Word)
	}

	b := make([]byte, 0, len(word.Word)+5)
	b = append(b, word.Word...)
	b = append(b, 0)
	b = binary.BigEndian.AppendUint32(b, word.OriginalWordIndex)
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("writing synonyms: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of synonyms written.
func (w *Writer) Count() int {
	return w.count
}
