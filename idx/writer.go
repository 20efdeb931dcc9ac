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

package idx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	// ErrInvalidWord indicates a word that cannot be stored in an index.
	ErrInvalidWord = errors.New("invalid word")

	// ErrOffsetTooLarge indicates an offset that does not fit in 32 bits.
	ErrOffsetTooLarge = errors.New("word offset too large")
)

// Writer writes words to an .idx file using 32 bit offsets.
type Writer struct {
	w     io.Writer
	size  int64
	count int
}

// NewWriter returns a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes a single word.
func (w *Writer) Write(word *Word) error {
	if word.Word == "" || strings.IndexByte(word.Word, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word.Word)
	}
	if word.Offset > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrOffsetTooLarge, word.Offset)
	}

	b := make([]byte, 0, len(word.Word)+9)
	b = append(b, word.Word...)
	b = append(b, 0)
	//nolint:gosec // offset size is bounds checked above.
	b = binary.BigEndian.AppendUint32(b, uint32(word.Offset))
	b = binary.BigEndian.AppendUint32(b, word.Size)

	n, err := w.w.Write(b)
	w.size += int64(n)
	if err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	w.count++
	return nil
}

// Size returns the number of bytes written.
func (w *Writer) Size() int64 {
	return w.size
}

// Count returns the number of words written.
func (w *Writer) Count() int {
	return w.count
}
