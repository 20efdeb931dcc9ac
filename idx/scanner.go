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

package idx

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidIdxOffset indicates that the OffsetBits is an invalid value.
	ErrInvalidIdxOffset = errors.New("invalid idxoffsetbits")

	// ErrTruncated indicates that the index ended in the middle of a word.
	ErrTruncated = errors.New("truncated index")
)

// Word is an .idx file entry.
type Word struct {
	Word   string
	Offset uint64
	Size   uint32
}

// String implements [fmt.Stringer].
func (w *Word) String() string {
	return w.Word
}

// ScannerOptions are options for scanning an .idx file.
type ScannerOptions struct {
	// OffsetBits are the number of bits in the offset fields. Valid values for
	// OffsetBits are either 32 or 64.
	OffsetBits int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	OffsetBits: 32,
}

// Scanner scans an index from start to end.
type Scanner struct {
	s          *bufio.Scanner
	offsetSize int
}

// NewScanner returns a new index scanner that reads words from r.
func NewScanner(r io.Reader, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.OffsetBits != 32 && options.OffsetBits != 64 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdxOffset, options.OffsetBits)
	}

	s := &Scanner{
		s:          bufio.NewScanner(r),
		offsetSize: options.OffsetBits / 8,
	}
	s.s.Split(s.splitWord)
	return s, nil
}

// Scan advances the index to the next word. It returns false if the scan
// stops either by reaching the end of the index or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Word returns the most recent word read by Scan.
func (s *Scanner) Word() *Word {
	b := s.s.Bytes()
	i := bytes.IndexByte(b, 0)

	w := &Word{
		Word: string(b[:i]),
	}
	if s.offsetSize == 8 {
		w.Offset = binary.BigEndian.Uint64(b[i+1:])
	} else {
		w.Offset = uint64(binary.BigEndian.Uint32(b[i+1:]))
	}
	w.Size = binary.BigEndian.Uint32(b[i+1+s.offsetSize:])
	return w
}

// splitWord splits the index into words. Each token holds the title, its
// terminator, the offset and the size.
func (s *Scanner) splitWord(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		tokenSize := i + 1 + s.offsetSize + 4
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
