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

// Package dict implements reading and writing .dict files.
package dict

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-kanjidict/idx"
)

var (
	errInvalidType        = errors.New("invalid type")
	errInvalidData        = errors.New("invalid word data")
	errWordOffsetTooLarge = errors.New("word offset too large")
	errWordTooLarge       = errors.New("word too large")
)

// DataType is a type of data in a word. Lower case characters represent
// string-like data that is terminated by a null terminator ('\0'). Upper
// case characters represent file-like data that starts with a 32-bit size
// followed by file data.
type DataType byte

const (
	// UTFTextType is utf-8 text.
	UTFTextType = DataType('m')

	// LocaleTextType is text in a locale encoding.
	LocaleTextType = DataType('l')

	// PangoTextType is utf-8 text in the Pango text format.
	PangoTextType = DataType('g')

	// PhoneticType is utf-8 text representing an English phonetic string.
	PhoneticType = DataType('t')

	// XDXFType is utf-8 encoded xml in XDXF format.
	XDXFType = DataType('x')

	// YinBiaoOrKataType is utf-8 encoded Yin Biao or Kana phonetic string.
	YinBiaoOrKataType = DataType('y')

	// PowerWordType is a utf-8 encoded KingSoft PowerWord XML format.
	PowerWordType = DataType('p')

	// MediaWikiType is utf-8 encoded text in MediaWiki format.
	MediaWikiType = DataType('w')

	// HTMLType is utf-8 encoded HTML text.
	HTMLType = DataType('h')

	// WordNetType is WordNet data.
	WordNetType = DataType('n')

	// ResourceFileListType is a list of files in resource storage.
	ResourceFileListType = DataType('r')

	// WavType is .wav sound file data.
	WavType = DataType('W')

	// PictureType is image file data.
	PictureType = DataType('P')

	// ExperimentalType is reserved for experimental features.
	ExperimentalType = DataType('X')
)

func (t DataType) valid() bool {
	switch t {
	case UTFTextType,
		LocaleTextType,
		PangoTextType,
		PhoneticType,
		XDXFType,
		YinBiaoOrKataType,
		PowerWordType,
		MediaWikiType,
		HTMLType,
		WordNetType,
		ResourceFileListType,
		WavType,
		PictureType,
		ExperimentalType:
		return true
	default:
		return false
	}
}

func (t DataType) stringLike() bool {
	return 'a' <= t && t <= 'z'
}

// Data is a data entry in a Word.
type Data struct {
	Type DataType
	Data []byte
}

// String returns the data as plain text. HTML is converted to text. Types
// that are not text return the empty string.
func (d *Data) String() string {
	switch d.Type {
	case UTFTextType, PhoneticType, YinBiaoOrKataType:
		return string(d.Data)
	case HTMLType:
		return html2text.HTML2Text(string(d.Data))
	default:
		return ""
	}
}

// Word is a full dictionary entry.
type Word struct {
	Data []*Data
}

// Options are options for reading a .dict file.
type Options struct {
	// SameTypeSequence is the sametypesequence value from the .ifo file.
	SameTypeSequence []DataType
}

// Dict reads words from a .dict file.
type Dict struct {
	r                io.ReaderAt
	c                io.Closer
	sametypesequence []DataType
}

// New returns a new Dict reading from r. If r is also an [io.Closer] it is
// closed by Close.
func New(r io.ReaderAt, options *Options) (*Dict, error) {
	if options == nil {
		options = &Options{}
	}
	for _, t := range options.SameTypeSequence {
		if !t.valid() {
			return nil, fmt.Errorf("%w: %v", errInvalidType, t)
		}
	}

	d := &Dict{
		r:                r,
		sametypesequence: options.SameTypeSequence,
	}
	if c, ok := r.(io.Closer); ok {
		d.c = c
	}
	return d, nil
}

// Word retrieves the word for the given index entry.
func (d *Dict) Word(e *idx.Word) (*Word, error) {
	if e.Offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", errWordOffsetTooLarge, e.Offset)
	}
	b := make([]byte, e.Size)
	//nolint:gosec // offset size is bounds checked above.
	if _, err := d.r.ReadAt(b, int64(e.Offset)); err != nil && !(errors.Is(err, io.EOF) && len(b) == 0) {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	var w Word
	if len(d.sametypesequence) > 0 {
		for i, t := range d.sametypesequence {
			var data []byte
			var err error
			// The last string-like item is not terminated.
			data, b, err = next(t, b, i == len(d.sametypesequence)-1)
			if err != nil {
				return nil, err
			}
			w.Data = append(w.Data, &Data{Type: t, Data: data})
		}
		return &w, nil
	}

	for len(b) > 0 {
		t := DataType(b[0])
		var data []byte
		var err error
		data, b, err = next(t, b[1:], false)
		if err != nil {
			return nil, err
		}
		w.Data = append(w.Data, &Data{Type: t, Data: data})
	}
	return &w, nil
}

// next splits the data item of type t from the start of b and returns it
// with the remaining bytes.
func next(t DataType, b []byte, last bool) ([]byte, []byte, error) {
	if t.stringLike() {
		i := bytes.IndexByte(b, 0)
		if i < 0 || last {
			if i < 0 {
				i = len(b)
			}
			return b[:i], nil, nil
		}
		return b[:i], b[i+1:], nil
	}

	if len(b) < 4 {
		return nil, nil, fmt.Errorf("%w: short size", errInvalidData)
	}
	size := binary.BigEndian.Uint32(b)
	if uint64(len(b)-4) < uint64(size) {
		return nil, nil, fmt.Errorf("%w: size %d exceeds data", errInvalidData, size)
	}
	return b[4 : 4+size], b[4+size:], nil
}

// Close closes the underlying reader if it is closable.
func (d *Dict) Close() error {
	if d.c == nil {
		return nil
	}
	if err := d.c.Close(); err != nil {
		return fmt.Errorf("closing dict file: %w", err)
	}
	return nil
}

// Writer writes words to a .dict file. Words are written without type
// markers for use with a sametypesequence of a single string-like type.
type Writer struct {
	w      io.Writer
	offset uint64
}

// NewWriter returns a new Writer writing to w. The offsets it returns are
// offsets into the uncompressed data, so w may be a dictzip writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes the data for a single word and returns its index entry.
func (w *Writer) Write(word string, data []byte) (*idx.Word, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errWordTooLarge, len(data))
	}
	if _, err := w.w.Write(data); err != nil {
		return nil, fmt.Errorf("writing dictionary: %w", err)
	}
	e := &idx.Word{
		Word:   word,
		Offset: w.offset,
		//nolint:gosec // size is bounds checked above.
		Size: uint32(len(data)),
	}
	w.offset += uint64(len(data))
	return e, nil
}

// Size returns the number of uncompressed bytes written.
func (w *Writer) Size() uint64 {
	return w.offset
}
