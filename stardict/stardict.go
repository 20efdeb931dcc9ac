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

// Package stardict writes glossary entries as a StarDict dictionary and
// reads exported dictionaries back for lookups.
package stardict

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-kanjidict/dict"
	"github.com/ianlewis/go-kanjidict/idx"
	"github.com/ianlewis/go-kanjidict/ifo"
	"github.com/ianlewis/go-kanjidict/internal/folding"
	"github.com/ianlewis/go-kanjidict/internal/index"
	"github.com/ianlewis/go-kanjidict/syn"
)

var (
	errBadExtension = errors.New("bad extension")
	errBadMagic     = errors.New("bad magic data")
	errInvalidValue = errors.New("invalid value")
	errIdxFileSize  = errors.New("index size mismatch")
	errMissingDict  = errors.New("no dict file found")
	errMissingName  = errors.New("missing bookname")
	errSynIndex     = errors.New("synonym index out of range")
)

// Stardict is a StarDict dictionary opened for lookups.
type Stardict struct {
	ifoPath string

	version          string
	bookname         string
	wordcount        int64
	synwordcount     int64
	idxfilesize      int64
	idxoffsetbits    int64
	author           string
	description      string
	date             string
	sametypesequence []dict.DataType

	words []*idx.Word
	index *index.Index[*idx.Word]
	syn   *index.Index[*syn.Word]
	dict  *dict.Dict
}

// Open opens a StarDict dictionary from the given .ifo file path. The .idx
// and optional .syn files are read into memory and the .dict or .dict.dz
// file is kept open until Close.
func Open(path string) (*Stardict, error) {
	s := &Stardict{
		ifoPath:       path,
		idxoffsetbits: 32,
	}

	ifoExt := filepath.Ext(s.ifoPath)
	if ifoExt != ".ifo" && ifoExt != ".IFO" {
		return nil, fmt.Errorf("%w: %v", errBadExtension, ifoExt)
	}

	if err := s.readIfo(); err != nil {
		return nil, err
	}
	if err := s.readIdx(); err != nil {
		return nil, err
	}
	if err := s.readSyn(); err != nil {
		return nil, err
	}
	if err := s.openDict(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stardict) readIfo() error {
	f, err := os.Open(s.ifoPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", s.ifoPath, err)
	}
	defer f.Close()

	info, err := ifo.New(f)
	if err != nil {
		return fmt.Errorf("reading %q: %w", s.ifoPath, err)
	}

	if info.Magic() != ifo.DefaultMagic {
		return fmt.Errorf("%w: %q", errBadMagic, s.ifoPath)
	}

	s.version = info.Value("version")
	switch s.version {
	case "2.4.2":
	case "3.0.0":
	default:
		return fmt.Errorf("%w: version %v", errInvalidValue, s.version)
	}

	s.bookname = info.Value("bookname")
	if s.bookname == "" {
		return errMissingName
	}

	s.wordcount, err = strconv.ParseInt(info.Value("wordcount"), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: wordcount: %w", errInvalidValue, err)
	}

	s.idxfilesize, err = strconv.ParseInt(info.Value("idxfilesize"), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: idxfilesize: %w", errInvalidValue, err)
	}

	if v := info.Value("synwordcount"); v != "" {
		s.synwordcount, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: synwordcount: %w", errInvalidValue, err)
		}
	}

	if bits := info.Value("idxoffsetbits"); bits != "" && s.version == "3.0.0" {
		s.idxoffsetbits, err = strconv.ParseInt(bits, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: idxoffsetbits: %w", errInvalidValue, err)
		}
	}

	for _, r := range info.Value("sametypesequence") {
		s.sametypesequence = append(s.sametypesequence, dict.DataType(r))
	}

	s.author = info.Value("author")
	s.description = info.Value("description")
	s.date = info.Value("date")
	return nil
}

func (s *Stardict) baseName() string {
	return strings.TrimSuffix(s.ifoPath, filepath.Ext(s.ifoPath))
}

func (s *Stardict) readIdx() error {
	idxPath := s.baseName() + ".idx"
	b, err := os.ReadFile(idxPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", idxPath, err)
	}
	if int64(len(b)) != s.idxfilesize {
		return fmt.Errorf("%w: %q is %d bytes, idxfilesize is %d", errIdxFileSize, idxPath, len(b), s.idxfilesize)
	}

	sc, err := idx.NewScanner(bytes.NewReader(b), &idx.ScannerOptions{
		OffsetBits: int(s.idxoffsetbits),
	})
	if err != nil {
		return fmt.Errorf("reading %q: %w", idxPath, err)
	}
	for sc.Scan() {
		s.words = append(s.words, sc.Word())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", idxPath, err)
	}

	s.index = index.New(s.words, folding.FoldKey)
	return nil
}

func (s *Stardict) readSyn() error {
	synPath := s.baseName() + ".syn"
	f, err := os.Open(synPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %q: %w", synPath, err)
	}
	defer f.Close()

	var words []*syn.Word
	sc := syn.NewScanner(f)
	for sc.Scan() {
		w := sc.Word()
		if int(w.OriginalWordIndex) >= len(s.words) {
			return fmt.Errorf("%w: %q points at %d", errSynIndex, w.Word, w.OriginalWordIndex)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", synPath, err)
	}

	s.syn = index.New(words, folding.FoldKey)
	return nil
}

func (s *Stardict) openDict() error {
	base := s.baseName()
	for _, ext := range []string{".dict.dz", ".dict", ".DICT.dz", ".DICT", ".DICT.DZ"} {
		path := base + ext
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("opening %q: %w", path, err)
		}

		var r io.ReaderAt = f
		if strings.EqualFold(filepath.Ext(path), ".dz") {
			z, err := dictzip.NewReader(f)
			if err != nil {
				f.Close()
				return fmt.Errorf("reading %q: %w", path, err)
			}
			r = &zipFile{Reader: z, f: f}
		}

		d, err := dict.New(r, &dict.Options{SameTypeSequence: s.sametypesequence})
		if err != nil {
			f.Close()
			return fmt.Errorf("reading %q: %w", path, err)
		}
		s.dict = d
		return nil
	}
	return fmt.Errorf("%w: %q", errMissingDict, base)
}

// zipFile closes the file underneath a dictzip reader.
type zipFile struct {
	*dictzip.Reader
	f *os.File
}

func (z *zipFile) Close() error {
	//nolint:wrapcheck // wrapped by dict.Close
	return z.f.Close()
}

// Bookname returns the dictionary name.
func (s *Stardict) Bookname() string {
	return s.bookname
}

// Description returns the dictionary description.
func (s *Stardict) Description() string {
	return s.description
}

// Author returns the dictionary author.
func (s *Stardict) Author() string {
	return s.author
}

// Date returns the dictionary creation date.
func (s *Stardict) Date() string {
	return s.date
}

// WordCount returns the dictionary word count.
func (s *Stardict) WordCount() int64 {
	return s.wordcount
}

// SynWordCount returns the number of synonyms declared in the .ifo file.
func (s *Stardict) SynWordCount() int64 {
	return s.synwordcount
}

// Version returns the dictionary format version.
func (s *Stardict) Version() string {
	return s.version
}

// Words returns the index entries in file order.
func (s *Stardict) Words() []*idx.Word {
	return append([]*idx.Word(nil), s.words...)
}

// Article is a dictionary entry read back from the .dict file.
type Article struct {
	Word string
	Data []*dict.Data
}

// String returns the text of every data item.
func (a *Article) String() string {
	var parts []string
	for _, d := range a.Data {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "\n")
}

// Lookup returns the articles whose head word or synonym matches query after
// case and whitespace folding.
func (s *Stardict) Lookup(query string) ([]*Article, error) {
	words := s.index.Search(query)
	if s.syn != nil {
		words = s.resolve(words, s.syn.Search(query))
	}
	return s.articles(words)
}

// LookupPrefix returns the articles whose folded head word or synonym starts
// with the folded query.
func (s *Stardict) LookupPrefix(query string) ([]*Article, error) {
	words := s.index.Prefix(query)
	if s.syn != nil {
		words = s.resolve(words, s.syn.Prefix(query))
	}
	return s.articles(words)
}

// resolve appends the index entries that synonyms point at to words, skipping
// entries already present.
func (s *Stardict) resolve(words []*idx.Word, synonyms []*syn.Word) []*idx.Word {
	seen := make(map[*idx.Word]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	for _, sw := range synonyms {
		w := s.words[sw.OriginalWordIndex]
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

func (s *Stardict) articles(words []*idx.Word) ([]*Article, error) {
	var articles []*Article
	for _, w := range words {
		word, err := s.dict.Word(w)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", w.Word, err)
		}
		articles = append(articles, &Article{
			Word: w.Word,
			Data: word.Data,
		})
	}
	return articles, nil
}

// Close closes the .dict file.
func (s *Stardict) Close() error {
	//nolint:wrapcheck // dict.Close wraps its error.
	return s.dict.Close()
}
