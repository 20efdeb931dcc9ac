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

package stardict

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-kanjidict"
	"github.com/ianlewis/go-kanjidict/dict"
	"github.com/ianlewis/go-kanjidict/idx"
	"github.com/ianlewis/go-kanjidict/ifo"
	"github.com/ianlewis/go-kanjidict/syn"
)

// BaseName is the file name, without extension, of the exported files.
const BaseName = "dictionary"

// Version is the .ifo version written by Write.
const Version = "2.4.2"

// Articles are plain utf-8 text.
const sameTypeSequence = "m"

// Default metadata values.
const (
	DefaultBookname    = "Japanese Dictionary"
	DefaultAuthor      = "Parser"
	DefaultDescription = "Japanese dictionary with images"
)

// Options configure Write.
type Options struct {
	Bookname    string
	Author      string
	Description string

	// DictZip writes a dictzip compressed .dict.dz file instead of .dict.
	DictZip bool

	// SortIndex orders the index the way StarDict readers expect for binary
	// search. Otherwise index order is entry order.
	SortIndex bool

	// Synonyms writes a .syn file mapping each reading of an entry to its
	// index entry.
	Synonyms bool

	// Now returns the time used for the date field. nil means time.Now.
	Now func() time.Time

	// Logger is used for diagnostics. nil means slog.Default().
	Logger *slog.Logger
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Bookname == "" {
		out.Bookname = DefaultBookname
	}
	if out.Author == "" {
		out.Author = DefaultAuthor
	}
	if out.Description == "" {
		out.Description = DefaultDescription
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}

// Result describes the files written by Write.
type Result struct {
	IfoPath  string
	IdxPath  string
	DictPath string

	// SynPath is empty unless synonyms were written.
	SynPath string

	WordCount    int
	SynWordCount int
	IdxFileSize  int64
}

// Write writes entries as a StarDict dictionary into dir, creating it if
// needed. Entries without a head character are skipped.
func Write(dir string, entries []*kanjidict.Entry, opts *Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %q: %w", dir, err)
	}

	r := &Result{
		IfoPath:  filepath.Join(dir, BaseName+".ifo"),
		IdxPath:  filepath.Join(dir, BaseName+".idx"),
		DictPath: filepath.Join(dir, BaseName+".dict"),
	}
	if opts.DictZip {
		r.DictPath += ".dz"
	}

	words, heads, err := writeDict(r.DictPath, entries, opts)
	if err != nil {
		return nil, err
	}
	if opts.SortIndex {
		slices.SortStableFunc(words, func(a, b *idx.Word) int {
			return compareWords(a.Word, b.Word)
		})
	}

	var buf bytes.Buffer
	w := idx.NewWriter(&buf)
	for _, word := range words {
		if err := w.Write(word); err != nil {
			return nil, fmt.Errorf("indexing %q: %w", word.Word, err)
		}
	}
	if err := os.WriteFile(r.IdxPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing %q: %w", r.IdxPath, err)
	}
	r.WordCount = w.Count()
	r.IdxFileSize = w.Size()

	if opts.Synonyms {
		r.SynPath = filepath.Join(dir, BaseName+".syn")
		r.SynWordCount, err = writeSyn(r.SynPath, words, heads, opts)
		if err != nil {
			return nil, err
		}
	}

	info, err := newIfo(r, opts)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(r.IfoPath)
	if err != nil {
		return nil, fmt.Errorf("writing %q: %w", r.IfoPath, err)
	}
	defer f.Close()
	if _, err := info.WriteTo(f); err != nil {
		return nil, fmt.Errorf("writing %q: %w", r.IfoPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing %q: %w", r.IfoPath, err)
	}

	opts.Logger.Debug("wrote dictionary",
		"dir", dir,
		"words", r.WordCount,
		"synonyms", r.SynWordCount,
		"idxfilesize", r.IdxFileSize,
		"dictzip", opts.DictZip,
	)
	return r, nil
}

// writeDict writes the definitions of entries to path and returns their
// index entries in entry order along with the entry each one was written
// from.
func writeDict(
	path string,
	entries []*kanjidict.Entry,
	opts *Options,
) ([]*idx.Word, map[*idx.Word]*kanjidict.Entry, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("writing %q: %w", path, err)
	}
	defer f.Close()

	var out io.Writer = f
	var z *dictzip.Writer
	if opts.DictZip {
		z, err = dictzip.NewWriter(f)
		if err != nil {
			return nil, nil, fmt.Errorf("writing %q: %w", path, err)
		}
		out = z
	}

	d := dict.NewWriter(out)
	var words []*idx.Word
	heads := make(map[*idx.Word]*kanjidict.Entry, len(entries))
	for _, e := range entries {
		if e.Kanji() == "" {
			opts.Logger.Debug("skipping entry without head character", "id", e.ID())
			continue
		}
		word, err := d.Write(e.Kanji(), []byte(Definition(e)))
		if err != nil {
			return nil, nil, fmt.Errorf("writing %q: %w", path, err)
		}
		words = append(words, word)
		heads[word] = e
	}

	if z != nil {
		if err := z.Close(); err != nil {
			return nil, nil, fmt.Errorf("writing %q: %w", path, err)
		}
	}
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return nil, nil, fmt.Errorf("writing %q: %w", path, err)
	}
	return words, heads, nil
}

// writeSyn writes the readings of each word's entry to path. words is in
// final index order.
func writeSyn(
	path string,
	words []*idx.Word,
	heads map[*idx.Word]*kanjidict.Entry,
	opts *Options,
) (int, error) {
	var synonyms []*syn.Word
	for i, word := range words {
		for _, r := range Readings(heads[word]) {
			synonyms = append(synonyms, &syn.Word{
				Word:              r,
				OriginalWordIndex: uint32(i), //nolint:gosec // index size is bounded by idxfilesize.
			})
		}
	}
	if opts.SortIndex {
		slices.SortStableFunc(synonyms, func(a, b *syn.Word) int {
			return compareWords(a.Word, b.Word)
		})
	}

	var buf bytes.Buffer
	w := syn.NewWriter(&buf)
	for _, s := range synonyms {
		if err := w.Write(s); err != nil {
			return 0, fmt.Errorf("writing %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}
	return w.Count(), nil
}

// Readings splits the reading field of e into distinct readings. Readings
// equal to the head character are dropped.
func Readings(e *kanjidict.Entry) []string {
	fields := strings.FieldsFunc(e.Reading(), func(r rune) bool {
		switch r {
		case '、', ',', '，', ';', '；':
			return true
		}
		return false
	})

	var readings []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == e.Kanji() || slices.Contains(readings, f) {
			continue
		}
		readings = append(readings, f)
	}
	return readings
}

func newIfo(r *Result, opts *Options) (*ifo.Ifo, error) {
	info := ifo.NewBuilder(Version)
	for _, kv := range [][2]string{
		{"bookname", opts.Bookname},
		{"wordcount", strconv.Itoa(r.WordCount)},
		{"synwordcount", strconv.Itoa(r.SynWordCount)},
		{"idxfilesize", strconv.FormatInt(r.IdxFileSize, 10)},
		{"author", opts.Author},
		{"description", opts.Description},
		{"date", opts.Now().UTC().Format(time.DateOnly)},
		{"sametypesequence", sameTypeSequence},
	} {
		if err := info.Set(kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("dictionary info: %w", err)
		}
	}
	return info, nil
}

// compareWords orders words by ASCII case-insensitive comparison and then
// by bytes, as g_ascii_strcasecmp followed by strcmp.
func compareWords(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := asciiLower(a[i]), asciiLower(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
