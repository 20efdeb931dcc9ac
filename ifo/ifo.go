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

// Package ifo implements reading and writing .ifo files.
package ifo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultMagic is the first line of every StarDict .ifo file.
const DefaultMagic = "StarDict's dict ifo file"

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9-_]+$")

var (
	errMissingVersion = errors.New("missing version")
	errInvalidKey     = errors.New("invalid key")
	errInvalidLine    = errors.New("invalid line")
	errInvalidValue   = errors.New("invalid value")
)

// Ifo is the dictionary metadata in an .ifo file. Keys keep the order in
// which they were read or set.
type Ifo struct {
	magic    string
	keys     []string
	metadata map[string]string
}

// New reads a dictionary info object from r.
func New(r io.Reader) (*Ifo, error) {
	i := &Ifo{
		metadata: map[string]string{},
	}

	s := bufio.NewScanner(r)
	if s.Scan() {
		i.magic = s.Text()
	}

	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, err := readKV(line)
		if err != nil {
			return nil, err
		}
		if len(i.keys) == 0 && key != "version" {
			return nil, errMissingVersion
		}
		if err := i.Set(key, value); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading ifo: %w", err)
	}
	if len(i.keys) == 0 {
		return nil, errMissingVersion
	}

	return i, nil
}

// NewBuilder returns an empty Ifo with the StarDict magic line and the given
// version. Values are added with Set.
func NewBuilder(version string) *Ifo {
	i := &Ifo{
		magic:    DefaultMagic,
		metadata: map[string]string{},
	}
	i.keys = append(i.keys, "version")
	i.metadata["version"] = version
	return i
}

func readKV(line string) (string, string, error) {
	k, v, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", errInvalidLine, line)
	}
	key := strings.TrimRight(k, " ")
	if !keyRegex.MatchString(key) {
		return "", "", fmt.Errorf("%w: %q", errInvalidKey, key)
	}
	return key, strings.TrimLeft(v, " "), nil
}

// Magic returns the first line of the file.
func (i *Ifo) Magic() string {
	return i.magic
}

// Value returns the value for key or the empty string.
func (i *Ifo) Value(key string) string {
	return i.metadata[key]
}

// Keys returns the keys in file order.
func (i *Ifo) Keys() []string {
	return append([]string(nil), i.keys...)
}

// Set sets the value for key. A new key is appended after existing keys.
func (i *Ifo) Set(key, value string) error {
	if !keyRegex.MatchString(key) {
		return fmt.Errorf("%w: %q", errInvalidKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s contains a line break", errInvalidValue, key)
	}
	if _, ok := i.metadata[key]; !ok {
		i.keys = append(i.keys, key)
	}
	i.metadata[key] = value
	return nil
}

// WriteTo writes the ifo file contents to w. Every line, including the
// last, ends with a newline.
func (i *Ifo) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString(i.magic)
	b.WriteByte('\n')
	for _, k := range i.keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(i.metadata[k])
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), fmt.Errorf("writing ifo: %w", err)
	}
	return int64(n), nil
}
