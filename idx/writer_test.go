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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, word := range []*Word{
		{Word: "木", Offset: 0, Size: 50},
		{Word: "林", Offset: 50, Size: 70},
	} {
		if err := w.Write(word); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	expected := []byte{
		0xe6, 0x9c, 0xa8, 0,
		0, 0, 0, 0,
		0, 0, 0, 50,
		0xe6, 0x9e, 0x97, 0,
		0, 0, 0, 50,
		0, 0, 0, 70,
	}
	if diff := cmp.Diff(expected, buf.Bytes()); diff != "" {
		t.Errorf("index (-want, +got):\n%s", diff)
	}
	if want, got := int64(len(expected)), w.Size(); want != got {
		t.Errorf("Size; want: %d, got: %d", want, got)
	}
	if want, got := 2, w.Count(); want != got {
		t.Errorf("Count; want: %d, got: %d", want, got)
	}

	// The written index reads back with the default options.
	s, err := NewScanner(&buf, nil)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	var words []string
	for s.Scan() {
		words = append(words, s.Word().Word)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if diff := cmp.Diff([]string{"木", "林"}, words); diff != "" {
		t.Errorf("words (-want, +got):\n%s", diff)
	}
}

func TestWriter_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word *Word
		err  error
	}{
		{
			name: "empty word",
			word: &Word{},
			err:  ErrInvalidWord,
		},
		{
			name: "null byte",
			word: &Word{Word: "a\x00b"},
			err:  ErrInvalidWord,
		},
		{
			name: "offset too large",
			word: &Word{Word: "a", Offset: 1 << 32},
			err:  ErrOffsetTooLarge,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w := NewWriter(&buf)
			err := w.Write(test.word)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Write (-want, +got):\n%s", diff)
			}
			if buf.Len() != 0 || w.Size() != 0 || w.Count() != 0 {
				t.Fatalf("unexpected output: %d bytes", buf.Len())
			}
		})
	}
}
