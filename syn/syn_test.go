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

package syn_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-kanjidict/syn"
)

// TestScanner tests the Scanner type.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []*syn.Word
		err      error
	}{
		{
			name: "empty",
		},
		{
			name: "multiple",
			data: []byte{
				0xe3, 0x81, 0x8d, 0, // き
				0, 0, 0, 5,
				'm', 'o', 'k', 'u', 0,
				0, 0, 0, 3,
			},
			expected: []*syn.Word{
				{Word: "き", OriginalWordIndex: 5},
				{Word: "moku", OriginalWordIndex: 3},
			},
		},
		{
			name: "truncated",
			data: []byte{'k', 'i', 0, 0, 0},
			err:  syn.ErrTruncated,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var words []*syn.Word
			s := syn.NewScanner(bytes.NewReader(test.data))
			for s.Scan() {
				words = append(words, s.Word())
			}
			if diff := cmp.Diff(test.err, s.Err(), cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, words); diff != "" {
				t.Fatalf("words (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	words := []*syn.Word{
		{Word: "き", OriginalWordIndex: 0},
		{Word: "はやし", OriginalWordIndex: 1},
	}

	var buf bytes.Buffer
	w := syn.NewWriter(&buf)
	for _, word := range words {
		if err := w.Write(word); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if want, got := 2, w.Count(); want != got {
		t.Errorf("Count; want: %d, got: %d", want, got)
	}

	var got []*syn.Word
	s := syn.NewScanner(&buf)
	for s.Scan() {
		got = append(got, s.Word())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if diff := cmp.Diff(words, got); diff != "" {
		t.Errorf("words (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(syn.ErrInvalidWord, w.Write(&syn.Word{}), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("Write (-want, +got):\n%s", diff)
	}
}
