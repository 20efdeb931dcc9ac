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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		offsetBits int

		expected []*Word
		err      error
	}{
		{
			name:       "empty",
			data:       nil,
			offsetBits: 32,
		},
		{
			name: "multi 32 bit",
			data: []byte{
				0xe6, 0x9c, 0xa8, 0, // 木
				0, 0, 0, 0,
				0, 0, 0, 50,
				0xe6, 0x9e, 0x97, 0, // 林
				0, 0, 0, 50,
				0, 0, 0, 70,
			},
			offsetBits: 32,
			expected: []*Word{
				{Word: "木", Offset: 0, Size: 50},
				{Word: "林", Offset: 50, Size: 70},
			},
		},
		{
			name: "single 64 bit",
			data: []byte{
				'h', 'o', 'g', 'e', 0,
				0, 0, 0, 1, 0, 0, 0, 0,
				0, 0, 1, 200,
			},
			offsetBits: 64,
			expected: []*Word{
				{Word: "hoge", Offset: 1 << 32, Size: 456},
			},
		},
		{
			name: "truncated",
			data: []byte{
				'h', 'o', 'g', 'e', 0,
				0, 0, 0, 1,
			},
			offsetBits: 32,
			err:        ErrTruncated,
		},
		{
			name:       "bad offset bits",
			offsetBits: 16,
			err:        ErrInvalidIdxOffset,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewScanner(bytes.NewReader(test.data), &ScannerOptions{
				OffsetBits: test.offsetBits,
			})
			if err != nil {
				if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
					t.Fatalf("NewScanner (-want, +got):\n%s", diff)
				}
				return
			}

			var words []*Word
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
