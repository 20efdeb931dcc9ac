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

package folding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/transform"
)

func TestWhitespaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   []byte
		dst   []byte
		atEOF bool

		expected []byte
		nDst     int
		nSrc     int
		err      error
	}{
		{
			name:  "leading whitespace",
			src:   []byte(" \t　木"),
			dst:   make([]byte, 5),
			atEOF: true,

			expected: []byte{0xe6, 0x9c, 0xa8, 0, 0},
			nDst:     3,
			nSrc:     8,
		},
		{
			name:  "trailing whitespace",
			src:   []byte("tree \t　"),
			dst:   make([]byte, 5),
			atEOF: true,

			expected: []byte{'t', 'r', 'e', 'e', 0},
			nDst:     4,
			nSrc:     9,
		},
		{
			name:  "whitespace spans",
			src:   []byte("foo \t　 bar \n baz"),
			dst:   make([]byte, 12),
			atEOF: true,

			expected: []byte("foo bar baz\x00"),
			nDst:     11,
			nSrc:     18,
		},
		{
			name:  "short dst",
			src:   []byte(" \t　 foo \t　 bar"),
			dst:   make([]byte, 3),
			atEOF: true,

			expected: []byte("foo"),
			nDst:     3,
			nSrc:     15,
			err:      transform.ErrShortDst,
		},
		{
			name: "short src incomplete rune",
			// NOTE: the last rune is only partially included.
			src:   []byte(" foo 　")[:6],
			dst:   make([]byte, 10),
			atEOF: false,

			expected: []byte{'f', 'o', 'o', 0, 0, 0, 0, 0, 0, 0},
			nDst:     3,
			nSrc:     5,
			err:      transform.ErrShortSrc,
		},
		{
			name: "incomplete rune at EOF",
			src:  []byte(" foo 　")[:6],
			dst:  make([]byte, 10),
			// NOTE: []byte{0xef, 0xbf, 0xbd} is utf8.RuneError.
			atEOF: true,

			expected: []byte{'f', 'o', 'o', ' ', 0xef, 0xbf, 0xbd, 0, 0, 0},
			nDst:     7,
			nSrc:     6,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			w := WhitespaceFolder{}
			nDst, nSrc, err := w.Transform(test.dst, test.src, test.atEOF)
			if diff := cmp.Diff(test.nDst, nDst); diff != "" {
				t.Fatalf("nDst (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.nSrc, nSrc); diff != "" {
				t.Fatalf("nSrc (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("err (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, test.dst); diff != "" {
				t.Fatalf("dst (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "  a  tree  ",
			expected: "a tree",
		},
		{
			name:     "spans",
			input:    `<p class="indent2"><span class="textStyle44">Originally a   picture</span> <span class="textStyle44">of a tree.</span></p>`,
			expected: "Originally a picture of a tree.",
		},
		{
			name:     "adjacent tags separate words",
			input:    "a<br/>b",
			expected: "a b",
		},
		{
			name:     "unterminated tag",
			input:    "1 < 2",
			expected: "1 < 2",
		},
		{
			name:     "empty tag",
			input:    "a <> b",
			expected: "a <> b",
		},
		{
			name:     "nested open brackets",
			input:    "x <<b>y",
			expected: "x y",
		},
		{
			name:     "ideographic space",
			input:    "<span>木</span>　<span>き</span>",
			expected: "木 き",
		},
		{
			name:     "long tag",
			input:    "a<span title=\"" + strings.Repeat("x", 1000) + "\">b</span>",
			expected: "a b",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Clean(test.input)); diff != "" {
				t.Fatalf("Clean (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	got, _, err := transform.String(Key(), "  Grüßen  Tree ")
	if err != nil {
		t.Fatalf("transform.String: %v", err)
	}
	if diff := cmp.Diff("grüssen tree", got); diff != "" {
		t.Fatalf("Key (-want, +got):\n%s", diff)
	}
}

func TestFoldKey(t *testing.T) {
	t.Parallel()

	for query, expected := range map[string]string{
		"木":         "木",
		" TREE\tbark": "tree bark",
		"":          "",
	} {
		if diff := cmp.Diff(expected, FoldKey(query)); diff != "" {
			t.Errorf("FoldKey(%q) (-want, +got):\n%s", query, diff)
		}
	}
}
