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
	"bytes"

	"golang.org/x/text/transform"
)

// TagFolder replaces every markup tag with a single ASCII space. A tag is a
// '<' followed by one or more bytes other than '>' and a closing '>'. An
// unterminated '<' and the empty "<>" are left as text.
//
// TagFolder does not decode character references.
type TagFolder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (TagFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		i := bytes.IndexByte(src[nSrc:], '<')
		if i != 0 {
			if i < 0 {
				i = len(src) - nSrc
			}
			n := copy(dst[nDst:], src[nSrc:nSrc+i])
			nDst += n
			nSrc += n
			if n < i {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}

		// src[nSrc] is '<'. Look for the end of the tag.
		j := bytes.IndexByte(src[nSrc+1:], '>')
		if j < 0 && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if j <= 0 {
			dst[nDst] = '<'
			nDst++
			nSrc++
			continue
		}
		dst[nDst] = ' '
		nDst++
		nSrc += j + 2
	}

	return nDst, nSrc, nil
}
