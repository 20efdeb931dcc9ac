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

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-kanjidict"
)

// WriteTSV writes a header row and one row per entry. The header is always
// followed by a newline and the last row is not terminated.
func WriteTSV(w io.Writer, entries []*kanjidict.Entry) error {
	var b strings.Builder
	writeTSVRow(&b, Columns)
	b.WriteByte('\n')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeTSVRow(&b, Row(e))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing tsv: %w", err)
	}
	return nil
}

func writeTSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(Quote(f))
	}
}

// Quote returns field quoted for a TSV cell. Fields containing a tab,
// carriage return or newline are wrapped in double quotes with inner double
// quotes doubled. Other fields are returned as is.
func Quote(field string) string {
	if !strings.ContainsAny(field, "\t\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
