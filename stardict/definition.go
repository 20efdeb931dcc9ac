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
	"strings"

	"github.com/ianlewis/go-kanjidict"
	"github.com/ianlewis/go-kanjidict/images"
)

// Definition returns the dictionary article text for an entry. Every line
// ends with a newline.
func Definition(e *kanjidict.Entry) string {
	var lines []string
	field := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	lines = append(lines, "<b>"+e.Kanji()+"</b>")
	field("Reading", e.Reading())
	field("Meaning", e.Meaning())
	field("Strokes", e.Strokes())
	field("Level", e.Level())
	field("Number", e.Number())

	if examples := e.Examples(); len(examples) > 0 {
		lines = append(lines, "\nExamples:")
		for _, ex := range examples {
			lines = append(lines, "  • "+ex.String())
		}
	}

	if e.Etymology() != "" {
		lines = append(lines, "\nEtymology: "+e.Etymology())
	}
	if e.Mnemonic() != "" {
		lines = append(lines, "\nMnemonic: "+e.Mnemonic())
	}

	if imgs := e.Images(); len(imgs) > 0 {
		lines = append(lines, "\nImages:")
		for _, img := range imgs {
			lines = append(lines, "  [Image: "+images.Rewrite(img)+"]")
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
