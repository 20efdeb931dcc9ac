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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kanjidict/stardict"
)

func lookupCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Look up a word in an exported StarDict dictionary",
		ArgsUsage: "DIR|IFO WORD",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "prefix",
				Usage:   "match words starting with WORD",
				Aliases: []string{"p"},
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: expected DIR|IFO and WORD", ErrFlagParse)
			}
			path, word := c.Args().Get(0), c.Args().Get(1)

			ifoPath, err := resolveIfo(path)
			if err != nil {
				return err
			}

			d, err := stardict.Open(ifoPath)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrKanjidict, err)
			}
			defer d.Close()

			lookup := d.Lookup
			if c.Bool("prefix") {
				lookup = d.LookupPrefix
			}
			articles, err := lookup(word)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrKanjidict, err)
			}
			e.log.Debug("lookup", "dictionary", d.Bookname(), "word", word, "results", len(articles))
			if len(articles) == 0 {
				return fmt.Errorf("%w: %q", ErrNotFound, word)
			}

			for i, a := range articles {
				if i > 0 {
					fmt.Fprintln(c.App.Writer)
				}
				printArticle(c.App.Writer, a)
			}
			return nil
		},
	}
}

// resolveIfo returns the .ifo path for a dictionary directory or file.
func resolveIfo(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKanjidict, err)
	}
	if fi.IsDir() {
		return filepath.Join(path, stardict.BaseName+".ifo"), nil
	}
	return path, nil
}

// printArticle prints the article as plain text. Each line is rendered on
// its own so line breaks are kept.
func printArticle(w io.Writer, a *stardict.Article) {
	text := strings.TrimSuffix(a.String(), "\n")
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(w, html2text.HTML2Text(line))
	}
}
