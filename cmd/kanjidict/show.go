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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kanjidict"
)

func showCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a summary of the entries in a glossary document",
		ArgsUsage: "[INPUT]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Usage:   "print at most `N` entries (0 prints all)",
				Aliases: []string{"n"},
			},
		},
		Action: func(c *cli.Context) error {
			input := e.cfg.Input
			if c.NArg() > 1 {
				return fmt.Errorf("%w: expected at most one input", ErrFlagParse)
			}
			if c.NArg() == 1 {
				input = c.Args().First()
			}
			if input == "" {
				return fmt.Errorf("%w: no input", ErrFlagParse)
			}
			if c.Int("limit") < 0 {
				return fmt.Errorf("%w: negative limit", ErrFlagParse)
			}

			entries, err := readEntries(input, e.log)
			if err != nil {
				return err
			}
			printEntries(c.App.Writer, entries, c.Int("limit"))
			return nil
		},
	}
}

// printEntries prints a table of entries. A limit of zero prints all of
// them.
func printEntries(w io.Writer, entries []*kanjidict.Entry, limit int) {
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	tbl := table.New("ID", "Kanji", "Reading", "Meaning", "Level", "Number", "Strokes", "Examples", "Images")
	tbl.WithWriter(w)
	for _, e := range entries {
		tbl.AddRow(
			e.ID(),
			e.Kanji(),
			e.Reading(),
			e.Meaning(),
			e.Level(),
			e.Number(),
			e.Strokes(),
			len(e.Examples()),
			len(e.Images()),
		)
	}
	tbl.Print()
}
