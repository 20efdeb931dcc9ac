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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-kanjidict"
	"github.com/ianlewis/go-kanjidict/export"
	"github.com/ianlewis/go-kanjidict/images"
	"github.com/ianlewis/go-kanjidict/internal/config"
	"github.com/ianlewis/go-kanjidict/stardict"
)

func convertCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a glossary document to all output formats",
		ArgsUsage: "[INPUT]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Usage:   "write files with base path `BASE`",
				Aliases: []string{"o"},
			},
			&cli.BoolFlag{
				Name:  "dictzip",
				Usage: "compress the StarDict .dict file with dictzip",
			},
			&cli.BoolFlag{
				Name:  "sort-index",
				Usage: "sort the StarDict index for binary search",
			},
			&cli.BoolFlag{
				Name:  "synonyms",
				Usage: "write readings to a StarDict .syn file",
			},
			&cli.BoolFlag{
				Name:  "xlsx",
				Usage: "also write an XLSX workbook",
			},
			&cli.BoolFlag{
				Name:  "inline-images",
				Usage: "write base64 encoded images to BASE.images.json",
			},
			&cli.BoolFlag{
				Name:  "copy-images",
				Usage: "copy images next to the output files",
			},
			&cli.StringFlag{
				Name:  "image-root",
				Usage: "resolve relative image paths against `DIR`",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := *e.cfg
			if c.NArg() > 1 {
				return fmt.Errorf("%w: expected at most one input", ErrFlagParse)
			}
			if c.NArg() == 1 {
				cfg.Input = c.Args().First()
			}
			if cfg.Input == "" {
				return fmt.Errorf("%w: no input", ErrFlagParse)
			}
			if c.IsSet("out") {
				cfg.Output = c.String("out")
			}
			if c.IsSet("dictzip") {
				cfg.StarDict.DictZip = c.Bool("dictzip")
			}
			if c.IsSet("sort-index") {
				cfg.StarDict.SortIndex = c.Bool("sort-index")
			}
			if c.IsSet("synonyms") {
				cfg.StarDict.Synonyms = c.Bool("synonyms")
			}
			if c.IsSet("xlsx") {
				cfg.XLSX = c.Bool("xlsx")
			}
			if c.IsSet("inline-images") {
				cfg.Images.Inline = c.Bool("inline-images")
			}
			if c.IsSet("copy-images") {
				cfg.Images.Copy = c.Bool("copy-images")
			}
			if c.IsSet("image-root") {
				cfg.Images.Root = c.String("image-root")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}

			return convert(c.Context, &cfg, e.log)
		},
	}
}

// readEntries reads and parses the glossary document at path.
func readEntries(path string, log *slog.Logger) ([]*kanjidict.Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading input: %w", ErrKanjidict, err)
	}

	entries, stats := kanjidict.Parse(string(b))
	log.Info("parsed entries",
		"input", path,
		"entries", stats.Entries,
		"blocks", stats.Blocks,
		"skipped", stats.Skipped,
		"rejected", stats.Rejected,
	)
	return entries, nil
}

// convert writes every configured artifact for cfg.Input.
func convert(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	entries, err := readEntries(cfg.Input, log)
	if err != nil {
		return err
	}

	base := cfg.Output
	outDir := filepath.Dir(base)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrKanjidict, err)
	}

	if err := writeFile(base+".tsv", func(w io.Writer) error {
		return export.WriteTSV(w, entries)
	}); err != nil {
		return err
	}
	log.Info("exported TSV", "path", base+".tsv")

	r, err := stardict.Write(base, entries, &stardict.Options{
		Bookname:    cfg.StarDict.Bookname,
		Author:      cfg.StarDict.Author,
		Description: cfg.StarDict.Description,
		DictZip:     cfg.StarDict.DictZip,
		SortIndex:   cfg.StarDict.SortIndex,
		Synonyms:    cfg.StarDict.Synonyms,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKanjidict, err)
	}
	log.Info("exported StarDict", "path", r.IfoPath, "words", r.WordCount, "synonyms", r.SynWordCount)

	if err := writeFile(base+".json", func(w io.Writer) error {
		return export.WriteFlashcards(w, entries)
	}); err != nil {
		return err
	}
	log.Info("exported flashcards", "path", base+".json")

	if cfg.XLSX {
		if err := writeFile(base+".xlsx", func(w io.Writer) error {
			return export.WriteXLSX(w, entries)
		}); err != nil {
			return err
		}
		log.Info("exported XLSX", "path", base+".xlsx")
	}

	if !cfg.Images.Inline && !cfg.Images.Copy {
		return nil
	}

	opts := &images.Options{
		Root:    cfg.Images.Root,
		Workers: cfg.Images.Workers,
		Logger:  log,
	}
	if opts.Root == "" {
		opts.Root = filepath.Dir(cfg.Input)
	}
	paths := images.Distinct(entries)

	if cfg.Images.Inline {
		inlined, err := images.Inline(ctx, paths, opts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrKanjidict, err)
		}
		if err := writeFile(base+".images.json", func(w io.Writer) error {
			return images.WriteInlined(w, inlined)
		}); err != nil {
			return err
		}
		log.Info("extracted images to base64", "path", base+".images.json", "count", len(inlined))
	}

	if cfg.Images.Copy {
		n, err := images.Copy(ctx, paths, outDir, opts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrKanjidict, err)
		}
		log.Info("copied images", "dir", filepath.Join(outDir, images.Dir), "count", n, "total", len(paths))
	}

	return nil
}

// writeFile creates path and writes to it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKanjidict, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrKanjidict, path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrKanjidict, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrKanjidict, path, err)
	}
	return nil
}
