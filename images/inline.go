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

package images

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of files read concurrently when Options
// does not set Workers.
const DefaultWorkers = 4

// Options configure reading image files.
type Options struct {
	// Root is the directory relative image paths are resolved against. The
	// empty string means the working directory.
	Root string

	// Workers limits the number of files processed concurrently.
	Workers int

	// Logger receives per-file failures. nil means slog.Default().
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return DefaultWorkers
	}
	return o.Workers
}

func (o *Options) resolve(path string) string {
	if o == nil || o.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.Root, path)
}

// Inlined is an image file encoded for embedding.
type Inlined struct {
	Data     string `json:"data"`
	MimeType string `json:"mime_type"`
	Filename string `json:"filename"`
}

// Inline reads every path and returns the base64 encoded contents keyed by
// the original path. Files that cannot be read are logged and omitted. The
// only error returned is the context's.
func Inline(ctx context.Context, paths []string, opts *Options) (map[string]*Inlined, error) {
	log := opts.logger()

	var mu sync.Mutex
	out := make(map[string]*Inlined, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for _, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			b, err := os.ReadFile(opts.resolve(p))
			if err != nil {
				log.Warn("skipping image", "path", p, "error", err)
				return nil
			}

			img := &Inlined{
				Data:     base64.StdEncoding.EncodeToString(b),
				MimeType: MimeType(p),
				Filename: FileName(p),
			}

			mu.Lock()
			out[p] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("inlining images: %w", err)
	}

	log.Debug("inlined images", "count", len(out), "skipped", len(paths)-len(out))
	return out, nil
}

// WriteInlined writes inlined images as an indented JSON object.
func WriteInlined(w io.Writer, images map[string]*Inlined) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(images); err != nil {
		return fmt.Errorf("writing inlined images: %w", err)
	}
	return nil
}
