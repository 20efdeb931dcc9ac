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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Copy copies every path into the images directory under dir so that
// rewritten references resolve. Only the first of several paths sharing a
// file name is copied. Files that cannot be copied are logged and skipped.
// It returns the number of files copied.
//
// A failure to create the images directory is returned.
func Copy(ctx context.Context, paths []string, dir string, opts *Options) (int, error) {
	log := opts.logger()

	dst := filepath.Join(dir, Dir)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, fmt.Errorf("creating images directory: %w", err)
	}

	var copied atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	names := map[string]string{}
	for _, p := range paths {
		name := FileName(p)
		if first, ok := names[name]; ok {
			log.Warn("skipping image with duplicate file name", "path", p, "copied", first)
			continue
		}
		names[name] = p

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := copyFile(opts.resolve(p), filepath.Join(dst, name)); err != nil {
				log.Warn("skipping image", "path", p, "error", err)
				return nil
			}
			copied.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(copied.Load()), fmt.Errorf("copying images: %w", err)
	}
	return int(copied.Load()), nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
