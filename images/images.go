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

// Package images resolves the image references found in glossary entries.
// References are rewritten to point into an images directory next to the
// exported files, and the referenced files can be inlined as base64 or
// copied into that directory.
package images

import (
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-kanjidict"
)

// Dir is the directory, relative to the exported files, that rewritten
// references point into.
const Dir = "images"

// FileName returns the last '/' separated element of path, or path itself
// if that element is empty.
func FileName(path string) string {
	name := path[strings.LastIndexByte(path, '/')+1:]
	if name == "" {
		return path
	}
	return name
}

// Rewrite returns the exported reference for an image path.
func Rewrite(path string) string {
	return Dir + "/" + FileName(path)
}

// RewriteAll rewrites every path, keeping order and duplicates.
func RewriteAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, Rewrite(p))
	}
	return out
}

// Distinct returns the distinct image paths of all entries in first-seen
// order.
func Distinct(entries []*kanjidict.Entry) []string {
	seen := map[string]bool{}
	var paths []string
	for _, e := range entries {
		for _, p := range e.Images() {
			if seen[p] {
				continue
			}
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}

// MimeType returns the mime type for an image path derived from its
// extension. "jpg" and paths without an extension map to image/jpeg.
func MimeType(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(FileName(path)), "."))
	switch ext {
	case "", "jpg":
		return "image/jpeg"
	default:
		return "image/" + ext
	}
}
