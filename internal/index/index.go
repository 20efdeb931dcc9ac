// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements an in-memory lookup index over dictionary words.
package index

import (
	"fmt"
	"slices"
	"strings"
)

type item[V fmt.Stringer] struct {
	key   string
	value V
}

// Index is a sorted array of values ordered by a folded key. Values with
// equal keys keep their original order.
type Index[V fmt.Stringer] struct {
	items []item[V]
	key   func(string) string
}

// New creates an index over values. key folds a value's String() and a
// query into the form that is compared. A nil key compares strings as is.
func New[V fmt.Stringer](values []V, key func(string) string) *Index[V] {
	if key == nil {
		key = func(s string) string { return s }
	}

	items := make([]item[V], 0, len(values))
	for _, v := range values {
		items = append(items, item[V]{key: key(v.String()), value: v})
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
		key:   key,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search returns the values whose key equals the folded query.
func (idx *Index[V]) Search(query string) []V {
	q := idx.key(query)
	return idx.collect(q, func(k string) bool { return k == q })
}

// Prefix returns the values whose key starts with the folded query.
func (idx *Index[V]) Prefix(query string) []V {
	q := idx.key(query)
	return idx.collect(q, func(k string) bool { return strings.HasPrefix(k, q) })
}

// collect returns the run of values starting at the first key >= q for
// which match holds.
func (idx *Index[V]) collect(q string, match func(string) bool) []V {
	i, _ := slices.BinarySearchFunc(idx.items, q, func(it item[V], q string) int {
		return strings.Compare(it.key, q)
	})

	var values []V
	for ; i < len(idx.items) && match(idx.items[i].key); i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
