/*
 * Copyright (c) 2011 jamra.source@gmail.com
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

package index

import (
	"fmt"
	"strings"

	"github.com/jamra/gofst/internal/fst"
)

// TermDictionary maps indexed terms to their posting-list offset using a
// minimized FST instead of InvertedIndex's map-of-prefix-buckets. Terms share
// structure the way InvertedIndex's 4-character prefix buckets approximate,
// but exactly and at any prefix length, which is what makes SeekCeil/SeekFloor
// usable for real autocomplete instead of a fixed 4-char bucket lookup.
type TermDictionary struct {
	fst *fst.FST[int64]
}

// TermDictionaryBuilder accumulates (term, offset) pairs in sorted order and
// compiles them into a TermDictionary, mirroring fst.MinimizingBuilder's
// Add/Finish shape.
type TermDictionaryBuilder struct {
	b *fst.MinimizingBuilder[int64]
}

// NewTermDictionaryBuilder creates a builder. Terms must be added in
// non-decreasing lexicographic order, same as the underlying FST builder.
func NewTermDictionaryBuilder() *TermDictionaryBuilder {
	return &TermDictionaryBuilder{b: fst.NewMinimizingBuilder[int64](fst.Int64Outputs{})}
}

// Add records that term's posting list begins at offset.
func (tb *TermDictionaryBuilder) Add(term string, offset int64) error {
	if err := tb.b.Add([]byte(term), offset); err != nil {
		return fmt.Errorf("index: adding term %q: %w", term, err)
	}
	return nil
}

// Build compiles the accumulated terms into a TermDictionary. The builder
// cannot be reused afterward.
func (tb *TermDictionaryBuilder) Build() (*TermDictionary, error) {
	f, err := tb.b.Finish()
	if err != nil {
		return nil, fmt.Errorf("index: building term dictionary: %w", err)
	}
	return &TermDictionary{fst: f}, nil
}

// Lookup returns the posting-list offset for an exact term match.
func (d *TermDictionary) Lookup(term string) (offset int64, found bool, err error) {
	if d.fst == nil {
		return 0, false, nil
	}
	return d.fst.Get([]byte(term))
}

// Empty reports whether the dictionary holds no terms at all; a nil or
// IsEmpty FST means it was built from zero terms.
func (d *TermDictionary) Empty() bool {
	return d.fst == nil || d.fst.IsEmpty()
}

// Complete returns up to limit terms (with offsets) in the dictionary whose
// value is >= prefix lexicographically and which share prefix as their
// leading substring, walking forward from a SeekCeil position. Unlike
// InvertedIndex.Search's fixed 4-character bucket, this works for any prefix
// length and returns results in sorted order.
func (d *TermDictionary) Complete(prefix string, limit int) ([]TermPosting, error) {
	if d.fst == nil || limit <= 0 {
		return nil, nil
	}

	target, err := fst.ByteInput.ToLabels([]byte(prefix))
	if err != nil {
		return nil, err
	}

	e := fst.NewEnumerator(d.fst)
	var results []TermPosting

	r, err := e.SeekCeil(target)
	if err != nil {
		return nil, err
	}
	for r != nil && len(results) < limit {
		term := labelsToString(r.Labels)
		if !strings.HasPrefix(term, prefix) {
			break
		}
		results = append(results, TermPosting{Term: term, Offset: r.Output})
		if !e.Next() {
			if err := e.Err(); err != nil {
				return results, err
			}
			break
		}
		r = e.Current()
	}
	return results, nil
}

// TermPosting is one (term, posting-offset) result from Complete.
type TermPosting struct {
	Term   string
	Offset int64
}

func labelsToString(labels []fst.Label) string {
	b := make([]byte, len(labels))
	for i, l := range labels {
		b[i] = byte(l)
	}
	return string(b)
}
