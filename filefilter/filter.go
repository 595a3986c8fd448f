// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import "iter"

// Filter decides whether a path passes.
type Filter interface {
	// AcceptsFile reports whether path passes the filter.
	AcceptsFile(path string) bool
}

// Func adapts a plain predicate to Filter.
type Func func(path string) bool

// AcceptsFile calls f. A nil Func accepts nothing.
func (f Func) AcceptsFile(path string) bool {
	return f != nil && f(path)
}

// Accepts reports whether every non-nil filter accepts path.
// An empty filter list accepts every path.
func Accepts(path string, filters []Filter) bool {
	for _, f := range filters {
		if f == nil {
			continue
		}

		if !f.AcceptsFile(path) {
			return false
		}
	}

	return true
}

// Apply yields paths accepted by every filter, preserving input order.
func Apply(paths iter.Seq[string], filters []Filter) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range paths {
			if !Accepts(path, filters) {
				continue
			}

			if !yield(path) {
				return
			}
		}
	}
}

// accepts treats a nil child filter as rejecting.
func accepts(f Filter, path string) bool {
	return f != nil && f.AcceptsFile(path)
}
