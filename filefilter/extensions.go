// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import (
	"strings"

	"github.com/woozymasta/pathtool"
)

// ExtensionFilter accepts paths whose last extension is in a set.
type ExtensionFilter struct {
	exts map[string]struct{}
}

// Extensions builds an ExtensionFilter from an extension list.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Matching is case-sensitive and only compares the
// last extension, so "tar.gz" never matches; use "gz".
func Extensions(exts []string) *ExtensionFilter {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}

		set[ext] = struct{}{}
	}

	return &ExtensionFilter{exts: set}
}

// Len returns the number of distinct extensions.
func (f *ExtensionFilter) Len() int {
	return len(f.exts)
}

// AcceptsFile reports whether extension of path is in the set.
func (f *ExtensionFilter) AcceptsFile(path string) bool {
	_, ext := pathtool.ExtensionOf(path)
	if ext == "" {
		return false
	}

	_, ok := f.exts[ext]
	return ok
}
