// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/woozymasta/pathtool"
)

// GlobFilter accepts paths whose base name matches a shell glob.
//
// Supported syntax: "*", "?", "[abc]", "[!abc]", "[a-z]" and "{a,b}".
// Matching is case-sensitive.
type GlobFilter struct {
	glob    glob.Glob
	pattern string
}

// Glob compiles pattern into a GlobFilter.
func Glob(pattern string) (*GlobFilter, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty glob", ErrInvalidPattern)
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: compile glob %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &GlobFilter{
		glob:    g,
		pattern: pattern,
	}, nil
}

// MustGlob is Glob that panics on invalid pattern.
func MustGlob(pattern string) *GlobFilter {
	f, err := Glob(pattern)
	if err != nil {
		panic(err)
	}

	return f
}

// Pattern returns source glob pattern.
func (f *GlobFilter) Pattern() string {
	return f.pattern
}

// AcceptsFile reports whether base name of path matches the glob.
func (f *GlobFilter) AcceptsFile(path string) bool {
	return f.glob.Match(pathtool.BaseName(path))
}
