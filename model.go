// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package pathtool

import "path/filepath"

const (
	// Separator is the host path separator.
	Separator = filepath.Separator
	// Root is the pseudo-segment yielded for the origin of a zero path.
	Root = string(Separator)
)

// Options controls how Decompose splits and resolves a path.
type Options struct {
	// Resolve folds "." and ".." segments and drops empty segments.
	Resolve bool `json:"resolve,omitempty" yaml:"resolve,omitempty"`
	// DenyOutOfBounds makes ".." above the start fail with ErrOutOfBounds
	// instead of being kept as a literal "..". Only meaningful with Resolve.
	DenyOutOfBounds bool `json:"deny_out_of_bounds,omitempty" yaml:"deny_out_of_bounds,omitempty"`
	// YieldRoot inserts Root as the first segment of a zero path.
	YieldRoot bool `json:"yield_root,omitempty" yaml:"yield_root,omitempty"`
	// YieldComponent fills directory and final flags of yielded segments.
	// Without it only Segment.Name is set.
	YieldComponent bool `json:"yield_component,omitempty" yaml:"yield_component,omitempty"`
}

var (
	// OptionsAll enables every option.
	OptionsAll = Options{
		Resolve:         true,
		DenyOutOfBounds: true,
		YieldRoot:       true,
		YieldComponent:  true,
	}
	// DefaultOptions resolves the path and yields the root marker.
	DefaultOptions = Options{
		Resolve:   true,
		YieldRoot: true,
	}
)

// With returns options with every flag set in either opts or other.
func (opts Options) With(other Options) Options {
	return Options{
		Resolve:         opts.Resolve || other.Resolve,
		DenyOutOfBounds: opts.DenyOutOfBounds || other.DenyOutOfBounds,
		YieldRoot:       opts.YieldRoot || other.YieldRoot,
		YieldComponent:  opts.YieldComponent || other.YieldComponent,
	}
}

// Segment is one name token extracted from a path.
type Segment struct {
	// Name is the literal segment text: an ordinary name, "..", or Root.
	Name string `json:"name" yaml:"name"`
	// IsDirectory reports whether the segment is followed by another segment
	// or the source path ends with a separator.
	IsDirectory bool `json:"is_directory,omitempty" yaml:"is_directory,omitempty"`
	// IsFinal reports whether the segment is the last one of its source path.
	IsFinal bool `json:"is_final,omitempty" yaml:"is_final,omitempty"`
}

// Equal reports whether both segments share name and directory-ness.
// IsFinal does not take part in equality.
func (s Segment) Equal(other Segment) bool {
	return s.Name == other.Name && s.IsDirectory == other.IsDirectory
}

// IsRoot reports whether segment is the root marker of a zero path.
func (s Segment) IsRoot() bool {
	return s.Name == Root
}

// String returns the segment name.
func (s Segment) String() string {
	return s.Name
}
