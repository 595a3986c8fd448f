// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package pathtool

import "errors"

// Sentinel errors for pathtool operations.
var (
	// ErrOutOfBounds indicates ".." resolution climbed above the path root
	// while out-of-bounds resolution was denied.
	ErrOutOfBounds = errors.New("path resolution out of bounds")
	// ErrInvalidInput indicates a relative path was requested for a path
	// that is not a zero path.
	ErrInvalidInput = errors.New("invalid input path")
)
