// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package realpath

import "errors"

var (
	// ErrNotDirectory indicates the listed path is missing or not a directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNilLister indicates a method call on nil *Lister.
	ErrNilLister = errors.New("nil lister")
)
