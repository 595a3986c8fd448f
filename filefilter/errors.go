// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import "errors"

// Sentinel errors for filefilter operations.
var (
	// ErrInvalidPattern indicates malformed glob or regex pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidFilter indicates filter input that cannot be turned into a Filter.
	ErrInvalidFilter = errors.New("invalid filter")
)
