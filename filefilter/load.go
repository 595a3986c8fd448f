// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import (
	"fmt"

	"github.com/spf13/afero"
)

// LoadFile reads and parses line-based filters from a file on fsys.
// Nil fsys uses the OS filesystem.
func LoadFile(fsys afero.Fs, path string) ([]Filter, error) {
	f, err := orOsFs(fsys).Open(path)
	if err != nil {
		return nil, fmt.Errorf("open filters file: %w", err)
	}
	defer func() { _ = f.Close() }()

	filters, err := ParseFilters(f)
	if err != nil {
		return nil, fmt.Errorf("parse filters file %s: %w", path, err)
	}

	return filters, nil
}

// LoadFiles reads and merges filters from files in the given order.
func LoadFiles(fsys afero.Fs, paths ...string) ([]Filter, error) {
	sets := make([][]Filter, 0, len(paths))
	for _, path := range paths {
		filters, err := LoadFile(fsys, path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, filters)
	}

	return Merge(sets...), nil
}
