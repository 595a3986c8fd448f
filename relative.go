// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package pathtool

import (
	"fmt"
	"slices"
)

// Relative returns the relative path leading from sourcePath to targetPath.
//
// Both paths must be zero paths, otherwise ErrInvalidInput is returned.
// A trailing separator marks a directory on either side. A file source is
// taken relative to its containing directory:
//
//	/my/path/to/                 -> /my/path/to/file.txt  => file.txt
//	/my/path/to/different/a.txt  -> /my/path/to/file.txt  => ../file.txt
//	/my/dir/1                    -> /my/dir/2/            => 2/
//	/my/dir/file.txt             -> /my/dir/              => ./
//
// Identical inputs produce an empty string.
func Relative(sourcePath string, targetPath string) (string, error) {
	if sourcePath == targetPath {
		return "", nil
	}

	if !IsZeroPath(sourcePath) || !IsZeroPath(targetPath) {
		return "", fmt.Errorf("%w: relative path needs two zero paths, got %q and %q",
			ErrInvalidInput, sourcePath, targetPath)
	}

	sourceIsDir := IsDirectory(sourcePath)
	targetIsDir := IsDirectory(targetPath)

	source, err := collectSegments(sourcePath)
	if err != nil {
		return "", err
	}

	target, err := collectSegments(targetPath)
	if err != nil {
		return "", err
	}

	shared := 0
	for shared < len(source) && shared < len(target) && source[shared].Equal(target[shared]) {
		// A segment that is neither final nor a directory names a file and
		// must not be consumed as a shared directory.
		if !source[shared].IsFinal && !source[shared].IsDirectory {
			break
		}

		shared++
	}

	source = source[shared:]
	target = target[shared:]

	// Leaving a file only needs to leave its directory.
	if !sourceIsDir && len(source) > 0 {
		source = source[1:]
	}

	names := make([]string, 0, len(source)+len(target))
	for _, seg := range source {
		if seg.IsRoot() {
			continue
		}

		names = append(names, "..")
	}

	for _, seg := range target {
		names = append(names, seg.Name)
	}

	if !targetIsDir {
		return JoinSegments(names), nil
	}

	if len(names) == 0 {
		return "." + Root, nil
	}

	return JoinSegments(names) + Root, nil
}

// collectSegments fully decomposes a zero path for Relative.
func collectSegments(path string) ([]Segment, error) {
	segments, err := Decompose(path, OptionsAll)
	if err != nil {
		return nil, err
	}

	return slices.Collect(segments), nil
}
