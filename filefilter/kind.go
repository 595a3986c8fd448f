// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import "github.com/spf13/afero"

// KindFilter accepts paths that currently exist on a filesystem as either
// directories or regular files.
type KindFilter struct {
	fs  afero.Fs
	dir bool
}

// OnlyDirectory accepts paths naming an existing directory on fsys.
// Nil fsys uses the OS filesystem.
func OnlyDirectory(fsys afero.Fs) *KindFilter {
	return &KindFilter{
		fs:  orOsFs(fsys),
		dir: true,
	}
}

// OnlyFile accepts paths naming an existing regular file on fsys.
// Nil fsys uses the OS filesystem.
func OnlyFile(fsys afero.Fs) *KindFilter {
	return &KindFilter{
		fs: orOsFs(fsys),
	}
}

// AcceptsFile stats path and compares its kind.
func (f *KindFilter) AcceptsFile(path string) bool {
	info, err := f.fs.Stat(path)
	if err != nil {
		return false
	}

	if f.dir {
		return info.IsDir()
	}

	return info.Mode().IsRegular()
}

// orOsFs returns fsys or the OS filesystem when fsys is nil.
func orOsFs(fsys afero.Fs) afero.Fs {
	if fsys == nil {
		return afero.NewOsFs()
	}

	return fsys
}
