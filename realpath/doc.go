// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

/*
Package realpath lists directory contents on a real or virtual filesystem.

Listing goes through an afero.Fs, so the same code serves the OS
filesystem and in-memory trees:

	lister := realpath.New(afero.NewOsFs(), slog.Default())
	paths, err := lister.Contents("assets", realpath.Options{
		Recursive: true,
		Filters:   []filefilter.Filter{filefilter.MustGlob("*.png")},
	})

Entry paths are built as dir + separator + name. Recursive listing is
pre-order: a directory is reported before its contents. Filters decide what
is reported, never what is descended, so files below a rejected directory
are still visited.

For one-off OS listings use the package-level Contents, which accepts
filters as Filter values or filter strings:

	paths, err := realpath.Contents("src", true, "*.go", "%^[a-z]%")
*/
package realpath
