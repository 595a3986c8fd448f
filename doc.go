// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

/*
Package pathtool implements offline, purely lexical path manipulation.

Nothing in this package touches the filesystem. All semantics derive from the
characters of the path string:
  - a leading separator marks a zero (absolute) path (`IsZeroPath`)
  - a trailing separator marks a directory (`IsDirectory`)
  - ".." is the parent directory, "." the current one
  - empty components are ignored when resolving ("/a///b" is "/a/b")

Basic flow:
  - split a path into segments (`Decompose` / `Names`) under `Options`
  - resolve "." and ".." segments (`Normalize`)
  - compute a relative path between two zero paths (`Relative`)
  - rebuild a path from segment names (`JoinSegments`)
  - inspect the final component (`BaseName`, `ExtensionOf`, `NameOf`)

Filename predicates live in package filefilter, directory listing with
filters in package realpath.
*/
package pathtool
