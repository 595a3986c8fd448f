// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package pathtool

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// IsZeroPath reports whether path is a zero (absolute) path:
//
//	/my/path  => true
//	my/path   => false
//	../path   => false
func IsZeroPath(path string) bool {
	return path != "" && path[0] == Separator
}

// IsDirectory reports whether path denotes a directory by convention,
// that is whether it ends with a separator:
//
//	/path/to/file        => false
//	/path/to/directory/  => true
func IsDirectory(path string) bool {
	return path != "" && path[len(path)-1] == Separator
}

// Decompose splits path into segments under opts.
//
// Resolution runs before the sequence is returned, so an out-of-bounds
// failure never leaves the caller with a partial sequence. The returned
// sequence only emits the resolved segments; ranging over it again emits
// the same segments. Empty path yields nothing.
func Decompose(path string, opts Options) (iter.Seq[Segment], error) {
	names, err := splitSegments(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, path)
	}

	dir := IsDirectory(path)
	return func(yield func(Segment) bool) {
		n := len(names)
		for i, name := range names {
			seg := Segment{Name: name}
			if opts.YieldComponent {
				seg.IsDirectory = i+1 < n || dir
				seg.IsFinal = i+1 == n
			}

			if !yield(seg) {
				return
			}
		}
	}, nil
}

// Names is Decompose yielding bare segment names.
func Names(path string, opts Options) (iter.Seq[string], error) {
	segments, err := Decompose(path, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for seg := range segments {
			if !yield(seg.Name) {
				return
			}
		}
	}, nil
}

// Normalize resolves "." and ".." segments and drops empty ones.
//
// A zero path may never climb above its root; doing so returns
// ErrOutOfBounds. A relative path keeps leading ".." segments:
//
//	/my/path/../file.txt     => /my/file.txt
//	test/../../file.txt      => ../file.txt
//	/my/../../file.txt       => ErrOutOfBounds
func Normalize(path string) (string, error) {
	opts := DefaultOptions
	if IsZeroPath(path) {
		opts.DenyOutOfBounds = true
	}

	names, err := Names(path, opts)
	if err != nil {
		return "", err
	}

	collected := slices.Collect(names)
	if len(collected) == 1 && collected[0] == Root {
		return Root, nil
	}

	return JoinSegments(collected), nil
}

// JoinSegments joins segment names with the separator.
// A leading Root marker produces exactly one leading separator.
func JoinSegments(names []string) string {
	if len(names) == 0 {
		return ""
	}

	var b strings.Builder
	for i, name := range names {
		if i == 0 && name == Root {
			continue
		}

		if i > 0 {
			b.WriteByte(Separator)
		}

		b.WriteString(name)
	}

	return b.String()
}

// BaseName returns the final component of path, ignoring trailing separators.
func BaseName(path string) string {
	path = strings.TrimRight(path, Root)
	if i := strings.LastIndexByte(path, Separator); i >= 0 {
		return path[i+1:]
	}

	return path
}

// ExtensionOf splits the final component of path on ".".
// The first token is the base name and the last token the extension:
//
//	/my/path/to/target.txt  => "target", "txt"
//	/my/archive.tar.gz      => "archive", "gz"
//	/my/README              => "README", ""
func ExtensionOf(path string) (base string, ext string) {
	tokens := strings.Split(BaseName(path), ".")
	base = tokens[0]
	if len(tokens) > 1 {
		ext = tokens[len(tokens)-1]
	}

	return base, ext
}

// NameOf returns the final component of path up to its first ".".
func NameOf(path string) string {
	base, _ := ExtensionOf(path)
	return base
}

// splitSegments splits path into segment names and applies resolution options.
func splitSegments(path string, opts Options) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	zero := IsZeroPath(path)
	raw := path
	if zero {
		raw = path[1:]
	}

	names := strings.Split(raw, Root)
	if opts.Resolve {
		var err error
		names, err = resolveSegments(names, opts.DenyOutOfBounds)
		if err != nil {
			return nil, err
		}
	}

	if opts.YieldRoot && zero {
		names = slices.Insert(names, 0, Root)
	}

	return names, nil
}

// resolveSegments folds raw segments left to right on a stack.
func resolveSegments(raw []string, denyOutOfBounds bool) ([]string, error) {
	stack := make([]string, 0, len(raw))
	for _, name := range raw {
		switch name {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				continue
			}

			if denyOutOfBounds {
				return nil, ErrOutOfBounds
			}

			// Relative paths may climb above their starting point.
			stack = append(stack, "..")
		default:
			stack = append(stack, name)
		}
	}

	return stack, nil
}
