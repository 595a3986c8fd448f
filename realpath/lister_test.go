// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package realpath

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pathtool/filefilter"
)

const testRoot = "/tests/RealDirTest"

// newTestTree builds the listing fixture in memory.
func newTestTree(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for _, dir := range []string{"Empty", "PhpFiles", "TextFiles/Last"} {
		require.NoError(t, fsys.MkdirAll(testRoot+"/"+dir, 0o755))
	}

	for _, file := range []string{
		"PhpFiles/file1.php",
		"PhpFiles/file2.php",
		"PhpFiles/file3.php",
		"TextFiles/file1.txt",
		"TextFiles/file2.txt",
		"TextFiles/file3.txt",
		"TextFiles/Last/file4.txt",
		"global.php",
		"global.txt",
	} {
		require.NoError(t, afero.WriteFile(fsys, testRoot+"/"+file, []byte("x"), 0o644))
	}

	return fsys
}

func newTestLister(t *testing.T, fsys afero.Fs) *Lister {
	t.Helper()

	return New(fsys, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// prefixed joins names under testRoot.
func prefixed(names ...string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = testRoot + "/" + name
	}

	return out
}

// deniedFs fails to open one directory.
type deniedFs struct {
	afero.Fs
	denied string
}

func (d deniedFs) Open(name string) (afero.File, error) {
	if name == d.denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return d.Fs.Open(name)
}

func TestContentsPlain(t *testing.T) {
	t.Parallel()

	got, err := newTestLister(t, newTestTree(t)).Contents(testRoot, Options{})
	require.NoError(t, err)

	assert.Equal(t, prefixed(
		"Empty",
		"PhpFiles",
		"TextFiles",
		"global.php",
		"global.txt",
	), got)
}

func TestContentsKindFilters(t *testing.T) {
	t.Parallel()

	fsys := newTestTree(t)
	lister := newTestLister(t, fsys)

	got, err := lister.Contents(testRoot, Options{Filters: []filefilter.Filter{filefilter.OnlyDirectory(fsys)}})
	require.NoError(t, err)
	assert.Equal(t, prefixed("Empty", "PhpFiles", "TextFiles"), got)

	got, err = lister.Contents(testRoot, Options{Filters: []filefilter.Filter{filefilter.OnlyFile(fsys)}})
	require.NoError(t, err)
	assert.Equal(t, prefixed("global.php", "global.txt"), got)
}

func TestContentsRecursive(t *testing.T) {
	t.Parallel()

	got, err := newTestLister(t, newTestTree(t)).Contents(testRoot, Options{Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, prefixed(
		"Empty",
		"PhpFiles",
		"PhpFiles/file1.php",
		"PhpFiles/file2.php",
		"PhpFiles/file3.php",
		"TextFiles",
		"TextFiles/Last",
		"TextFiles/Last/file4.txt",
		"TextFiles/file1.txt",
		"TextFiles/file2.txt",
		"TextFiles/file3.txt",
		"global.php",
		"global.txt",
	), got)
}

func TestContentsRecursiveFiltered(t *testing.T) {
	t.Parallel()

	lister := newTestLister(t, newTestTree(t))

	got, err := lister.Contents(testRoot, Options{
		Recursive: true,
		Filters:   []filefilter.Filter{filefilter.MustGlob("*.php")},
	})
	require.NoError(t, err)
	assert.Equal(t, prefixed(
		"PhpFiles/file1.php",
		"PhpFiles/file2.php",
		"PhpFiles/file3.php",
		"global.php",
	), got)

	// rejected directories are still descended
	got, err = lister.Contents(testRoot, Options{
		Recursive: true,
		Filters:   []filefilter.Filter{filefilter.MustGlob("file4.txt")},
	})
	require.NoError(t, err)
	assert.Equal(t, prefixed("TextFiles/Last/file4.txt"), got)
}

func TestContentsMissingAndEmpty(t *testing.T) {
	t.Parallel()

	lister := newTestLister(t, newTestTree(t))

	got, err := lister.Contents(testRoot+"/does-not-exist", Options{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = lister.Contents(testRoot+"/global.txt", Options{})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = lister.Contents(testRoot+"/Empty", Options{Recursive: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContentsTrailingSeparator(t *testing.T) {
	t.Parallel()

	got, err := newTestLister(t, newTestTree(t)).Contents(testRoot+"/PhpFiles/", Options{})
	require.NoError(t, err)
	assert.Equal(t, prefixed("PhpFiles/file1.php", "PhpFiles/file2.php", "PhpFiles/file3.php"), got)
}

func TestYield(t *testing.T) {
	t.Parallel()

	lister := newTestLister(t, newTestTree(t))

	var got []string
	for path, err := range lister.Yield(testRoot, Options{Recursive: true}) {
		require.NoError(t, err)
		got = append(got, path)

		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, prefixed("Empty", "PhpFiles", "PhpFiles/file1.php"), got)
}

func TestYieldNotDirectory(t *testing.T) {
	t.Parallel()

	lister := newTestLister(t, newTestTree(t))

	for _, dir := range []string{testRoot + "/global.php", testRoot + "/missing"} {
		calls := 0
		for path, err := range lister.Yield(dir, Options{}) {
			calls++
			assert.Equal(t, dir, path)
			require.ErrorIs(t, err, ErrNotDirectory)
		}

		assert.Equal(t, 1, calls, dir)
	}
}

func TestNilLister(t *testing.T) {
	t.Parallel()

	var lister *Lister

	_, err := lister.Contents(testRoot, Options{})
	require.ErrorIs(t, err, ErrNilLister)

	_, err = lister.ContentsAll(context.Background(), []string{testRoot}, Options{})
	require.ErrorIs(t, err, ErrNilLister)

	for _, err := range lister.Yield(testRoot, Options{}) {
		require.ErrorIs(t, err, ErrNilLister)
	}
}

func TestContentsContinueOnError(t *testing.T) {
	t.Parallel()

	fsys := deniedFs{Fs: newTestTree(t), denied: testRoot + "/TextFiles"}

	var logs bytes.Buffer
	lister := New(fsys, slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := lister.Contents(testRoot, Options{Recursive: true})
	require.ErrorIs(t, err, os.ErrPermission)

	got, err := lister.Contents(testRoot, Options{Recursive: true, ContinueOnError: true})
	require.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, prefixed(
		"Empty",
		"PhpFiles",
		"PhpFiles/file1.php",
		"PhpFiles/file2.php",
		"PhpFiles/file3.php",
		"TextFiles",
		"global.php",
		"global.txt",
	), got)

	assert.Contains(t, logs.String(), "read directory")
	assert.Contains(t, logs.String(), "skip unreadable directory")
}

func TestContentsAll(t *testing.T) {
	t.Parallel()

	lister := newTestLister(t, newTestTree(t))

	got, err := lister.ContentsAll(context.Background(), []string{
		testRoot + "/PhpFiles",
		testRoot + "/missing",
		testRoot + "/Empty",
		testRoot + "/TextFiles",
	}, Options{Recursive: true, Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, prefixed("PhpFiles/file1.php", "PhpFiles/file2.php", "PhpFiles/file3.php"), got[0])
	assert.Nil(t, got[1])
	assert.Empty(t, got[2])
	assert.Len(t, got[3], 5)
}

func TestContentsAllErrors(t *testing.T) {
	t.Parallel()

	fsys := deniedFs{Fs: newTestTree(t), denied: testRoot + "/TextFiles"}
	lister := newTestLister(t, fsys)

	_, err := lister.ContentsAll(context.Background(), []string{testRoot, testRoot + "/PhpFiles"}, Options{Recursive: true})
	require.ErrorIs(t, err, os.ErrPermission)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = lister.ContentsAll(ctx, []string{testRoot + "/PhpFiles"}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestContentsAllContinueOnError(t *testing.T) {
	t.Parallel()

	fsys := deniedFs{Fs: newTestTree(t), denied: testRoot + "/TextFiles"}
	lister := newTestLister(t, fsys)

	got, err := lister.ContentsAll(context.Background(), []string{testRoot, testRoot + "/PhpFiles"}, Options{
		Recursive:       true,
		ContinueOnError: true,
	})
	require.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "list "+testRoot)
	require.Len(t, got, 2)

	assert.Equal(t, prefixed(
		"Empty",
		"PhpFiles",
		"PhpFiles/file1.php",
		"PhpFiles/file2.php",
		"PhpFiles/file3.php",
		"TextFiles",
		"global.php",
		"global.txt",
	), got[0])
	assert.Equal(t, prefixed("PhpFiles/file1.php", "PhpFiles/file2.php", "PhpFiles/file3.php"), got[1])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = lister.ContentsAll(ctx, []string{testRoot + "/PhpFiles"}, Options{ContinueOnError: true})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPackageContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"a.txt", "b.php", filepath.Join("sub", "c.txt")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	got, err := Contents(dir, true, "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "sub", "c.txt")}, got)

	got, err = Contents(dir, false, `%^[ab]\.%`, filefilter.OnlyFile(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.php")}, got)

	got, err = Contents(filepath.Join(dir, "missing"), true)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Contents(dir, false, 42)
	require.ErrorIs(t, err, filefilter.ErrInvalidFilter)
}
