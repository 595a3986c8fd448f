// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package realpath

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/pathtool"
	"github.com/woozymasta/pathtool/filefilter"
)

// Options configures directory listing.
type Options struct {
	// Filters decide which entries are reported. Every filter must accept.
	// Empty list reports every entry.
	Filters []filefilter.Filter `json:"-" yaml:"-"`
	// Recursive descends into every subdirectory, including ones the
	// filters reject.
	Recursive bool `json:"recursive,omitempty" yaml:"recursive,omitempty"`
	// ContinueOnError skips unreadable subdirectories instead of aborting.
	// Skipped directories are logged and reported in the returned error.
	ContinueOnError bool `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty"`
	// Concurrency limits parallel directories in ContentsAll.
	// Zero value defaults to GOMAXPROCS.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
}

// applyDefaults fills zero-value options.
func (o *Options) applyDefaults() {
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.GOMAXPROCS(0)
	}
}

// Lister walks directories of one filesystem.
type Lister struct {
	// fs is the listed filesystem.
	fs afero.Fs
	// logger receives directory read events.
	logger *slog.Logger
}

// New creates a Lister over fsys.
// Nil fsys uses the OS filesystem, nil logger uses slog.Default().
func New(fsys afero.Fs, logger *slog.Logger) *Lister {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Lister{fs: fsys, logger: logger}
}

// Yield lazily reports entries of dir that pass opts.Filters.
//
// Errors are yielded with the failing path. A missing or non-directory dir
// yields ErrNotDirectory once. Listing stops after the first error unless
// opts.ContinueOnError is set.
func (l *Lister) Yield(dir string, opts Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if l == nil {
			yield("", ErrNilLister)
			return
		}

		if err := l.checkDir(dir); err != nil {
			yield(dir, err)
			return
		}

		l.walk(context.Background(), dir, opts, yield)
	}
}

// Contents collects entries of dir that pass opts.Filters.
//
// Missing or non-directory dir returns nil, nil. An empty directory returns
// an empty non-nil slice. With opts.ContinueOnError the collected entries are
// returned together with every skipped directory error.
func (l *Lister) Contents(dir string, opts Options) ([]string, error) {
	if l == nil {
		return nil, ErrNilLister
	}

	return l.contents(context.Background(), dir, opts)
}

// ContentsAll lists dirs concurrently. Results are index-aligned with dirs.
// The first failing directory cancels the remaining ones. With
// opts.ContinueOnError every directory is listed and the results are returned
// together with all skipped directory errors.
func (l *Lister) ContentsAll(ctx context.Context, dirs []string, opts Options) ([][]string, error) {
	if l == nil {
		return nil, ErrNilLister
	}

	opts.applyDefaults()

	results := make([][]string, len(dirs))
	skipped := make([]error, len(dirs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, dir := range dirs {
		g.Go(func() error {
			paths, err := l.contents(gCtx, dir, opts)
			if err != nil {
				err = fmt.Errorf("list %s: %w", dir, err)
				if !opts.ContinueOnError {
					return err
				}

				skipped[i] = err
			}

			results[i] = paths
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merr *multierror.Error
	for _, err := range skipped {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return results, merr.ErrorOrNil()
}

// Contents lists dir on the OS filesystem.
// Filters may be filefilter.Filter values, filter strings or func(string) bool,
// see filefilter.FromValues.
func Contents(dir string, recursive bool, filters ...any) ([]string, error) {
	list, err := filefilter.FromValues(filters...)
	if err != nil {
		return nil, err
	}

	return New(afero.NewOsFs(), nil).Contents(dir, Options{
		Recursive: recursive,
		Filters:   list,
	})
}

// contents collects walk results for one directory.
func (l *Lister) contents(ctx context.Context, dir string, opts Options) ([]string, error) {
	if err := l.checkDir(dir); err != nil {
		if errors.Is(err, ErrNotDirectory) {
			return nil, nil
		}

		return nil, err
	}

	var merr *multierror.Error

	out := make([]string, 0, 16)
	for path, err := range l.walkSeq(ctx, dir, opts) {
		if err != nil {
			if !opts.ContinueOnError {
				return nil, err
			}

			merr = multierror.Append(merr, err)
			continue
		}

		out = append(out, path)
	}

	return out, merr.ErrorOrNil()
}

// walkSeq adapts walk to an iterator.
func (l *Lister) walkSeq(ctx context.Context, dir string, opts Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		l.walk(ctx, dir, opts, yield)
	}
}

// walk reports dir entries in pre-order. It returns false once the consumer
// stopped or listing must abort.
func (l *Lister) walk(ctx context.Context, dir string, opts Options, yield func(string, error) bool) bool {
	if err := ctx.Err(); err != nil {
		yield(dir, err)
		return false
	}

	l.logger.Debug("read directory", slog.String("dir", dir), slog.Bool("recursive", opts.Recursive))

	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		err = fmt.Errorf("read directory %s: %w", dir, err)
		if !opts.ContinueOnError {
			yield(dir, err)
			return false
		}

		l.logger.Warn("skip unreadable directory", slog.String("dir", dir), slog.Any("error", err))
		return yield(dir, err)
	}

	for _, entry := range entries {
		path := joinEntry(dir, entry.Name())

		if filefilter.Accepts(path, opts.Filters) && !yield(path, nil) {
			return false
		}

		if opts.Recursive && entry.IsDir() && !l.walk(ctx, path, opts, yield) {
			return false
		}
	}

	return true
}

// checkDir reports ErrNotDirectory for missing and non-directory paths.
func (l *Lister) checkDir(dir string) error {
	info, err := l.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}

		return fmt.Errorf("stat %s: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	return nil
}

// joinEntry appends name to dir with exactly one separator.
func joinEntry(dir, name string) string {
	if strings.HasSuffix(dir, pathtool.Root) {
		return dir + name
	}

	return dir + pathtool.Root + name
}
