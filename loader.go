package blobfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/input-output-hk/catalyst-forge-libs/blobfs/blob"
	blobfserrors "github.com/input-output-hk/catalyst-forge-libs/blobfs/errors"
	"github.com/input-output-hk/catalyst-forge-libs/blobfs/progress"
)

// Factory materializes a blob from a filtered path. On the default OS
// backend the path is the root-joined OS path; on an injected filesystem it
// is the slash-separated path within that filesystem.
type Factory func(path string) (*blob.Blob, error)

// errStop aborts a traversal after the consumer stops pulling items.
var errStop = errors.New("enumeration stopped")

// Loader enumerates files under a directory tree that match a glob pattern
// and optional suffix set, lazily materializing each match into a blob.
//
// A Loader holds only immutable configuration: it keeps no open handles or
// cursors between calls, each operation re-walks the tree from scratch, and
// concurrent calls on the same Loader are safe.
type Loader struct {
	root           string
	pattern        string
	suffixes       map[string]struct{}
	reporter       progress.Reporter
	fsys           fs.FS
	osBacked       bool
	factory        Factory
	logger         *slog.Logger
	failOnIOErrors bool
}

// New creates a Loader rooted at the given directory. The root is validated
// as a path value only; whether it exists is checked lazily when the tree
// is traversed. No filesystem access occurs here.
func New(root string, opts ...Option) (*Loader, error) {
	cfg := config{
		pattern: DefaultGlob,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if root == "" || strings.ContainsRune(root, 0) {
		return nil, blobfserrors.NewPathError("new", root,
			blobfserrors.ErrInvalidArgument)
	}
	if !doublestar.ValidatePattern(cfg.pattern) {
		return nil, blobfserrors.New("new",
			fmt.Errorf("glob %q: %w", cfg.pattern, blobfserrors.ErrInvalidArgument))
	}

	suffixes := make(map[string]struct{}, len(cfg.suffixes))
	for _, suffix := range cfg.suffixes {
		if !strings.HasPrefix(suffix, ".") {
			return nil, blobfserrors.New("new",
				fmt.Errorf("suffix %q must include the leading dot: %w",
					suffix, blobfserrors.ErrInvalidArgument))
		}
		suffixes[suffix] = struct{}{}
	}

	l := &Loader{
		root:           root,
		pattern:        cfg.pattern,
		suffixes:       suffixes,
		reporter:       cfg.reporter,
		fsys:           cfg.fsys,
		osBacked:       cfg.fsys == nil,
		factory:        cfg.factory,
		logger:         cfg.logger,
		failOnIOErrors: cfg.failOnIOErrors,
	}
	if l.osBacked {
		l.fsys = os.DirFS(root)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	if l.factory == nil {
		l.factory = l.defaultFactory()
	}
	return l, nil
}

// Enumerate returns a lazy sequence of blobs for the matching files. No
// traversal happens until the sequence is ranged over, and breaking out of
// the range stops the traversal immediately.
//
// When a progress reporter is configured, the tree is first traversed once
// to count matches for the reporter, then traversed again to produce blobs.
// If the tree is mutated between the two passes the reported total may not
// match the number of blobs produced; this race is accepted.
//
// A factory failure for one path is yielded as that item's error and does
// not prevent later items from being produced. Traversal-level failures
// (missing root, strict-mode I/O errors, context cancellation) are yielded
// once and end the sequence.
func (l *Loader) Enumerate(ctx context.Context) iter.Seq2[*blob.Blob, error] {
	return func(yield func(*blob.Blob, error) bool) {
		if l.reporter != nil {
			total, err := l.countMatches(ctx)
			if err != nil {
				yield(nil, blobfserrors.NewPathError("enumerate", l.root, err))
				return
			}
			l.reporter.Start(total)
			defer l.reporter.Done()
		}

		l.logger.Debug("enumerating blobs", "root", l.root, "glob", l.pattern)
		err := l.walkMatches(ctx, func(p string) error {
			resolved := l.resolvePath(p)
			b, ferr := l.factory(resolved)
			if ferr != nil {
				l.logger.Warn("blob materialization failed",
					"path", resolved, "error", ferr)
				if !yield(nil, blobfserrors.NewPathError("materialize", resolved, ferr)) {
					return errStop
				}
				return nil
			}
			if !yield(b, nil) {
				return errStop
			}
			if l.reporter != nil {
				l.reporter.Increment()
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(nil, blobfserrors.NewPathError("enumerate", l.root, err))
		}
	}
}

// CountMatches traverses the tree with the same pattern and filters as
// Enumerate and returns the number of matching files without materializing
// blobs. Memory stays bounded regardless of tree size. Repeated calls on an
// unchanged tree return the same count.
func (l *Loader) CountMatches(ctx context.Context) (int, error) {
	n, err := l.countMatches(ctx)
	if err != nil {
		return 0, blobfserrors.NewPathError("count", l.root, err)
	}
	return n, nil
}

func (l *Loader) countMatches(ctx context.Context) (int, error) {
	n := 0
	err := l.walkMatches(ctx, func(string) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	l.logger.Debug("counted matching files", "root", l.root, "total", n)
	return n, nil
}

// walkMatches runs one traversal, invoking fn for each path that passes the
// pattern, regular-file, and suffix filters. Both public operations share
// it, so their filter semantics and error policy cannot diverge.
func (l *Loader) walkMatches(ctx context.Context, fn func(path string) error) error {
	if err := l.checkRoot(); err != nil {
		return err
	}

	var walkOpts []doublestar.GlobOption
	if l.failOnIOErrors {
		walkOpts = append(walkOpts, doublestar.WithFailOnIOErrors())
	}

	return doublestar.GlobWalk(l.fsys, l.pattern, func(p string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Stat follows symlinks, so a symlink to a regular file passes and
		// a symlink to a directory does not. A match that vanished between
		// listing and stat is skipped.
		info, err := fs.Stat(l.fsys, p)
		if err != nil {
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if len(l.suffixes) > 0 {
			if _, ok := l.suffixes[path.Ext(p)]; !ok {
				return nil
			}
		}
		return fn(p)
	}, walkOpts...)
}

// checkRoot validates the root directory on the OS backend. An injected
// filesystem is itself the traversal root and is not pre-validated; an
// empty one simply enumerates to zero matches.
func (l *Loader) checkRoot() error {
	if !l.osBacked {
		return nil
	}
	info, err := os.Stat(l.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return blobfserrors.ErrNotDirectory
	}
	return nil
}

// resolvePath converts a traversal path into the path handed to the blob
// factory.
func (l *Loader) resolvePath(p string) string {
	if l.osBacked {
		return filepath.Join(l.root, filepath.FromSlash(p))
	}
	return p
}

func (l *Loader) defaultFactory() Factory {
	if l.osBacked {
		return func(p string) (*blob.Blob, error) {
			return blob.FromPath(p)
		}
	}
	fsys := l.fsys
	return func(p string) (*blob.Blob, error) {
		return blob.FromFS(fsys, p)
	}
}
