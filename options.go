// Package blobfs provides functional options for configuring the Loader.
// These options follow the functional options pattern for clean, composable
// configuration.
package blobfs

import (
	"io/fs"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/blobfs/progress"
)

// DefaultGlob is the glob pattern used when WithGlob is not supplied.
// It matches every entry under the root, recursively, whose final path
// segment does not start with a dot.
const DefaultGlob = "**/[!.]*"

// Option configures a Loader at construction time.
type Option func(*config)

// config holds the Loader configuration assembled by New.
type config struct {
	pattern        string
	suffixes       []string
	reporter       progress.Reporter
	fsys           fs.FS
	factory        Factory
	logger         *slog.Logger
	failOnIOErrors bool
}

// WithGlob sets the glob pattern expanded against the root. The pattern
// supports '*' within a path segment, '**' across segments, and bracketed
// character classes including negation. Default is DefaultGlob.
func WithGlob(pattern string) Option {
	return func(c *config) {
		c.pattern = pattern
	}
}

// WithSuffixes restricts enumeration to files whose extension is in the
// given set. Suffixes must include the leading dot, e.g. ".txt". An empty
// set (the default) accepts all extensions.
func WithSuffixes(suffixes ...string) Option {
	return func(c *config) {
		c.suffixes = suffixes
	}
}

// WithProgress enables progress reporting. Enumeration then traverses the
// tree twice: once to count matches for reporter.Start, once to produce
// blobs, with one reporter.Increment per produced item. The reporter's
// Done is invoked when the enumeration ends on any path, including early
// abandonment.
func WithProgress(reporter progress.Reporter) Option {
	return func(c *config) {
		c.reporter = reporter
	}
}

// WithFS injects the filesystem to traverse. The filesystem itself is the
// traversal root; the root argument to New is then used only for error
// context. Adapters for go-billy and afero backends live in the billy and
// afero subpackages.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithBlobFactory replaces the blob materialization step. The factory
// receives each filtered path and its result is yielded to the consumer.
// Default is blob.FromPath on the OS filesystem and blob.FromFS on an
// injected one.
func WithBlobFactory(factory Factory) Option {
	return func(c *config) {
		c.factory = factory
	}
}

// WithLogger sets the logger for enumeration diagnostics. Default discards
// all records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithFailOnIOErrors makes traversal surface directory read failures
// (e.g. permission denied on a subtree) as errors instead of skipping the
// offending subtree. The policy applies identically to Enumerate and
// CountMatches.
func WithFailOnIOErrors() Option {
	return func(c *config) {
		c.failOnIOErrors = true
	}
}
