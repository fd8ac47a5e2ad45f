// Package blobfs enumerates files on a local or injected filesystem and
// lazily materializes each match into a file-backed blob record, ready for
// downstream consumption such as document parsing pipelines.
//
// The module emphasizes a small, predictable surface: a Loader owns a root
// directory, a glob pattern, and an optional suffix filter, and exposes a
// lazy enumeration plus a count-only pass sharing the identical traversal
// logic.
//
// Key features:
//   - Recursive glob matching with '**' and character classes (the default
//     pattern "**/[!.]*" picks up all non-hidden files)
//   - Optional suffix filtering (".txt", ".md", ...)
//   - Lazy, pull-driven production: a match is stat-ed and materialized
//     only when the consumer asks for it
//   - Optional progress reporting backed by a count-then-produce pass
//   - Pluggable filesystem backends (go-billy and afero adapters in the
//     billy and afero subpackages)
//
// Example usage:
//
//	loader, err := blobfs.New("/path/to/docs",
//	    blobfs.WithGlob("**/*.txt"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	for b, err := range loader.Enumerate(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    data, err := b.Bytes()
//	    ...
//	}
package blobfs
