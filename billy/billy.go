// Package billy adapts go-billy filesystems to the blobfs Loader, so blob
// enumeration can run against any billy backend (osfs, memfs, ...).
package billy

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/helper/iofs"

	"github.com/input-output-hk/catalyst-forge-libs/blobfs"
)

// NewLoader creates a Loader that enumerates files from the given billy
// filesystem. A root other than "." scopes the filesystem with Chroot
// before enumeration; matched paths are relative to that root.
func NewLoader(filesystem billy.Filesystem, root string, opts ...blobfs.Option) (*blobfs.Loader, error) {
	if filesystem == nil {
		return nil, fmt.Errorf("billy: nil filesystem")
	}
	scoped := filesystem
	if root != "" && root != "." {
		var err error
		scoped, err = filesystem.Chroot(root)
		if err != nil {
			return nil, fmt.Errorf("billy: chroot %q: %w", root, err)
		}
	}
	label := root
	if label == "" {
		label = "."
	}
	opts = append(opts, blobfs.WithFS(iofs.New(scoped)))
	return blobfs.New(label, opts...)
}
