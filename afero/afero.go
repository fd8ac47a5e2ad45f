// Package afero adapts afero filesystems to the blobfs Loader, so blob
// enumeration can run against any afero backend (OsFs, MemMapFs, ...).
package afero

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/input-output-hk/catalyst-forge-libs/blobfs"
)

// NewLoader creates a Loader that enumerates files from the given afero
// filesystem. A root other than "." or "/" scopes the filesystem with a
// BasePathFs before enumeration; matched paths are relative to that root.
func NewLoader(filesystem afero.Fs, root string, opts ...blobfs.Option) (*blobfs.Loader, error) {
	if filesystem == nil {
		return nil, fmt.Errorf("afero: nil filesystem")
	}
	scoped := filesystem
	if root != "" && root != "." && root != "/" {
		scoped = afero.NewBasePathFs(filesystem, root)
	}
	label := root
	if label == "" || label == "/" {
		label = "."
	}
	opts = append(opts, blobfs.WithFS(afero.NewIOFS(scoped)))
	return blobfs.New(label, opts...)
}
