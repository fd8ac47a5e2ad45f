// Package blob provides a file-backed binary record produced from a matched
// filesystem path. A blob carries a source identifier, an optional MIME
// type, and caller-supplied metadata. Path-backed blobs are lazy: file
// contents are read only when an accessor is called, so enumerating a large
// tree does not load file data up front.
package blob

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"mime"
	"os"
	"path/filepath"
)

// Blob is a file-backed binary record. It is immutable after construction
// and safe for concurrent use.
type Blob struct {
	source   string
	path     string
	fsys     fs.FS
	data     []byte
	mimeType string
	metadata map[string]string
}

// Option configures a Blob at construction time.
type Option func(*Blob)

// WithMimeType sets the blob's MIME type, overriding the extension-based
// guess.
func WithMimeType(mimeType string) Option {
	return func(b *Blob) {
		b.mimeType = mimeType
	}
}

// WithSource sets the blob's source identifier. Defaults to the backing
// path for path-backed blobs.
func WithSource(source string) Option {
	return func(b *Blob) {
		b.source = source
	}
}

// WithMetadata attaches metadata to the blob. The map is copied.
func WithMetadata(metadata map[string]string) Option {
	return func(b *Blob) {
		b.metadata = maps.Clone(metadata)
	}
}

// FromPath creates a path-backed blob for a file on the OS filesystem.
// The file is not opened; contents are read lazily by Bytes, Text, or
// NewReader. The MIME type is guessed from the file extension unless
// overridden with WithMimeType.
func FromPath(path string, opts ...Option) (*Blob, error) {
	if path == "" {
		return nil, fmt.Errorf("blob: empty path")
	}
	b := &Blob{
		source:   path,
		path:     path,
		mimeType: mime.TypeByExtension(filepath.Ext(path)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// FromFS creates a path-backed blob for a file inside the given filesystem.
// Like FromPath, contents are read lazily.
func FromFS(fsys fs.FS, path string, opts ...Option) (*Blob, error) {
	if fsys == nil {
		return nil, fmt.Errorf("blob: nil filesystem")
	}
	if !fs.ValidPath(path) {
		return nil, fmt.Errorf("blob: invalid path %q", path)
	}
	b := &Blob{
		source:   path,
		path:     path,
		fsys:     fsys,
		mimeType: mime.TypeByExtension(filepath.Ext(path)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// FromData creates a data-backed blob from an in-memory payload. The slice
// is used as-is; callers must not mutate it afterwards.
func FromData(data []byte, opts ...Option) *Blob {
	b := &Blob{data: data}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Source returns the blob's source identifier. For path-backed blobs this
// defaults to the backing path; for data-backed blobs it is empty unless
// set with WithSource.
func (b *Blob) Source() string {
	return b.source
}

// Path returns the backing file path, or the empty string for data-backed
// blobs.
func (b *Blob) Path() string {
	return b.path
}

// MimeType returns the blob's MIME type, or the empty string when unknown.
func (b *Blob) MimeType() string {
	return b.mimeType
}

// Metadata returns a copy of the blob's metadata. May be nil.
func (b *Blob) Metadata() map[string]string {
	return maps.Clone(b.metadata)
}

// Bytes returns the blob's contents. Path-backed blobs read the file on
// each call; read failures (file vanished, permission denied) surface here
// rather than at construction.
func (b *Blob) Bytes() ([]byte, error) {
	if b.path == "" {
		return b.data, nil
	}
	data, err := b.readFile()
	if err != nil {
		return nil, fmt.Errorf("blob: read %q: %w", b.path, err)
	}
	return data, nil
}

// Text returns the blob's contents as a string.
func (b *Blob) Text() (string, error) {
	data, err := b.Bytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewReader returns a reader over the blob's contents. The caller must
// close it. Path-backed blobs open the backing file; data-backed blobs
// stream from memory.
func (b *Blob) NewReader() (io.ReadCloser, error) {
	if b.path == "" {
		return io.NopCloser(bytes.NewReader(b.data)), nil
	}
	f, err := b.open()
	if err != nil {
		return nil, fmt.Errorf("blob: open %q: %w", b.path, err)
	}
	return f, nil
}

func (b *Blob) readFile() ([]byte, error) {
	if b.fsys != nil {
		return fs.ReadFile(b.fsys, b.path)
	}
	return os.ReadFile(b.path)
}

func (b *Blob) open() (io.ReadCloser, error) {
	if b.fsys != nil {
		return b.fsys.Open(b.path)
	}
	return os.Open(b.path)
}
