package afero

import (
	"context"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/blobfs"
)

func testFS(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"a.txt":       "alpha",
		"b.md":        "bravo",
		"sub/c.txt":   "charlie",
		".hidden.txt": "hidden",
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader(testFS(t), ".")
	require.NoError(t, err)

	var paths []string
	for b, err := range loader.Enumerate(context.Background()) {
		require.NoError(t, err)
		paths = append(paths, b.Path())

		content, readErr := b.Text()
		require.NoError(t, readErr)
		assert.NotEmpty(t, content)
	}
	sort.Strings(paths)
	assert.Equal(t, []string{"a.txt", "b.md", "sub/c.txt"}, paths)

	n, err := loader.CountMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNewLoader_ScopedRoot(t *testing.T) {
	loader, err := NewLoader(testFS(t), "sub")
	require.NoError(t, err)

	var paths []string
	for b, err := range loader.Enumerate(context.Background()) {
		require.NoError(t, err)
		paths = append(paths, b.Path())
	}
	assert.Equal(t, []string{"c.txt"}, paths,
		"matched paths are relative to the scoped root")
}

func TestNewLoader_Suffixes(t *testing.T) {
	loader, err := NewLoader(testFS(t), ".", blobfs.WithSuffixes(".md"))
	require.NoError(t, err)

	n, err := loader.CountMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewLoader_NilFilesystem(t *testing.T) {
	loader, err := NewLoader(nil, ".")
	require.Error(t, err)
	assert.Nil(t, loader)
}
