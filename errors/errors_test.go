package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with path",
			err:  NewPathError("count", "/data/docs", fs.ErrNotExist),
			want: "blobfs.count /data/docs: file does not exist",
		},
		{
			name: "without path",
			err:  New("new", ErrInvalidArgument),
			want: "blobfs.new: invalid argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := fs.ErrPermission
	err := NewPathError("enumerate", "/data", underlying)

	assert.ErrorIs(t, err, fs.ErrPermission)

	var opErr *Error
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "enumerate", opErr.Op)
	assert.Equal(t, "/data", opErr.Path)
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "invalid argument",
			err:  New("new", ErrInvalidArgument),
			want: CodeInvalidArgument,
		},
		{
			name: "path not found",
			err:  NewPathError("count", "/x", fs.ErrNotExist),
			want: CodePathNotFound,
		},
		{
			name: "not a directory",
			err:  NewPathError("enumerate", "/x", ErrNotDirectory),
			want: CodeNotDirectory,
		},
		{
			name: "materialization failure",
			err:  NewPathError("materialize", "/x/a.txt", errors.New("open failed")),
			want: CodeMaterialization,
		},
		{
			name: "traversal failure",
			err:  NewPathError("enumerate", "/x", fs.ErrPermission),
			want: CodeTraversal,
		},
		{
			name: "unclassified",
			err:  errors.New("boom"),
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsInvalidArgument(New("new", ErrInvalidArgument)))
	assert.False(t, IsInvalidArgument(New("new", fs.ErrNotExist)))

	assert.True(t, IsNotExist(NewPathError("count", "/x", fs.ErrNotExist)))
	assert.False(t, IsNotExist(New("count", ErrNotDirectory)))

	assert.True(t, IsNotDirectory(New("count", ErrNotDirectory)))
	assert.False(t, IsNotDirectory(New("count", fs.ErrNotExist)))
}
