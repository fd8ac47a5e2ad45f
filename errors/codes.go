package errors

import "errors"

// ErrorCode represents a specific enumeration error condition. Error codes
// are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeInvalidArgument indicates a rejected construction-time value.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodePathNotFound indicates the root directory does not exist.
	CodePathNotFound ErrorCode = "PATH_NOT_FOUND"

	// CodeNotDirectory indicates the root exists but is not a directory.
	CodeNotDirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeMaterialization indicates the blob factory failed for a matched
	// path.
	CodeMaterialization ErrorCode = "MATERIALIZATION_FAILED"

	// CodeTraversal indicates the walk itself failed (unreadable subtree
	// in strict mode, cancellation).
	CodeTraversal ErrorCode = "TRAVERSAL_FAILED"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Code classifies err into an ErrorCode. It returns the empty code for a
// nil error.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case IsInvalidArgument(err):
		return CodeInvalidArgument
	case IsNotExist(err):
		return CodePathNotFound
	case IsNotDirectory(err):
		return CodeNotDirectory
	}
	var opErr *Error
	if errors.As(err, &opErr) {
		if opErr.Op == "materialize" {
			return CodeMaterialization
		}
		return CodeTraversal
	}
	return CodeUnknown
}
