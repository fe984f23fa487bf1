// Package errors provides structured, coded errors for the arbor CLI
// and HTTP facade.
//
// The tree engine itself reports failures through sentinel errors in
// [github.com/arborlab/arbor/pkg/tree]; this package sits at the outer
// boundary and attaches machine-readable codes so the CLI can pick exit
// statuses and the server can pick HTTP statuses.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: input validation failures
//   - NOT_FOUND_*: resource or path not found
//   - CONFLICT_*: structural or configuration conflicts
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "bad separator: %q", sep)
//
//	// Wrap engine errors at the boundary:
//	if err := modify.Shift(root, from, to, opts); err != nil {
//	    return errors.FromTree(err, "shift %s", from)
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arborlab/arbor/pkg/tree"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the boundary surfaces.
const (
	// Input validation
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodePathNotFound Code = "PATH_NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Conflicts
	ErrCodeConflict     Code = "CONFLICT"
	ErrCodeStructural   Code = "CONFLICT_STRUCTURAL"
	ErrCodeDuplicate    Code = "CONFLICT_DUPLICATE"
	ErrCodeBadFlagCombo Code = "CONFLICT_FLAGS"

	// Internal
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable code
	Message string // human-readable message
	Cause   error  // underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// CodeOf extracts the code from an error chain.
// Returns ErrCodeInternal for errors without a code.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// FromTree classifies a tree engine error into a coded boundary error.
// Unrecognized errors map to ErrCodeInternal.
func FromTree(cause error, format string, args ...any) *Error {
	code := ErrCodeInternal
	switch {
	case errors.Is(cause, tree.ErrPathNotFound), errors.Is(cause, tree.ErrMissingSource):
		code = ErrCodePathNotFound
	case errors.Is(cause, tree.ErrPathAmbiguous), errors.Is(cause, tree.ErrMalformedPath):
		code = ErrCodeInvalidPath
	case errors.Is(cause, tree.ErrInvalidName):
		code = ErrCodeInvalidInput
	case tree.IsDuplicate(cause):
		code = ErrCodeDuplicate
	case tree.IsStructural(cause):
		code = ErrCodeStructural
	case errors.Is(cause, tree.ErrConfigConflict), errors.Is(cause, tree.ErrSepMismatch):
		code = ErrCodeBadFlagCombo
	}
	return Wrap(code, cause, format, args...)
}

// HTTPStatus maps an error's code to an HTTP status for the facade.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidPath, ErrCodeInvalidFormat, ErrCodeBadFlagCombo:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodePathNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeStructural, ErrCodeDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
