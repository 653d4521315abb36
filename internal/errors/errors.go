package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the failure domain of a classification error
type Kind string

const (
	// KindModel covers graph deserialization, shape binding and execution failures
	KindModel Kind = "model"
	// KindImage covers input bytes that cannot be decoded as an image
	KindImage Kind = "image"
	// KindIO covers failures loading the model or label resources
	KindIO Kind = "io"
	// KindUnclassified means the model produced a score vector with no maximum
	KindUnclassified Kind = "unclassified"
	// KindFatal marks an unrecoverable model/label-set mismatch in the deployed artifact
	KindFatal Kind = "fatal"
	// KindUnknown is the catch-all for failures outside the taxonomy
	KindUnknown Kind = "unknown"
)

// ClassificationError is the closed error type propagated by the pipeline.
// Every fallible call site maps its underlying error into exactly one Kind.
type ClassificationError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ClassificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *ClassificationError) Unwrap() error {
	return e.Cause
}

// NewModelError creates a model-domain error
func NewModelError(message string, cause error) *ClassificationError {
	return &ClassificationError{
		Kind:    KindModel,
		Message: message,
		Cause:   cause,
	}
}

// NewImageError creates an image-decode error
func NewImageError(message string, cause error) *ClassificationError {
	return &ClassificationError{
		Kind:    KindImage,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError creates a resource-loading error
func NewIOError(message string, cause error) *ClassificationError {
	return &ClassificationError{
		Kind:    KindIO,
		Message: message,
		Cause:   cause,
	}
}

// NewUnclassifiedError reports a score vector with no maximum element
func NewUnclassifiedError() *ClassificationError {
	return &ClassificationError{
		Kind:    KindUnclassified,
		Message: "model produced an empty score vector",
	}
}

// NewFatalError reports a model/label-set mismatch. Callers must not
// continue with a substitute label after receiving one.
func NewFatalError(message string, cause error) *ClassificationError {
	return &ClassificationError{
		Kind:    KindFatal,
		Message: message,
		Cause:   cause,
	}
}

// NewUnknownError wraps a failure that fits no other domain
func NewUnknownError(message string, cause error) *ClassificationError {
	return &ClassificationError{
		Kind:    KindUnknown,
		Message: message,
		Cause:   cause,
	}
}

// KindOf extracts the Kind from an error, defaulting to KindUnknown
func KindOf(err error) Kind {
	var cerr *ClassificationError
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindUnknown
}

// IsKind checks whether the error belongs to the given failure domain
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsFatal reports whether the error is an unrecoverable artifact mismatch
func IsFatal(err error) bool {
	return IsKind(err, KindFatal)
}
