package datapath

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// Has, Get, Set and Forget never fail; these errors come from codecs and
// in-place transforms.
var (
	// ErrMissingHasher indicates no hasher is registered for an algorithm.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingMasker indicates no masker is registered for a mask type.
	ErrMissingMasker = errors.New("missing masker")

	// ErrUnmarshal indicates the codec failed to decode a document.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to encode a document.
	ErrMarshal = errors.New("marshal failed")

	// ErrHash indicates hashing of a value failed.
	ErrHash = errors.New("hash failed")

	// ErrMask indicates masking of a value failed.
	ErrMask = errors.New("mask failed")

	// ErrNotString indicates a transform that needs a string met another type.
	ErrNotString = errors.New("value is not a string")
)

// ConfigError represents a transform configuration error.
// It wraps a sentinel error with the algorithm that was missing.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrMissingHasher, ErrMissingMasker)
	Algorithm string // Algorithm or mask type that was missing
}

func (e *ConfigError) Error() string {
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents an error while transforming a value in place.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrHash, ErrMask)
	Path      string // Path being transformed
	Operation string // Operation that failed (hash, mask)
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s path %s: %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s path %s", e.Operation, e.Path)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for missing handler scenarios.
func newConfigError(sentinel error, algorithm string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
	}
}

// newTransformError creates a TransformError for in-place transform failures.
func newTransformError(sentinel error, operation, path string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Path:      path,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
