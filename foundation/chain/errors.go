package chain

import (
	"context"
	"errors"
	"fmt"
)

// ErrMalformedKeypair is returned when a keypair file decodes but does not
// hold a valid ed25519 keypair.
var ErrMalformedKeypair = errors.New("malformed keypair")

// ErrEmptyResponse is returned when the node answers without a result.
var ErrEmptyResponse = errors.New("empty response from node")

// FileError represents a failure to read or write a local keypair file.
type FileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (fe *FileError) Error() string {
	return fmt.Sprintf("keypair file %s: %s", fe.Path, fe.Err)
}

// Unwrap returns the underlying cause.
func (fe *FileError) Unwrap() error {
	return fe.Err
}

// IsFileError checks if an error of type FileError exists.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}

// GetFileError returns a copy of the FileError pointer.
func GetFileError(err error) *FileError {
	var fe *FileError
	if !errors.As(err, &fe) {
		return nil
	}
	return fe
}

// =============================================================================

// NetworkError represents a failed request against the RPC endpoint. This
// covers connection failures, timeouts, errors reported by the node and
// responses that could not be decoded.
type NetworkError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (ne *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s", ne.Op, ne.Err)
}

// Unwrap returns the underlying cause.
func (ne *NetworkError) Unwrap() error {
	return ne.Err
}

// Timeout reports whether the request ran out of time.
func (ne *NetworkError) Timeout() bool {
	return errors.Is(ne.Err, context.DeadlineExceeded)
}

// IsNetworkError checks if an error of type NetworkError exists.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// GetNetworkError returns a copy of the NetworkError pointer.
func GetNetworkError(err error) *NetworkError {
	var ne *NetworkError
	if !errors.As(err, &ne) {
		return nil
	}
	return ne
}
