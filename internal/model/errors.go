package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidResult marks malformed input handed to the aggregator.
	ErrInvalidResult = errors.New("invalid result")
	// ErrThresholdViolation marks a failed quality gate.
	ErrThresholdViolation = errors.New("threshold violation")
	// ErrArtifactIO marks a failure to write or read a report fragment.
	ErrArtifactIO = errors.New("artifact io")
	// ErrRemoteAPI marks a failure talking to the review system.
	ErrRemoteAPI = errors.New("remote api")
)

// Remote operations reported by RemoteAPIError.
const (
	OpIdentity = "identity"
	OpList     = "list"
	OpDelete   = "delete"
	OpCreate   = "create"
)

// RemoteAPIError wraps a failed review-system call together with the
// operation that failed.
type RemoteAPIError struct {
	Op  string
	Err error
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote api %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *RemoteAPIError) Unwrap() error {
	return e.Err
}

// Is matches ErrRemoteAPI.
func (e *RemoteAPIError) Is(target error) bool {
	return target == ErrRemoteAPI
}
