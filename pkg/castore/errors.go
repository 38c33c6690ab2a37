package castore

import (
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrTransportRequired = errors.New("transport is required")
	ErrNoResponse        = errors.New("transport returned no response")
	ErrInvalidPayload    = errors.New("invalid JSON payload")
	ErrInvalidArguments  = errors.New("args are illegal")
	ErrSlideRequired     = errors.New("slide is required")
	ErrCollectionMissing = errors.New("collection type is required")
	ErrRecordRejected    = errors.New("record rejected by validator")
	ErrInvalidArray      = errors.New("invalid array literal")
)

// IsFailure checks if the error is an HTTP-level failure.
func IsFailure(err error) bool {
	failure := &Failure{}

	return errors.As(err, &failure)
}

// StatusCode returns the HTTP status carried by a failure error, or 0.
func StatusCode(err error) int {
	failure := &Failure{}
	if errors.As(err, &failure) {
		return failure.StatusCode
	}

	return 0
}
