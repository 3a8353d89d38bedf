package randomuser

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a fetch failed. Callers treat every kind the
// same way; the kind exists for diagnostics.
type FailureKind int

const (
	FailureNetwork FailureKind = iota // transport error, cancelled or timed out request
	FailureStatus                     // non-2xx response
	FailureDecode                     // body could not be read or parsed
	FailureAPI                        // endpoint returned its own error envelope
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	case FailureAPI:
		return "api"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// FetchError is the single failure type returned by FetchProfiles.
type FetchError struct {
	Kind       FailureKind
	RequestID  string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureStatus:
		return fmt.Sprintf("fetch profiles (request %s): unexpected status %d: %v", e.RequestID, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("fetch profiles (request %s): %s: %v", e.RequestID, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchFailure reports whether err is, or wraps, a *FetchError.
func IsFetchFailure(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
