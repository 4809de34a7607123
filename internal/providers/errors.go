package providers

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a sheet fetch failed.
type FailureKind string

const (
	FailureAuthorization FailureKind = "authorization"
	FailureNotFound      FailureKind = "not_found"
	FailureTransport     FailureKind = "transport"
)

// Error is a fetch failure tagged with its kind, so callers and tests can
// tell an authorization failure from a missing sheet without matching
// message text.
type Error struct {
	Kind       FailureKind
	StatusCode int
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sheet fetch failed [%s]: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("sheet fetch failed [%s]: %v", e.Kind, e.Underlying)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func kindOf(err error) (FailureKind, bool) {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Kind, true
	}
	return "", false
}

// IsAuthorization reports whether err is an invalid-credential or
// missing-permission failure.
func IsAuthorization(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == FailureAuthorization
}

// IsNotFound reports whether err means the sheet does not exist or is not
// visible to the credential.
func IsNotFound(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == FailureNotFound
}

// IsTransport reports whether err is a network, service-availability, or
// malformed-response failure.
func IsTransport(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == FailureTransport
}
