package providers_test

import (
	"errors"
	"fmt"
	"testing"

	"sheet_columns/internal/providers"
)

func TestFailureKindPredicates(t *testing.T) {
	cases := []struct {
		kind          providers.FailureKind
		authorization bool
		notFound      bool
		transport     bool
	}{
		{providers.FailureAuthorization, true, false, false},
		{providers.FailureNotFound, false, true, false},
		{providers.FailureTransport, false, false, true},
	}

	for _, tc := range cases {
		err := &providers.Error{Kind: tc.kind, Message: "boom"}
		if got := providers.IsAuthorization(err); got != tc.authorization {
			t.Errorf("IsAuthorization(%s) = %v, expected %v", tc.kind, got, tc.authorization)
		}
		if got := providers.IsNotFound(err); got != tc.notFound {
			t.Errorf("IsNotFound(%s) = %v, expected %v", tc.kind, got, tc.notFound)
		}
		if got := providers.IsTransport(err); got != tc.transport {
			t.Errorf("IsTransport(%s) = %v, expected %v", tc.kind, got, tc.transport)
		}
	}
}

func TestPredicatesThroughWrapping(t *testing.T) {
	inner := &providers.Error{Kind: providers.FailureNotFound, StatusCode: 404, Message: "no such sheet"}
	wrapped := fmt.Errorf("listing failed: %w", inner)

	if !providers.IsNotFound(wrapped) {
		t.Errorf("Expected IsNotFound to see through wrapping: %v", wrapped)
	}
	if providers.IsAuthorization(wrapped) {
		t.Errorf("Wrapped not-found error misclassified as authorization")
	}
}

func TestPredicatesRejectPlainErrors(t *testing.T) {
	err := errors.New("just a string")
	if providers.IsAuthorization(err) || providers.IsNotFound(err) || providers.IsTransport(err) {
		t.Errorf("Plain error matched a failure kind: %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	err := &providers.Error{Kind: providers.FailureAuthorization, StatusCode: 401, Message: "token rejected"}
	want := "sheet fetch failed [authorization]: token rejected"
	if err.Error() != want {
		t.Errorf("Expected '%s', got '%s'", want, err.Error())
	}

	underlying := errors.New("connection refused")
	err = &providers.Error{Kind: providers.FailureTransport, Underlying: underlying}
	want = "sheet fetch failed [transport]: connection refused"
	if err.Error() != want {
		t.Errorf("Expected '%s', got '%s'", want, err.Error())
	}
	if !errors.Is(err, underlying) {
		t.Errorf("Expected Unwrap to expose the underlying error")
	}
}
