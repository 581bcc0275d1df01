// ABOUTME: Error types for backend API calls
// ABOUTME: Distinguishes backend rejections from transport failures

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports a non-2xx response from the backend. Transport
// failures (network errors, timeouts) are returned as plain wrapped
// errors, not FetchErrors.
type FetchError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
}

// IsUnauthorized reports whether err is a backend HTTP 401 rejection.
func IsUnauthorized(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.StatusCode == http.StatusUnauthorized
}

// UserMessage returns a string suitable for showing to the operator.
// Pages do not distinguish error subtypes beyond this.
func UserMessage(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return "Request failed. Please try again."
}
