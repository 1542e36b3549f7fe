package gemini

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies Gemini API failures so callers can branch on a
// structured kind instead of matching provider error strings.
type ErrorKind string

const (
	ErrorKindAuth    ErrorKind = "auth"
	ErrorKindQuota   ErrorKind = "quota"
	ErrorKindUnknown ErrorKind = "unknown"
)

// APIError is a non-2xx response from the Gemini API.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error %d (%s): %s", e.StatusCode, e.Kind, e.Body)
}

// classifyError maps an HTTP status to an ErrorKind. Body inspection is a
// last-resort fallback for providers that hide the real status behind 400s.
func classifyError(statusCode int, body string) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorKindAuth
	case http.StatusTooManyRequests:
		return ErrorKindQuota
	}

	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "api_key"):
		return ErrorKindAuth
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate limit"):
		return ErrorKindQuota
	}

	return ErrorKindUnknown
}
