package nts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAPI is the base error kind for every failure this package reports.
// Callers can match the whole taxonomy with errors.Is(err, nts.ErrAPI) and
// narrow to a specific kind with errors.As.
var ErrAPI = errors.New("nts api error")

// ResponseError reports a non-2xx response from the API. It carries the
// numeric status code and the raw response body.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("nts api returned %d: %s", e.StatusCode, bodySnippet(e.Body))
}

// Is reports membership in the base error kind.
func (e *ResponseError) Is(target error) bool { return target == ErrAPI }

// TimeoutError reports that a request did not complete within the
// caller-specified duration.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nts api request timed out: %v", e.Err)
	}
	return "nts api request timed out"
}

// Is reports membership in the base error kind.
func (e *TimeoutError) Is(target error) bool { return target == ErrAPI }

func (e *TimeoutError) Unwrap() error { return e.Err }

// bodySnippet trims a response body for inclusion in error messages.
func bodySnippet(body string) string {
	const maxLen = 512
	s := strings.TrimSpace(body)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
