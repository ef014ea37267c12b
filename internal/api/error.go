package api

import "fmt"

// Error is returned for any non-success HTTP response from the backend.
// Message overrides the default status-based text when set; the upload path
// uses this to keep its historical, detail-free message while callers can
// still branch on StatusCode.
type Error struct {
	StatusCode int
	StatusText string
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.StatusText)
}
