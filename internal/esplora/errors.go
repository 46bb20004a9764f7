package esplora

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL is returned when the configured base URL cannot be used.
	ErrInvalidBaseURL = errors.New("invalid esplora base url")
	// ErrInvalidResponse is returned when a response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid esplora response")
)

// HTTPError is a non-success response from the service.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("esplora: http %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("esplora: http %d: %s", e.Status, e.Body)
}

func isNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}
