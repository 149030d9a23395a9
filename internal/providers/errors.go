package providers

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates a well-formed provider response that carried
// no usable text.
var ErrEmptyResponse = errors.New("response contained no generated text")

// RequestError is a non-success HTTP status from a provider, carrying the
// provider's error body verbatim.
type RequestError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s API request failed (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// IsRequestError checks whether err is a provider HTTP failure.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// ParseError is a provider response body that did not match the expected
// shape.
type ParseError struct {
	Provider string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s API response: %v", e.Provider, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
