package places

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse means the body could not be parsed as JSON.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrMissingField means the JSON parsed but a required field was absent.
	ErrMissingField = errors.New("missing required field")
	// ErrNoPlaceID means a detail lookup was requested for a record without identifier.
	ErrNoPlaceID = errors.New("restaurant has no place id")
)

// TransportError reports a failure to obtain a response at all: network,
// DNS, timeout, or a broken body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a response that arrived but signals failure, either
// through the HTTP status or the body's "status" field.
type APIError struct {
	HTTPStatus int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	msg := "api error: " + e.Status
	if e.HTTPStatus != 0 {
		msg = fmt.Sprintf("api error: http %d", e.HTTPStatus)
		if e.Status != "" {
			msg += " " + e.Status
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func missingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}
