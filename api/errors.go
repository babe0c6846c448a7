package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend answers 401. By the time a
// caller sees it, the persisted session state has already been cleared and
// the unauthorized hook has fired; the only recovery is a fresh login.
var ErrUnauthorized = errors.New("unauthorized")

// RequestError is any non-2xx response other than 401. Message carries the
// server-provided body text, surfaced verbatim to the user near whatever
// action triggered it.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with %d", e.Status)
}

// TransportError is a network-level failure: the request produced no
// response at all. Callers surface it as a generic "failed, please retry";
// nothing in this layer retries automatically.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
