package adapter

import "errors"

// ErrTransport is wrapped by every error that prevented a reply envelope
// from being obtained.
var ErrTransport = errors.New("transport error")

// Status errors. Each of them is returned together with [ErrTransport].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrMalformedResponse means a 2xx reply that is not a valid envelope.
var ErrMalformedResponse = errors.New("malformed response")
