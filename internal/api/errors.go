package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/readkit/pkg/readability"
)

// Binding errors.
var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrBodyTooLarge         = errors.New("request body too large")
)

// HTTPError is an error with a status code and a stable machine-readable
// code for the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// WithMessage returns a copy of e carrying msg.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

var (
	ErrBadRequest       = HTTPError{Status: http.StatusBadRequest, Code: "bad_request"}
	ErrNotFound         = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
	ErrTooLarge         = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "request_entity_too_large"}
	ErrMediaType        = HTTPError{Status: http.StatusUnsupportedMediaType, Code: "unsupported_media_type"}
	ErrEmptyInput       = HTTPError{Status: http.StatusUnprocessableEntity, Code: "empty_input"}
	ErrTooManyItems     = HTTPError{Status: http.StatusUnprocessableEntity, Code: "too_many_items"}
	ErrNotScorable      = HTTPError{Status: http.StatusUnprocessableEntity, Code: "not_scorable"}
	ErrRateLimited      = HTTPError{Status: http.StatusTooManyRequests, Code: "rate_limited"}
	ErrCanceled         = HTTPError{Status: http.StatusServiceUnavailable, Code: "request_canceled"}
	ErrNotReady         = HTTPError{Status: http.StatusServiceUnavailable, Code: "not_ready"}
	ErrInternal         = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error"}
)

// toHTTPError maps any error to the HTTPError rendered for it.
func toHTTPError(err error) HTTPError {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return ErrMediaType.WithMessage(err.Error())
	case errors.Is(err, ErrBodyTooLarge):
		return ErrTooLarge.WithMessage(err.Error())
	case errors.Is(err, ErrInvalidJSON):
		return ErrBadRequest.WithMessage(err.Error())
	case errors.Is(err, readability.ErrTooManyDocuments):
		return ErrTooManyItems.WithMessage(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCanceled.WithMessage(err.Error())
	default:
		return ErrInternal.WithMessage(http.StatusText(http.StatusInternalServerError))
	}
}
