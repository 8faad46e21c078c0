package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried by APIError when the registry did not supply one.
const (
	CodeTransport   = "transport"
	CodeBadResponse = "bad_response"
	CodeBadRequest  = "bad_request"
	CodeHTTPStatus  = "http_status"
	CodeConfig      = "config"
)

// opConfigure names the failure of building a client before any call.
const opConfigure = "configure client"

// APIError is the single error kind returned by registry clients.
//
// Status is the HTTP status, or 0 when no response was received.
type APIError struct {
	Operation  string
	Status     int
	Code       string
	Message    string
	Underlying error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Underlying != nil {
		msg = e.Underlying.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("folkv3 %s failed [%d %s]: %s", e.Operation, e.Status, e.Code, msg)
	}
	return fmt.Sprintf("folkv3 %s failed [%s]: %s", e.Operation, e.Code, msg)
}

func (e *APIError) Unwrap() error {
	return e.Underlying
}

func newAPIError(operation string, status int, code, message string, underlying error) *APIError {
	return &APIError{
		Operation:  operation,
		Status:     status,
		Code:       code,
		Message:    message,
		Underlying: underlying,
	}
}

// IsNotFound reports whether err is an APIError with status 404.
// Lookups never return it; they return a nil record instead.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether the registry rejected the caller (401 or 403).
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}
	return false
}

var errMissingSince = errors.New("since is required")
