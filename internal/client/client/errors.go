package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
)

// APIError is a non-2xx response. Err is one of the sentinels above (or
// common.ErrForbidden) and Message is the server's own explanation, if any.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (status %d)", e.Err, e.Status)
	}
	return fmt.Sprintf("%v (status %d): %s", e.Err, e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func serverMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strings.TrimSpace(apiErr.Message)
	}
	return ""
}

// UserMessage renders err as a sentence fit for the end user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := serverMessage(err)

	switch {
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		return "Login failed due to invalid token"
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Please log in to continue"
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, ErrUnavailable):
		return "Network error. Please check your connection"
	case errors.Is(err, ErrUnauthorized):
		if msg != "" {
			return msg
		}
		return "Authentication failed. Please log in again"
	case errors.Is(err, common.ErrForbidden):
		return "You do not have permission to do that"
	case errors.Is(err, ErrNotFound):
		if msg != "" {
			return msg
		}
		return "Not found"
	case errors.Is(err, ErrBadRequest):
		if msg != "" {
			return msg
		}
		return "Please check your input data"
	case errors.Is(err, ErrServer):
		if msg != "" {
			return "Server error. Please try again later: " + msg
		}
		return "Server error. Please try again later"
	}
	return err.Error()
}
