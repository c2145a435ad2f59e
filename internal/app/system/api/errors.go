package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is surfaced (via errors.Is) by any call that got a
// 401 back. By the time a caller sees it the local session has already
// been cleared by the transport.
var ErrSessionExpired = errors.New("session expired")

// StatusError is a non-2xx backend response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Code)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	return nil
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
