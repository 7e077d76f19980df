package usps

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAPI = errors.New("unknown api")
	ErrTransport  = errors.New("transport error")
	ErrAPI        = errors.New("usps api error")
)

// APIError is an error reported by the USPS service, either as an HTTP
// status or as an Error element in the response.
type APIError struct {
	Number      string
	Description string
	Source      string
	StatusCode  int
}

func (e *APIError) Error() string {
	parts := []string{ErrAPI.Error()}
	if e.Number != "" {
		parts = append(parts, e.Number)
	}
	if e.StatusCode != 0 && e.StatusCode != 200 {
		parts = append(parts, fmt.Sprintf("(http %d)", e.StatusCode))
	}
	msg := strings.Join(parts, " ")
	if e.Description != "" {
		msg += ": " + e.Description
	}
	if e.Source != "" {
		msg += " [" + e.Source + "]"
	}
	return msg
}

func (e *APIError) Unwrap() error { return ErrAPI }
