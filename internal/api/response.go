package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Response is a settled API call. Either the request never produced an
// HTTP status (Err is set) or the server answered with StatusCode and Body.
type Response struct {
	StatusCode int
	Status     string
	Path       string
	Body       []byte
	Err        error
}

// OK reports a 2xx answer.
func (r Response) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Unauthorized reports a response in the authentication failure class.
func (r Response) Unauthorized() bool {
	return r.Err == nil && (r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden)
}

// StatusError describes a non-2xx answer.
type StatusError struct {
	Code    int
	Path    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("api returned status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Code, e.Message)
}

// IsUnauthorized reports whether err is a StatusError in the auth failure class.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden
}

// ErrorMessage extracts the message a failed response carries: the
// "message" member of a JSON body, else the HTTP status text.
func ErrorMessage(r Response) string {
	if r.Err != nil {
		return r.Err.Error()
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}
	if text := http.StatusText(r.StatusCode); text != "" {
		return text
	}
	if status := strings.TrimSpace(r.Status); status != "" {
		return status
	}
	return fmt.Sprintf("status %d", r.StatusCode)
}

// Decode turns a settled response into a value of type T.
func Decode[T any](r Response) (T, error) {
	var zero T
	if r.Err != nil {
		return zero, r.Err
	}
	if !r.OK() {
		return zero, &StatusError{Code: r.StatusCode, Path: r.Path, Message: ErrorMessage(r)}
	}
	var payload T
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}
