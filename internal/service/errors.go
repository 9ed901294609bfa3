package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// AuthError reports rejected credentials (HTTP 401/403). Never retried.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error (status %d): %s", e.StatusCode, e.Message)
}

// RemoteError reports a request the service rejected, e.g. an unknown
// info-type name. Never retried.
type RemoteError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("service error %s (status %d): %s", e.Status, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service error (status %d): %s", e.StatusCode, e.Message)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsRemoteError checks if an error is a rejection returned by the service.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// errorEnvelope is the service's JSON error body:
// {"error":{"code":400,"message":"...","status":"INVALID_ARGUMENT"}}.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newRemoteError(statusCode int, body []byte) *RemoteError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		return &RemoteError{StatusCode: statusCode, Status: env.Error.Status, Message: env.Error.Message}
	}
	return &RemoteError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}
