package apperror

import (
	"net/http"
	"strings"
)

// Kind classifies an operation failure so callers can branch on it
// instead of parsing message text.
type Kind string

const (
	KindValidation  Kind = "validation_failed"
	KindNotFound    Kind = "not_found"
	KindPersistence Kind = "persistence_failed"
)

type AppError struct {
	Kind     Kind     `json:"kind"`
	Code     int      `json:"code"`
	Messages []string `json:"messages"`
	Err      error    `json:"-"`
}

func (e *AppError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, err error, messages ...string) *AppError {
	return &AppError{
		Kind:     kind,
		Code:     code,
		Messages: messages,
		Err:      err,
	}
}

// ValidationFailed carries every rule message collected for the request.
func ValidationFailed(messages ...string) *AppError {
	return New(KindValidation, http.StatusBadRequest, nil, messages...)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, nil, message)
}

// Persistence covers both soft failures (no rows affected) and storage
// errors surfaced by the driver.
func Persistence(err error, messages ...string) *AppError {
	return New(KindPersistence, http.StatusBadRequest, err, messages...)
}

func Internal(err error) *AppError {
	return New(KindPersistence, http.StatusInternalServerError, err, "Internal Server Error")
}
