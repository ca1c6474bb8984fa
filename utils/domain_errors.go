package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain error kinds shared across services, repositories and handlers.
// Handlers map them onto HTTP statuses with HTTPStatus.

// InvalidInputError signals a malformed or out-of-range request value.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError signals that a requested slot is already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageUnavailableError signals that the persistence layer could not be
// reached or returned an inconclusive result. Availability checks fail closed
// with this error rather than reporting a slot as free.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps a domain error to its response status code.
func HTTPStatus(err error) int {
	var invalid *InvalidInputError
	var notFound *NotFoundError
	var conflict *ConflictError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
