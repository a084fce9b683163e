// Package apperr defines the single algebraic error type used by every
// non-trivial function in the service that can fail, plus the mapping
// from that type to HTTP status codes and the ERR-1 JSON envelope.
package apperr

import (
	"fmt"
	"strings"
)

// Kind tags the variant of an AppError, used for the ERR-1 envelope's
// "type" field and for protocol status mapping.
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindBadRequest          Kind = "BadRequest"
	KindValidationError     Kind = "ValidationError"
	KindUnauthorized        Kind = "Unauthorized"
	KindForbidden           Kind = "Forbidden"
	KindConflict            Kind = "Conflict"
	KindServiceUnavailable  Kind = "ServiceUnavailable"
	KindConfigurationError  Kind = "ConfigurationError"
	KindSerializationError  Kind = "SerializationError"
	KindNetworkError        Kind = "NetworkError"
	KindTimeoutError        Kind = "TimeoutError"
	KindInternalError       Kind = "InternalError"
)

// AppError is the single error type every repository, service, strategy
// and handler in this codebase propagates. It is never wrapped in a
// generic error before crossing a layer boundary.
type AppError struct {
	Kind       Kind
	EntityType string
	EntityID   string
	Field      string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e AppError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return string(e.Kind)
}

// Unwrap allows errors.Is/errors.As to see through to the origin error.
func (e AppError) Unwrap() error {
	return e.Err
}

// NotFound builds a NotFound AppError for the given entity/id pair.
func NotFound(entityType, id string) AppError {
	return AppError{
		Kind:       KindNotFound,
		EntityType: entityType,
		EntityID:   id,
		Message:    fmt.Sprintf("%s with id %s was not found", entityType, id),
	}
}

// BadRequest builds a BadRequest AppError.
func BadRequest(msg string) AppError {
	return AppError{Kind: KindBadRequest, Message: msg}
}

// Validation builds a ValidationError AppError for a single field.
func Validation(field, msg string) AppError {
	return AppError{Kind: KindValidationError, Field: field, Message: msg}
}

// Unauthorized builds an Unauthorized AppError.
func Unauthorized(msg string) AppError {
	if msg == "" {
		msg = "missing or invalid authentication token"
	}

	return AppError{Kind: KindUnauthorized, Message: msg}
}

// Forbidden builds a Forbidden AppError.
func Forbidden(msg string) AppError {
	if msg == "" {
		msg = "the authenticated caller is not allowed to perform this action"
	}

	return AppError{Kind: KindForbidden, Message: msg}
}

// Conflict builds a Conflict AppError.
func Conflict(entityType, msg string) AppError {
	return AppError{Kind: KindConflict, EntityType: entityType, Message: msg}
}

// ServiceUnavailable builds a ServiceUnavailable AppError.
func ServiceUnavailable(msg string) AppError {
	return AppError{Kind: KindServiceUnavailable, Message: msg}
}

// Configuration builds a ConfigurationError AppError.
func Configuration(msg string) AppError {
	return AppError{Kind: KindConfigurationError, Message: msg}
}

// Serialization builds a SerializationError AppError.
func Serialization(err error) AppError {
	return AppError{Kind: KindSerializationError, Message: "failed to encode or decode payload", Err: err}
}

// Network builds a NetworkError AppError.
func Network(err error) AppError {
	return AppError{Kind: KindNetworkError, Message: "an outbound network call failed", Err: err}
}

// Timeout builds a TimeoutError AppError.
func Timeout(msg string) AppError {
	if msg == "" {
		msg = "the operation exceeded its deadline"
	}

	return AppError{Kind: KindTimeoutError, Message: msg}
}

// Internal builds an InternalError AppError, wrapping the origin error
// without leaking its message to callers by default.
func Internal(entityType string, err error) AppError {
	return AppError{
		Kind:       KindInternalError,
		EntityType: entityType,
		Message:    "the server encountered an unexpected error",
		Err:        err,
	}
}

// As extracts an AppError from err, returning it and true if err is (or
// wraps) an AppError, or a generic InternalError wrapping err otherwise.
func As(err error) AppError {
	if err == nil {
		return AppError{}
	}

	var ae AppError
	if ok := asAppError(err, &ae); ok {
		return ae
	}

	return Internal("", err)
}

func asAppError(err error, target *AppError) bool {
	for err != nil {
		if ae, ok := err.(AppError); ok {
			*target = ae
			return true
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}

		err = u.Unwrap()
	}

	return false
}

// IsNotFound reports whether err is an AppError of kind NotFound.
func IsNotFound(err error) bool {
	return As(err).Kind == KindNotFound
}
