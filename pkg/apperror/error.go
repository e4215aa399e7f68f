package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the error type every usecase failure is mapped to before it
// reaches the HTTP boundary. Field names the offending request field where
// one exists; Details carries machine-readable extras such as the allowed
// enum values or the id of a conflicting record.
type AppError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// NotFoundField reports a missing referenced entity, naming the request
// field that carried the dangling reference.
func NotFoundField(message, field string) *AppError {
	e := New(http.StatusNotFound, message, nil)
	e.Field = field
	return e
}

// MissingField reports an absent required field.
func MissingField(field string) *AppError {
	e := BadRequest(fmt.Sprintf("%s is required", field))
	e.Field = field
	return e
}

// InvalidFormat reports a malformed field value (e.g. a reference ID that is
// not a valid UUID).
func InvalidFormat(field, message string) *AppError {
	e := BadRequest(message)
	e.Field = field
	return e
}

// InvalidReference reports a reference that exists but fails a relationship
// check, distinct from NotFound.
func InvalidReference(field, message string) *AppError {
	e := BadRequest(message)
	e.Field = field
	return e
}

// InvalidEnum reports a value outside the allowed set. The allowed values
// are enumerated both in the message and in Details.
func InvalidEnum(field string, allowed []string) *AppError {
	e := BadRequest(fmt.Sprintf("Invalid %s. Must be one of: %s", field, strings.Join(allowed, ", ")))
	e.Field = field
	e.Details = map[string]interface{}{"allowed_values": allowed}
	return e
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

// DuplicateApplication reports an application that already exists for the
// same (candidate, job) pair. The existing record's id is surfaced so the
// client can look it up.
func DuplicateApplication(existingID string) *AppError {
	e := Conflict("Candidate has already applied to this job")
	e.Details = map[string]interface{}{"existing_application_id": existingID}
	return e
}

// Validation wraps formatted field validation messages.
func Validation(messages []string) *AppError {
	e := BadRequest("Validation failed")
	e.Details = map[string]interface{}{"errors": messages}
	return e
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
