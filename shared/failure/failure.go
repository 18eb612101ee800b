package failure

import (
	"errors"
	"net/http"
)

// Failure carries an HTTP status code alongside the message so the
// transport layer can map service errors to responses without
// inspecting error strings.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ForbiddenError is the generic RBAC rejection used by the auth middleware.
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps a validation or parsing error. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	}
}

// BadRequestFromString builds a bad request failure from a plain message.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized signals a missing or invalid credential.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// Forbidden signals an authenticated caller without the required role.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// NotFound signals that the named entity does not exist.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// Conflict signals a state collision, such as a double booking.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// InternalError wraps an unexpected error. A nil error stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// Unimplemented marks an operation that is declared but not built yet.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// GetCode extracts the HTTP status code from an error chain, defaulting
// to 500 for errors that did not originate here.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
