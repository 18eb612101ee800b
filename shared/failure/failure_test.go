package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("broken payload")), wantCode: http.StatusBadRequest},
		{name: "bad request from string", err: failure.BadRequestFromString("broken payload"), wantCode: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("no token"), wantCode: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("not allowed"), wantCode: http.StatusForbidden},
		{name: "not found", err: failure.NotFound("booking"), wantCode: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("room already booked"), wantCode: http.StatusConflict},
		{name: "internal error", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError},
		{name: "unimplemented", err: failure.Unimplemented("Frobnicate"), wantCode: http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected an error, got nil")
			}

			if got := failure.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, got)
			}

			if tt.err.Error() == "" {
				t.Error("expected a non-empty message")
			}
		})
	}
}

func TestNilErrorsProduceNil(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("BadRequest(nil) should be nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("InternalError(nil) should be nil, got %v", err)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for plain errors, got %d", http.StatusInternalServerError, got)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("outer context: %w", failure.NotFound("room"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep its code, got %d", got)
	}
}
