package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection reset by peer")
	err := Wrap(ErrInternalServer, cause)

	if err.Code != "INTERNAL_ERROR" {
		t.Errorf("expected code INTERNAL_ERROR, got %s", err.Code)
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", err.StatusCode)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to reach the cause")
	}
	if !errors.Is(err, ErrInternalServer) {
		t.Error("expected wrapped error to match its sentinel")
	}
	if ErrInternalServer.Internal != nil {
		t.Error("sentinel must not be mutated by Wrap")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "installment count must be at least 2")

	if err.Error() != "installment count must be at least 2" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", err.StatusCode)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected error to match ErrInvalidInput")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("did not expect error to match ErrNotFound")
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = fmt.Errorf("handler: %w", Wrap(ErrTransactionNotFound, nil))

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatal("expected errors.As to find the AppError")
	}
	if appErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", appErr.StatusCode)
	}
}
