package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesOnKind(t *testing.T) {
	err := NewError(KindNotFound, "user %q not found", "42")

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound kind match")
	}
	if errors.Is(err, ErrOutdated) {
		t.Fatalf("kind should not match a different sentinel")
	}
	if err.Error() != `user "42" not found` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestWrapError_KeepsCause(t *testing.T) {
	cause := fmt.Errorf("signature invalid")
	err := WrapError(KindInvalidToken, cause, "token verification failed: %v", cause)

	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected InvalidToken kind match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected unwrap to reach the cause")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError([]FieldViolation{
		{Field: "email", Message: "email must be a valid email"},
		{Field: "password", Message: "password is required"},
	})

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected Validation kind match")
	}
	if err.Message != "Argument Validation Error" {
		t.Fatalf("unexpected message: %s", err.Message)
	}
	if len(err.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(err.Violations))
	}
}
