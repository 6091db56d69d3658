package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

const tokenTestSecret = "token-service-test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewTokenService(tokenTestSecret, time.Hour)
	user := &domain.User{
		ID:           "user-1",
		Email:        "driver@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         domain.RoleAdmin,
	}

	token, err := svc.IssueToken(user, "correct horse")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := svc.ValidateToken("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleAdmin)
	}

	// Lowercase scheme is accepted.
	if _, err := svc.ValidateToken("bearer " + token); err != nil {
		t.Errorf("lowercase scheme: %v", err)
	}
}

func TestIssueTokenWrongPassword(t *testing.T) {
	svc := NewTokenService(tokenTestSecret, time.Hour)
	user := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         domain.RoleUser,
	}

	_, err := svc.IssueToken(user, "battery staple")
	if !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if err.Error() != "Authentication data are not valid" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewTokenService(tokenTestSecret, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	user := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         domain.RoleUser,
	}

	token, err := svc.IssueToken(user, "correct horse")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = svc.ValidateToken("Bearer " + token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token error for expired token, got %v", err)
	}
}

func TestValidateTokenHeaderShape(t *testing.T) {
	svc := NewTokenService(tokenTestSecret, time.Hour)

	headers := []string{
		"",
		"Bearer",
		"Bearer ",
		"Basic abc.def.ghi",
		"abc.def.ghi",
	}
	for _, header := range headers {
		_, err := svc.ValidateToken(header)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("header %q: expected invalid token error, got %v", header, err)
		}
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("other-secret", time.Hour)
	svc := NewTokenService(tokenTestSecret, time.Hour)
	user := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         domain.RoleUser,
	}

	token, err := issuer.IssueToken(user, "correct horse")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := svc.ValidateToken("Bearer " + token); err == nil {
		t.Fatal("expected verification failure for foreign signature")
	}
}

func TestValidateTokenUnknownRole(t *testing.T) {
	svc := NewTokenService(tokenTestSecret, time.Hour)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "SUPERVISOR",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, err = svc.ValidateToken("Bearer " + token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token error for unknown role, got %v", err)
	}
}

func TestValidateTokenRequiredRole(t *testing.T) {
	svc := NewTokenService(tokenTestSecret, time.Hour)
	user := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "correct horse"),
		Role:         domain.RoleUser,
	}

	token, err := svc.IssueToken(user, "correct horse")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := svc.ValidateToken("Bearer "+token, domain.RoleAdmin); err == nil {
		t.Fatal("expected forbidden role error")
	}
	if _, err := svc.ValidateToken("Bearer "+token, domain.RoleAdmin, domain.RoleUser); err != nil {
		t.Fatalf("role in required set: %v", err)
	}
}
