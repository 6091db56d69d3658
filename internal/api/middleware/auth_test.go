package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

type stubTokenService struct {
	claims ports.TokenClaims
	err    error
}

func (s *stubTokenService) IssueToken(*domain.User, string) (string, error) {
	return "", errors.New("not used")
}

func (s *stubTokenService) ValidateToken(string, ...domain.Role) (ports.TokenClaims, error) {
	return s.claims, s.err
}

func TestAuthInjectsClaims(t *testing.T) {
	tokens := &stubTokenService{claims: ports.TokenClaims{UserID: "user-7", Role: domain.RoleAdmin}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUser string
	var gotRole domain.Role
	next := func(c echo.Context) error {
		gotUser = c.Get("user_id").(string)
		gotRole = c.Get("role").(domain.Role)
		return nil
	}

	if err := Auth(tokens)(next)(c); err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if gotUser != "user-7" {
		t.Errorf("user_id = %q, want %q", gotUser, "user-7")
	}
	if gotRole != domain.RoleAdmin {
		t.Errorf("role = %q, want %q", gotRole, domain.RoleAdmin)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	tokens := &stubTokenService{err: domain.NewError(domain.KindInvalidToken, "token verification failed")}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(echo.Context) error {
		called = true
		return nil
	}

	err := Auth(tokens)(next)(c)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if called {
		t.Error("next was called despite rejection")
	}
}
