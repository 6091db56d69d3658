package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(0), 2)
	mw := rl.Middleware()

	e := echo.New()
	next := func(echo.Context) error { return nil }

	do := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		return mw(next)(e.NewContext(req, rec))
	}

	// Burst of two, then the bucket is empty.
	for i := 0; i < 2; i++ {
		if err := do("10.0.0.1"); err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
	}
	err := do("10.0.0.1")
	if !errors.Is(err, domain.ErrTooManyRequests) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}

	// Other clients have their own bucket.
	if err := do("10.0.0.2"); err != nil {
		t.Fatalf("second client: %v", err)
	}
}
