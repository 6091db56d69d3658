package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

// Auth validates the bearer token against the required roles and injects the
// verified claims into the request context. A route registered without roles
// admits any authenticated user; fully public routes simply do not mount
// this middleware. A missing Authorization header is validated as an empty
// string and fails the bearer-shape check, it is not treated as public.
func Auth(tokens ports.TokenService, required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := tokens.ValidateToken(c.Request().Header.Get("Authorization"), required...)
			if err != nil {
				return err
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
