package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

// ctxClaims extracts the token claims injected by the Auth middleware. An
// empty role means the middleware did not run for this route, which is a
// wiring bug surfaced as 401 rather than a silent grant.
func ctxClaims(c echo.Context) (ports.TokenClaims, error) {
	role, _ := c.Get("role").(domain.Role)
	if role == "" {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ := c.Get("user_id").(string)
	return ports.TokenClaims{UserID: userID, Role: role}, nil
}

// pageFromQuery reads limit/offset query parameters, tolerating absence.
func pageFromQuery(c echo.Context) ports.Page {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return ports.Page{Limit: limit, Offset: offset}
}
