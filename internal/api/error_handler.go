package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// errorExtensions carries the machine-readable part of the error envelope.
type errorExtensions struct {
	Code      string          `json:"code"`
	Exception *errorException `json:"exception,omitempty"`
}

type errorException struct {
	ValidationErrors []domain.FieldViolation `json:"validationErrors"`
}

// errorResponse is the canonical error envelope for all API errors:
// {"message": ..., "extensions": {"code": ..., "exception": {...}}}.
type errorResponse struct {
	Message    string          `json:"message"`
	Extensions errorExtensions `json:"extensions"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps the business
// error taxonomy to deterministic HTTP status codes, renders the envelope
// above, and passes unexpected errors through with their original message.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

// kindStatus maps each error kind to its HTTP status. The switch is
// exhaustive over the taxonomy so a new kind fails loudly in review.
func kindStatus(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindAuthentication, domain.KindInvalidToken, domain.KindInactiveAccount:
		return http.StatusUnauthorized
	case domain.KindEntityAlreadyExists, domain.KindDuplicateEntry, domain.KindAlreadyConfirmed:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindOutdated:
		return http.StatusGone
	case domain.KindEmailSendingFailure:
		return http.StatusBadGateway
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Business errors carry their own kind and message.
	var de *domain.Error
	if errors.As(err, &de) {
		resp := errorResponse{
			Message:    de.Message,
			Extensions: errorExtensions{Code: string(de.Kind)},
		}
		if len(de.Violations) > 0 {
			resp.Extensions.Exception = &errorException{ValidationErrors: de.Violations}
		}
		return kindStatus(de.Kind), resp
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{
			Message:    fmt.Sprintf("%v", he.Message),
			Extensions: errorExtensions{Code: http.StatusText(he.Code)},
		}
	}

	// Unexpected error: logged, then passed through unchanged so the caller
	// sees the underlying message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Message:    err.Error(),
		Extensions: errorExtensions{Code: "InternalServerError"},
	}
}
