package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

// AuthHandler handles registration, activation and login.
type AuthHandler struct {
	accounts ports.AccountService
}

func NewAuthHandler(accounts ports.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         string(user.Role),
		Activated:    user.Activated,
		RegisteredAt: user.RegisteredAt,
	}
}

// Register creates a new, inactive account and sends the confirmation email.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.accounts.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Activate consumes a confirmation code from the emailed link.
//
// @Summary      Confirm a registration
// @Tags         auth
// @Produce      json
// @Param        code  path      string  true  "Confirmation code"
// @Success      200   {object}  confirmationResponse
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      410   {object}  map[string]any
// @Router       /auth/register/confirmation/{code} [post]
func (h *AuthHandler) Activate(c echo.Context) error {
	confirmation, err := h.accounts.Activate(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, confirmationResponse{
		ID:          confirmation.ID,
		UserID:      confirmation.UserID,
		AllowedUpTo: confirmation.AllowedUpTo,
		ConfirmedAt: confirmation.ConfirmedAt,
	})
}

// ResendConfirmation re-sends the pending confirmation email.
//
// @Summary      Resend the confirmation email
// @Tags         auth
// @Accept       json
// @Param        body  body  resendConfirmationRequest  true  "Account email"
// @Success      204
// @Failure      404   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Router       /auth/register/confirmation/resend [post]
func (h *AuthHandler) ResendConfirmation(c echo.Context) error {
	var req resendConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.accounts.ResendConfirmation(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
