package handler

import "time"

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type resendConfirmationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Activated    bool      `json:"activated"`
	RegisteredAt time.Time `json:"registered_at"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type confirmationResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	AllowedUpTo time.Time  `json:"allowed_up_to"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}
