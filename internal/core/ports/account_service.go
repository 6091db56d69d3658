package ports

import (
	"context"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// AccountService covers the registration confirmation lifecycle and login.
type AccountService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Activate(ctx context.Context, code string) (*domain.RegistrationConfirmation, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ResendConfirmation(ctx context.Context, email string) error
}
